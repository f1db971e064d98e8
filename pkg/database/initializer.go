package database

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"master_ms/internal/model"
)

// Seeder 初始数据，必须可重复执行
type Seeder struct {
	Name string
	Run  func(ctx context.Context, db *gorm.DB) error
}

// Initializer 数据库初始化器：迁移 + 可选的初始数据
type Initializer struct {
	db      *gorm.DB
	models  []interface{}
	seeders []Seeder
	logger  *zap.Logger
}

// InitOptions 初始化选项
type InitOptions struct {
	// 需要 AutoMigrate 的模型，默认 model.All()
	Models []interface{}

	// 是否写入初始数据
	Seed    bool
	Seeders []Seeder // 默认 DefaultSeeders()
}

func NewInitializer(db *gorm.DB, opts InitOptions, logger *zap.Logger) *Initializer {
	if logger == nil {
		logger = zap.NewNop()
	}
	models := opts.Models
	if models == nil {
		models = model.All()
	}

	var seeders []Seeder
	if opts.Seed {
		seeders = opts.Seeders
		if seeders == nil {
			seeders = DefaultSeeders()
		}
	}

	return &Initializer{db: db, models: models, seeders: seeders, logger: logger}
}

// Initialize 执行初始化
func (i *Initializer) Initialize(ctx context.Context) error {
	start := time.Now()

	if len(i.models) > 0 {
		if err := i.db.WithContext(ctx).AutoMigrate(i.models...); err != nil {
			return fmt.Errorf("AutoMigrate 失败: %w", err)
		}
		i.logger.Info("database migrated", zap.Int("models", len(i.models)))
	}

	for _, s := range i.seeders {
		if err := s.Run(ctx, i.db.WithContext(ctx)); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name, err)
		}
		i.logger.Info("table seeded successfully", zap.String("seeder", s.Name))
	}

	i.logger.Info("database initialized", zap.Duration("elapsed", time.Since(start)))
	return nil
}

// ==================== 初始数据 ====================

// DefaultSeeders 演示用主数据，按外键依赖顺序执行
func DefaultSeeders() []Seeder {
	return []Seeder{
		{Name: "country", Run: seedCountry},
		{Name: "state", Run: seedState},
		{Name: "city", Run: seedCity},
		{Name: "brand", Run: seedBrand},
		{Name: "division", Run: seedDivision},
		{Name: "tax", Run: seedTax},
	}
}

func insertIgnore(db *gorm.DB, v interface{}, columns ...string) error {
	cols := make([]clause.Column, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, clause.Column{Name: c})
	}
	return db.Clauses(clause.OnConflict{Columns: cols, DoNothing: true}).Create(v).Error
}

func seedCountry(ctx context.Context, db *gorm.DB) error {
	return insertIgnore(db, &model.Country{
		BaseModel:    model.BaseModel{IsActive: true},
		CountryName:  "India",
		IsoCode:      "IND",
		MobileCode:   91,
		CurrencyCode: "INR",
	}, "iso_code")
}

func seedState(ctx context.Context, db *gorm.DB) error {
	var country model.Country
	if err := db.Where("iso_code = ?", "IND").Take(&country).Error; err != nil {
		return err
	}
	return insertIgnore(db, &model.State{
		BaseModel: model.BaseModel{IsActive: true},
		CountryID: country.ID,
		StateName: "Maharashtra",
		ShortCode: "MH",
	}, "country_id", "state_name")
}

func seedCity(ctx context.Context, db *gorm.DB) error {
	var state model.State
	if err := db.Where("state_name = ?", "Maharashtra").Order("id ASC").Take(&state).Error; err != nil {
		return err
	}
	return insertIgnore(db, &model.City{
		BaseModel: model.BaseModel{IsActive: true},
		StateID:   state.ID,
		CityName:  "Pune",
	}, "state_id", "city_name")
}

func seedBrand(ctx context.Context, db *gorm.DB) error {
	return insertIgnore(db, &model.Brand{
		BaseModel: model.BaseModel{IsActive: true},
		BrandName: "BMW",
	}, "brand_name")
}

func seedDivision(ctx context.Context, db *gorm.DB) error {
	return insertIgnore(db, &model.Division{
		BaseModel:    model.BaseModel{IsActive: true},
		DivisionName: "Example Division",
		Slug:         "example-slug",
	}, "slug")
}

func seedTax(ctx context.Context, db *gorm.DB) error {
	return insertIgnore(db, &model.Tax{
		BaseModel:   model.BaseModel{IsActive: true},
		TaxName:     "Government Tax",
		Description: "Government Tax",
		TaxType:     model.TaxTypeTax,
		ValueType:   model.TaxValueFixed,
		TaxValue:    decimal.NewFromInt(100),
	}, "tax_name")
}
