package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"master_ms/internal/model"
)

// 测试用 Product（tags 用 text 代替 text[]）
type testProduct struct {
	model.BaseModel
	Title   string `gorm:"size:255"`
	Slug    string `gorm:"size:255"`
	Tags    *string // NULL，pq.StringArray 无法解析空字符串
	BrandID *int64
}

func (testProduct) TableName() string {
	return "products"
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取连接池失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Country{}, &model.State{}, &model.City{},
		&model.Brand{}, &model.Tax{}, &model.Division{}, &model.ContactUs{},
		&testProduct{}, &model.Cart{}, &model.Wishlist{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func seedCountry(t *testing.T, r *CountryRepo, name, iso string, active bool) *model.Country {
	c := &model.Country{CountryName: name, IsoCode: iso, MobileCode: 91, CurrencyCode: "INR"}
	c.IsActive = active
	require.NoError(t, r.Create(context.Background(), c))
	return c
}

// ==================== 通用仓库 ====================

func TestRepo_SoftDeleteFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepo(db)
	ctx := context.Background()

	india := seedCountry(t, repo, "India", "IND", true)
	nepal := seedCountry(t, repo, "Nepal", "NPL", true)

	n, err := repo.Update(ctx, Where(ByUUID(repo.Table(), nepal.UUID)), model.SoftDeleteFields(7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	live, err := repo.FindMany(ctx, Where())
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, india.UUID, live[0].UUID)

	deleted, err := repo.FindMany(ctx, WhereDeleted())
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, "Nepal", deleted[0].CountryName)
	assert.False(t, deleted[0].IsActive)
	require.NotNil(t, deleted[0].DeletedBy)
	assert.Equal(t, int64(7), *deleted[0].DeletedBy)

	got, err := repo.FindByUUID(ctx, nepal.UUID)
	require.NoError(t, err)
	assert.Nil(t, got, "已删除记录不应被默认查询返回")

	raw, err := repo.FindOneWithoutDelete(ctx, ByUUID(repo.Table(), nepal.UUID))
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.True(t, raw.IsDeleted)
}

func TestRepo_RestoreClearsDeletion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepo(db)
	ctx := context.Background()

	c := seedCountry(t, repo, "India", "IND", true)
	_, err := repo.Update(ctx, Where(ByUUID(repo.Table(), c.UUID)), model.SoftDeleteFields(1))
	require.NoError(t, err)

	n, err := repo.Update(ctx, WhereDeleted(ByUUID(repo.Table(), c.UUID)), model.RestoreFields(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.FindByUUID(ctx, c.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.DeletedAt)
	assert.Nil(t, got.DeletedBy)
	require.NotNil(t, got.UpdatedBy)
	assert.Equal(t, int64(2), *got.UpdatedBy)
}

func TestRepo_FindManyWithPaginate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepo(db)
	ctx := context.Background()

	for i := 0; i < 23; i++ {
		seedCountry(t, repo, "Country "+string(rune('A'+i)), "C"+string(rune('A'+i)), true)
	}

	page, err := repo.FindManyWithPaginate(ctx, Where(), 3)
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.Equal(t, int64(23), page.Meta.Total)
	assert.Equal(t, 3, page.Meta.LastPage)
	assert.Equal(t, 3, page.Meta.CurrentPage)
	require.NotNil(t, page.Meta.Prev)
	assert.Equal(t, 2, *page.Meta.Prev)
	assert.Nil(t, page.Meta.Next)

	// id DESC：第一页第一条是最后插入的
	first, err := repo.FindManyWithPaginate(ctx, Where(), 0)
	require.NoError(t, err)
	assert.Len(t, first.Data, DefaultPerPage)
	assert.Equal(t, "Country W", first.Data[0].CountryName)
	assert.Equal(t, 1, first.Meta.CurrentPage)
}

func TestRepo_SearchIsCaseInsensitiveAndEscaped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepo(db)
	ctx := context.Background()

	seedCountry(t, repo, "India", "IND", true)
	seedCountry(t, repo, "Indonesia", "IDN", true)
	seedCountry(t, repo, "100% Land", "PCT", true)

	list, err := repo.FindMany(ctx, Where(repo.SearchScope("INd")))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.FindMany(ctx, Where(repo.SearchScope("%")))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "PCT", list[0].IsoCode)
}

func TestRepo_UpsertRevivesDeletedRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCountryRepo(db)
	ctx := context.Background()

	old := seedCountry(t, repo, "India", "IND", true)
	_, err := repo.Update(ctx, Where(ByUUID(repo.Table(), old.UUID)), model.SoftDeleteFields(1))
	require.NoError(t, err)

	fields := model.ReviveFields()
	fields["country_name"] = "Bharat"
	fields["is_active"] = true
	next := &model.Country{CountryName: "Bharat", IsoCode: "IND", MobileCode: 91}
	require.NoError(t, repo.UpsertByIso(ctx, next, fields))

	total, err := repo.Count(ctx, WhereAny())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	got, err := repo.FindByUUID(ctx, old.UUID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bharat", got.CountryName)
	assert.False(t, got.IsDeleted)
}

// ==================== 关联搜索 ====================

func TestStateRepo_SearchByCountryName(t *testing.T) {
	db := setupTestDB(t)
	countries := NewCountryRepo(db)
	states := NewStateRepo(db)
	ctx := context.Background()

	india := seedCountry(t, countries, "India", "IND", true)
	nepal := seedCountry(t, countries, "Nepal", "NPL", true)
	require.NoError(t, states.Create(ctx, &model.State{CountryID: india.ID, StateName: "Maharashtra", ShortCode: "MH"}))
	require.NoError(t, states.Create(ctx, &model.State{CountryID: nepal.ID, StateName: "Bagmati", ShortCode: "BA"}))

	list, err := states.FindMany(ctx, Where(states.SearchScope("nep")).WithPreload("Country"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bagmati", list[0].StateName)
	require.NotNil(t, list[0].Country)
	assert.Equal(t, "Nepal", list[0].Country.CountryName)

	dup, err := states.FindOne(ctx, Where(states.NameOrCodeScope(india.ID, "other", "mh")))
	require.NoError(t, err)
	require.NotNil(t, dup)
	assert.Equal(t, "Maharashtra", dup.StateName)

	none, err := states.FindOne(ctx, Where(states.NameOrCodeScope(nepal.ID, "maharashtra", "XX")))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestStateRepo_DropdownFiltersInactive(t *testing.T) {
	db := setupTestDB(t)
	countries := NewCountryRepo(db)
	states := NewStateRepo(db)
	ctx := context.Background()

	india := seedCountry(t, countries, "India", "IND", true)
	mh := &model.State{CountryID: india.ID, StateName: "Maharashtra", ShortCode: "MH"}
	mh.IsActive = true
	require.NoError(t, states.Create(ctx, mh))
	require.NoError(t, states.Create(ctx, &model.State{CountryID: india.ID, StateName: "Goa", ShortCode: "GA"}))

	list, err := states.Dropdown(ctx, india.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Maharashtra", list[0].StateName)
	assert.NotEmpty(t, list[0].UUID)
}

func TestTaxRepo_FindByConditionRejectsUnknownColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaxRepo(db)
	ctx := context.Background()

	tax := &model.Tax{TaxName: "GST", TaxType: model.TaxTypeTax, ValueType: model.TaxValuePercent, TaxValue: decimal.NewFromInt(18)}
	require.NoError(t, repo.Create(ctx, tax))

	list, err := repo.FindByCondition(ctx, []string{"uuid", "tax_name"}, map[string]interface{}{"tax_name": "GST"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, tax.UUID, list[0].UUID)

	_, err = repo.FindByCondition(ctx, []string{"password"}, nil)
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = repo.FindByCondition(ctx, nil, map[string]interface{}{"1=1; --": 1})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

// ==================== 购物车 ====================

func TestCartRepo_ListWithProduct(t *testing.T) {
	db := setupTestDB(t)
	carts := NewCartRepo(db)
	ctx := context.Background()

	phone := &testProduct{Title: "Smart Phone"}
	laptop := &testProduct{Title: "Laptop"}
	require.NoError(t, db.Create(phone).Error)
	require.NoError(t, db.Create(laptop).Error)

	require.NoError(t, carts.Create(ctx, &model.Cart{ProductID: phone.ID, UserID: 1, Quantity: 2, Price: decimal.NewFromInt(10)}))
	require.NoError(t, carts.Create(ctx, &model.Cart{ProductID: laptop.ID, UserID: 1, Quantity: 1, Price: decimal.NewFromInt(900)}))
	require.NoError(t, carts.Create(ctx, &model.Cart{ProductID: laptop.ID, UserID: 2, Quantity: 1, Price: decimal.NewFromInt(900)}))

	page, err := carts.ListWithProduct(ctx, 1, "phone", 1)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].Product)
	assert.Equal(t, "Smart Phone", page.Data[0].Product.Title)

	all, err := carts.ListWithProduct(ctx, 0, "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Meta.Total)

	dup, err := carts.FindByUserAndProduct(ctx, 2, laptop.ID, "")
	require.NoError(t, err)
	require.NotNil(t, dup)

	same, err := carts.FindByUserAndProduct(ctx, 2, laptop.ID, dup.UUID)
	require.NoError(t, err)
	assert.Nil(t, same)

	n, err := carts.DeleteByUUID(ctx, dup.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	left, err := carts.Count(ctx, WhereAny())
	require.NoError(t, err)
	assert.Equal(t, int64(2), left)
}
