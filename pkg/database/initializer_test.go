package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"master_ms/internal/model"
)

func setupInitTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func testModels() []interface{} {
	return []interface{}{
		&model.Country{}, &model.State{}, &model.City{},
		&model.Brand{}, &model.Tax{}, &model.Division{}, &model.ContactUs{},
	}
}

func count(t *testing.T, db *gorm.DB, v interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(v).Count(&n).Error)
	return n
}

func TestInitializer_SeedIsIdempotent(t *testing.T) {
	db := setupInitTestDB(t)
	ctx := context.Background()

	ini := NewInitializer(db, InitOptions{Models: testModels(), Seed: true}, nil)
	require.NoError(t, ini.Initialize(ctx))
	require.NoError(t, ini.Initialize(ctx))

	assert.Equal(t, int64(1), count(t, db, &model.Country{}))
	assert.Equal(t, int64(1), count(t, db, &model.State{}))
	assert.Equal(t, int64(1), count(t, db, &model.City{}))
	assert.Equal(t, int64(1), count(t, db, &model.Brand{}))
	assert.Equal(t, int64(1), count(t, db, &model.Division{}))
	assert.Equal(t, int64(1), count(t, db, &model.Tax{}))

	var city model.City
	require.NoError(t, db.Preload("State.Country").Take(&city).Error)
	assert.Equal(t, "Pune", city.CityName)
	assert.Equal(t, "Maharashtra", city.State.StateName)
	assert.Equal(t, "IND", city.State.Country.IsoCode)

	var tax model.Tax
	require.NoError(t, db.Take(&tax).Error)
	assert.Equal(t, "100", tax.TaxValue.String())
	assert.Equal(t, model.TaxValueFixed, tax.ValueType)
}

func TestInitializer_WithoutSeed(t *testing.T) {
	db := setupInitTestDB(t)

	ini := NewInitializer(db, InitOptions{Models: testModels()}, nil)
	require.NoError(t, ini.Initialize(context.Background()))

	assert.True(t, db.Migrator().HasTable(&model.Country{}))
	assert.Equal(t, int64(0), count(t, db, &model.Country{}))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("SILENT"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}
