package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"master_ms/internal/api/dto"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
	"master_ms/pkg/cache"
)

// ==================== 测试辅助 ====================

// masterProduct 测试用商品表（tags 用可空 text 代替 text[]）
type masterProduct struct {
	model.BaseModel
	Title   string `gorm:"size:255"`
	Tags    *string
	BrandID *int64
}

func (masterProduct) TableName() string { return "products" }

func setupMasterTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
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
		&masterProduct{}, &model.Cart{}, &model.Wishlist{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func newTestDropdown() *DropdownCache {
	return NewDropdownCache(cache.NewMemoryCache(), time.Minute, nil)
}

// requireAppErr 断言错误为指定状态码和消息的业务错误
func requireAppErr(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "期望业务错误，实际: %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func flex(b bool) *dto.FlexBool {
	v := dto.FlexBool(b)
	return &v
}

func newCountryService(db *gorm.DB) *CountryService {
	return NewCountryService(repository.NewCountryRepo(db), newTestDropdown())
}

func createIndia(t *testing.T, svc *CountryService) *model.Country {
	t.Helper()
	c, err := svc.Create(context.Background(), &dto.CreateCountryReq{
		CountryName: "India", IsoCode: "IND", MobileCode: 91, CurrencyCode: "INR", IsActive: true,
	}, 7)
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

// ==================== Country ====================

func TestCountryService_CreateRejectsDuplicates(t *testing.T) {
	svc := newCountryService(setupMasterTestDB(t))
	ctx := context.Background()
	india := createIndia(t, svc)
	assert.Equal(t, int64(7), *india.CreatedBy)

	_, err := svc.Create(ctx, &dto.CreateCountryReq{CountryName: "india", IsoCode: "IN2", MobileCode: 91}, 7)
	requireAppErr(t, err, 400, "record is already exist.")

	_, err = svc.Create(ctx, &dto.CreateCountryReq{CountryName: "Bharat", IsoCode: "ind", MobileCode: 91}, 7)
	requireAppErr(t, err, 400, "country with this iso code already exist.")
}

func TestCountryService_DeleteRestoreAndRevive(t *testing.T) {
	svc := newCountryService(setupMasterTestDB(t))
	ctx := context.Background()
	india := createIndia(t, svc)

	require.NoError(t, svc.Delete(ctx, india.UUID, 9))

	live, err := svc.List(ctx, ListQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), live.Meta.Total)

	deleted, err := svc.ListDeleted(ctx, ListQuery{Page: 1, SearchText: "ind"})
	require.NoError(t, err)
	require.Len(t, deleted.Data, 1)
	assert.False(t, deleted.Data[0].IsActive)
	assert.Equal(t, int64(9), *deleted.Data[0].DeletedBy)

	_, err = svc.Get(ctx, india.UUID)
	requireAppErr(t, err, 404, "Data not found")

	// 同 iso 再次创建：覆盖已删除记录而不是新增
	revived, err := svc.Create(ctx, &dto.CreateCountryReq{
		CountryName: "Republic Of India", IsoCode: "IND", MobileCode: 91, IsActive: true,
	}, 7)
	require.NoError(t, err)
	assert.Equal(t, india.ID, revived.ID)
	assert.Equal(t, "Republic Of India", revived.CountryName)
	assert.False(t, revived.IsDeleted)
	assert.Nil(t, revived.DeletedAt)

	// 已恢复的记录不能再次 restore
	requireAppErr(t, svc.Restore(ctx, india.UUID, 7), 404, "Data not found")

	require.NoError(t, svc.Delete(ctx, india.UUID, 7))
	require.NoError(t, svc.Restore(ctx, india.UUID, 7))
	got, err := svc.Get(ctx, india.UUID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.DeletedBy)
}

func TestCountryService_Update(t *testing.T) {
	svc := newCountryService(setupMasterTestDB(t))
	ctx := context.Background()
	india := createIndia(t, svc)

	nepal, err := svc.Create(ctx, &dto.CreateCountryReq{CountryName: "Nepal", IsoCode: "NPL", MobileCode: 977, IsActive: true}, 7)
	require.NoError(t, err)

	_, err = svc.Update(ctx, nepal.UUID, &dto.UpdateCountryReq{CountryName: "Nepal", IsoCode: "IND", MobileCode: 977}, 7)
	requireAppErr(t, err, 400, "country with this iso code already exist.")

	_, err = svc.Update(ctx, nepal.UUID, &dto.UpdateCountryReq{CountryName: "INDIA", IsoCode: "NPL", MobileCode: 977}, 7)
	requireAppErr(t, err, 400, "country with same name already exist.")

	require.NoError(t, svc.Delete(ctx, india.UUID, 7))
	_, err = svc.Update(ctx, nepal.UUID, &dto.UpdateCountryReq{CountryName: "India", IsoCode: "NPL", MobileCode: 977}, 7)
	requireAppErr(t, err, 400, "country already exist in deleted record")

	// is_active 不传则保持不变
	updated, err := svc.Update(ctx, nepal.UUID, &dto.UpdateCountryReq{CountryName: "Nepal", IsoCode: "NP", MobileCode: 977}, 8)
	require.NoError(t, err)
	assert.Equal(t, "NP", updated.IsoCode)
	assert.True(t, updated.IsActive)
	assert.Equal(t, int64(8), *updated.UpdatedBy)

	_, err = svc.Update(ctx, "missing", &dto.UpdateCountryReq{CountryName: "X", IsoCode: "X"}, 7)
	requireAppErr(t, err, 404, "Data not found")
}

func TestCountryService_DropdownCacheInvalidation(t *testing.T) {
	svc := newCountryService(setupMasterTestDB(t))
	ctx := context.Background()
	india := createIndia(t, svc)

	list, err := svc.Dropdown(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "India", list[0].CountryName)

	require.NoError(t, svc.ToggleVisibility(ctx, india.UUID, false, 7))
	list, err = svc.Dropdown(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	requireAppErr(t, svc.ToggleVisibility(ctx, "missing", true, 7), 404, "No data found.")
}

// ==================== State / City ====================

func TestStateService_CreateAndRevive(t *testing.T) {
	db := setupMasterTestDB(t)
	countries := newCountryService(db)
	india := createIndia(t, countries)
	svc := NewStateService(repository.NewStateRepo(db), repository.NewCountryRepo(db), newTestDropdown())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.StateReq{CountryUUID: "missing", Name: "Goa", ShortCode: "GA"}, 7)
	requireAppErr(t, err, 404, "country does not exist.")

	mh, err := svc.Create(ctx, &dto.StateReq{CountryUUID: india.UUID, Name: "maharashtra", ShortCode: "MH", IsActive: flex(true)}, 7)
	require.NoError(t, err)
	assert.Equal(t, "Maharashtra", mh.StateName)
	require.NotNil(t, mh.Country)
	assert.Equal(t, "India", mh.Country.CountryName)

	_, err = svc.Create(ctx, &dto.StateReq{CountryUUID: india.UUID, Name: "Other", ShortCode: "mh"}, 7)
	requireAppErr(t, err, 400, "record is already exist.")

	require.NoError(t, svc.Delete(ctx, mh.UUID, 7))
	revived, err := svc.Create(ctx, &dto.StateReq{CountryUUID: india.UUID, Name: "Maharashtra", ShortCode: "MH"}, 11)
	require.NoError(t, err)
	assert.Equal(t, mh.ID, revived.ID)
	assert.False(t, revived.IsActive)
	assert.Equal(t, int64(11), *revived.CreatedBy)
	assert.Nil(t, revived.UpdatedBy)

	options, err := svc.Dropdown(ctx, india.UUID)
	require.NoError(t, err)
	assert.Empty(t, options)

	_, err = svc.Dropdown(ctx, "missing")
	requireAppErr(t, err, 404, "country does not exist.")
}

func TestStateService_UpdateConflicts(t *testing.T) {
	db := setupMasterTestDB(t)
	india := createIndia(t, newCountryService(db))
	svc := NewStateService(repository.NewStateRepo(db), repository.NewCountryRepo(db), newTestDropdown())
	ctx := context.Background()

	goa, err := svc.Create(ctx, &dto.StateReq{CountryUUID: india.UUID, Name: "Goa", ShortCode: "GA"}, 7)
	require.NoError(t, err)
	kerala, err := svc.Create(ctx, &dto.StateReq{CountryUUID: india.UUID, Name: "Kerala", ShortCode: "KL"}, 7)
	require.NoError(t, err)

	_, err = svc.Update(ctx, kerala.UUID, &dto.StateReq{CountryUUID: india.UUID, Name: "Goa", ShortCode: "KL"}, 7)
	requireAppErr(t, err, 400, "record already exist.")

	require.NoError(t, svc.Delete(ctx, goa.UUID, 7))
	_, err = svc.Update(ctx, kerala.UUID, &dto.StateReq{CountryUUID: india.UUID, Name: "Goa", ShortCode: "KL"}, 7)
	requireAppErr(t, err, 400, "State already exist, In deleted records.")

	_, err = svc.Update(ctx, goa.UUID, &dto.StateReq{CountryUUID: india.UUID, Name: "Goa", ShortCode: "GA"}, 7)
	requireAppErr(t, err, 404, "State information not found.")

	require.NoError(t, svc.Restore(ctx, goa.UUID, 7))
	restored, err := svc.Get(ctx, goa.UUID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
}

func TestCityService_CreateUpdate(t *testing.T) {
	db := setupMasterTestDB(t)
	india := createIndia(t, newCountryService(db))
	states := NewStateService(repository.NewStateRepo(db), repository.NewCountryRepo(db), newTestDropdown())
	ctx := context.Background()
	mh, err := states.Create(ctx, &dto.StateReq{CountryUUID: india.UUID, Name: "Maharashtra", ShortCode: "MH", IsActive: flex(true)}, 7)
	require.NoError(t, err)

	svc := NewCityService(repository.NewCityRepo(db), repository.NewStateRepo(db), newTestDropdown())

	_, err = svc.Create(ctx, &dto.CityReq{StateUUID: "missing", Name: "Pune"}, 7)
	requireAppErr(t, err, 404, "state does not exist.")

	pune, err := svc.Create(ctx, &dto.CityReq{StateUUID: mh.UUID, Name: "pune", IsActive: flex(true)}, 7)
	require.NoError(t, err)
	assert.Equal(t, "Pune", pune.CityName)
	require.NotNil(t, pune.State)

	_, err = svc.Create(ctx, &dto.CityReq{StateUUID: mh.UUID, Name: "PUNE"}, 7)
	requireAppErr(t, err, 400, "City already exist.")

	// 已删除城市再次创建时按 (state_id, city_name) 覆盖恢复
	require.NoError(t, svc.Delete(ctx, pune.UUID, 7))
	again, err := svc.Create(ctx, &dto.CityReq{StateUUID: mh.UUID, Name: "Pune", IsActive: flex(true)}, 7)
	require.NoError(t, err)
	assert.Equal(t, pune.ID, again.ID)

	nagpur, err := svc.Create(ctx, &dto.CityReq{StateUUID: mh.UUID, Name: "Nagpur"}, 7)
	require.NoError(t, err)
	_, err = svc.Update(ctx, nagpur.UUID, &dto.CityReq{StateUUID: mh.UUID, Name: "pune"}, 7)
	requireAppErr(t, err, 400, "city already exist.")

	options, err := svc.Dropdown(ctx, mh.UUID)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Pune", options[0].CityName)
}
