package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"master_ms/internal/api/dto"
	"master_ms/internal/middleware"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/internal/service"
	"master_ms/pkg/apperr"
	"master_ms/pkg/cache"
	"master_ms/pkg/i18n"
)

// ==================== 测试辅助 ====================

func newTestHandler() *ExceptionHandler {
	return NewExceptionHandler(i18n.New("en"), nil)
}

func requireAppErr(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "期望业务错误，实际: %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func setupCountryCtlTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&model.Country{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	if err := middleware.RegisterAuditCallbacks(db); err != nil {
		t.Fatalf("注册审计回调失败: %v", err)
	}
	return db
}

// ==================== ExceptionHandler ====================

func TestWrap_TranslatesResponseMessage(t *testing.T) {
	h := newTestHandler()
	handler := h.Wrap(func(ctx context.Context, p *dto.Payload) (interface{}, error) {
		return dto.OK("brand._brand_fetched_successfully", nil), nil
	})

	res, err := handler(context.Background(), json.RawMessage(`{"lang":"en"}`))
	require.NoError(t, err)

	resp, ok := res.(*dto.Response)
	require.True(t, ok)
	assert.True(t, resp.Status)
	assert.Equal(t, "Brand fetched successfully.", resp.Message)
}

func TestWrap_TranslatesErrors(t *testing.T) {
	h := newTestHandler()
	handler := h.Wrap(func(ctx context.Context, p *dto.Payload) (interface{}, error) {
		return nil, apperr.Conflict("brand._brand_with_same_name_already_exists")
	})

	_, err := handler(context.Background(), nil)
	requireAppErr(t, err, http.StatusConflict, "Brand with same name already exists.")
}

func TestWrap_HidesInternalErrors(t *testing.T) {
	h := newTestHandler()
	handler := h.Wrap(func(ctx context.Context, p *dto.Payload) (interface{}, error) {
		return nil, errors.New("pq: relation does not exist")
	})

	_, err := handler(context.Background(), json.RawMessage(`{}`))
	requireAppErr(t, err, http.StatusInternalServerError, apperr.InternalMessage)
}

func TestWrap_InvalidPayload(t *testing.T) {
	called := false
	handler := newTestHandler().Wrap(func(ctx context.Context, p *dto.Payload) (interface{}, error) {
		called = true
		return nil, nil
	})

	_, err := handler(context.Background(), json.RawMessage(`[1,2`))
	requireAppErr(t, err, http.StatusBadRequest, "Invalid payload.")
	assert.False(t, called)
}

func TestWrap_PassesAuditAndLanguage(t *testing.T) {
	var (
		auditID int64
		lang    string
		page    int
	)
	handler := newTestHandler().Wrap(func(ctx context.Context, p *dto.Payload) (interface{}, error) {
		if info := middleware.GetAuditInfo(ctx); info != nil {
			auditID = info.UserID
		}
		lang = i18n.LangFrom(ctx)
		page = p.PageNo()
		return map[string]string{"raw": "value"}, nil
	})

	res, err := handler(context.Background(), json.RawMessage(`{"auth":{"id":7},"lang":"en-US","page":"3"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"raw": "value"}, res)
	assert.Equal(t, int64(7), auditID)
	assert.Equal(t, "en-US", lang)
	assert.Equal(t, 3, page)
}

func TestWrap_AnonymousHasNoAuditInfo(t *testing.T) {
	var info *middleware.AuditInfo
	handler := newTestHandler().Wrap(func(ctx context.Context, p *dto.Payload) (interface{}, error) {
		info = middleware.GetAuditInfo(ctx)
		return nil, nil
	})

	_, err := handler(context.Background(), json.RawMessage(`{"auth":{"id":0}}`))
	require.NoError(t, err)
	assert.Nil(t, info)
}

// ==================== CountryController ====================

func TestCountryController_CreateAndFind(t *testing.T) {
	db := setupCountryCtlTestDB(t)
	svc := service.NewCountryService(
		repository.NewCountryRepo(db),
		service.NewDropdownCache(cache.NewMemoryCache(), time.Minute, nil),
	)
	ctl := NewCountryController(svc)
	h := newTestHandler()

	create := h.Wrap(ctl.Create)
	res, err := create(context.Background(), json.RawMessage(
		`{"auth":{"id":5},"data":{"country_name":"India","iso_code":"IND","mobile_code":"91","currency_code":"INR"}}`,
	))
	require.NoError(t, err)
	resp := res.(*dto.Response)
	assert.Equal(t, "country created successfully", resp.Message)

	created, ok := resp.Data.(*model.Country)
	require.True(t, ok, "unexpected data type %T", resp.Data)
	require.NotEmpty(t, created.UUID)

	var stored model.Country
	require.NoError(t, db.Where("uuid = ?", created.UUID).Take(&stored).Error)
	require.NotNil(t, stored.CreatedBy)
	assert.Equal(t, int64(5), *stored.CreatedBy)

	// 重复 iso code
	_, err = create(context.Background(), json.RawMessage(
		`{"data":{"country_name":"Bharat","iso_code":"IND","mobile_code":91}}`,
	))
	requireAppErr(t, err, http.StatusBadRequest, "country with this iso code already exist.")

	find := h.Wrap(ctl.FindByID)
	_, err = find(context.Background(), json.RawMessage(`{}`))
	requireAppErr(t, err, http.StatusBadRequest, "uuid is required.")

	res, err = find(context.Background(), json.RawMessage(`{"uuid":"`+created.UUID+`"}`))
	require.NoError(t, err)
	assert.Equal(t, "country fetched successfully", res.(*dto.Response).Message)
}
