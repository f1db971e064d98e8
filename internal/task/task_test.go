package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/internal/service"
	"master_ms/pkg/cache"
)

// ==================== 测试辅助 ====================

type fakeWarmer struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (f *fakeWarmer) WarmDropdown(ctx context.Context) error {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.err
}

func setupTaskTestDB(t *testing.T) *gorm.DB {
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

	if err := db.AutoMigrate(&model.Country{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// ==================== DropdownWarmTask 测试 ====================

func TestDropdownWarmTask_RunsAllWarmers(t *testing.T) {
	country, brand := &fakeWarmer{}, &fakeWarmer{}
	task := NewDropdownWarmTask(map[string]service.DropdownWarmer{
		"country": country,
		"brand":   brand,
	}, nil)

	require.NoError(t, task.Run(context.Background()))
	assert.Equal(t, int32(1), country.calls.Load())
	assert.Equal(t, int32(1), brand.calls.Load())
}

func TestDropdownWarmTask_CollectsErrors(t *testing.T) {
	ok, broken := &fakeWarmer{}, &fakeWarmer{err: errors.New("redis down")}
	task := NewDropdownWarmTask(map[string]service.DropdownWarmer{
		"division": ok,
		"city":     broken,
	}, nil)

	err := task.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "city: redis down")
	assert.Equal(t, int32(1), ok.calls.Load())
}

func TestDropdownWarmTask_SkipsWhileRunning(t *testing.T) {
	slow := &fakeWarmer{delay: 200 * time.Millisecond}
	task := NewDropdownWarmTask(map[string]service.DropdownWarmer{"state": slow}, nil)

	done := make(chan error, 1)
	go func() { done <- task.Run(context.Background()) }()

	require.Eventually(t, func() bool { return slow.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, task.Run(context.Background()), ErrTaskRunning)
	require.NoError(t, <-done)
}

func TestDropdownWarmTask_WarmsCountryCache(t *testing.T) {
	db := setupTaskTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Country{
		BaseModel:   model.BaseModel{IsActive: true},
		CountryName: "India",
		IsoCode:     "IND",
		MobileCode:  91,
	}).Error)

	mem := cache.NewMemoryCache()
	countries := service.NewCountryService(
		repository.NewCountryRepo(db),
		service.NewDropdownCache(mem, time.Minute, nil),
	)

	task := NewDropdownWarmTask(map[string]service.DropdownWarmer{"country": countries}, nil)
	require.NoError(t, task.Run(ctx))

	raw, ok, err := mem.Get(ctx, "dropdown:country")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"country_name":"India"`)
}

// ==================== TaskManager 测试 ====================

func TestTaskManager_DisabledWithoutWarmers(t *testing.T) {
	tm := NewTaskManager(&TaskManagerDeps{}, nil, nil)

	assert.False(t, tm.Status()["dropdown_warm"])
	assert.ErrorIs(t, tm.TriggerDropdownWarm(context.Background()), ErrTaskDisabled)
}

func TestTaskManager_StartAndTrigger(t *testing.T) {
	warmer := &fakeWarmer{}
	tm := NewTaskManager(&TaskManagerDeps{
		DropdownWarmers: map[string]service.DropdownWarmer{"brand": warmer},
	}, &TaskManagerConfig{
		DropdownEnabled: true,
		DropdownSpec:    "@every 1h",
	}, nil)

	require.NoError(t, tm.Start())
	defer tm.Stop(time.Second)

	assert.True(t, tm.Status()["dropdown_warm"])
	require.NoError(t, tm.TriggerDropdownWarm(context.Background()))
	assert.Equal(t, int32(1), warmer.calls.Load())
}

func TestTaskManager_InvalidSpec(t *testing.T) {
	tm := NewTaskManager(&TaskManagerDeps{
		DropdownWarmers: map[string]service.DropdownWarmer{"brand": &fakeWarmer{}},
	}, &TaskManagerConfig{DropdownEnabled: true, DropdownSpec: "bad cron expr"}, nil)

	assert.Error(t, tm.Start())
}
