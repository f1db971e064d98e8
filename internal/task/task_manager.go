package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"master_ms/internal/service"
)

// ==================== TaskManager 定时任务管理器 ====================

// TaskManager 统一管理定时任务
// 目前只有下拉缓存预热
type TaskManager struct {
	cron     *cron.Cron
	dropdown *DropdownWarmTask
	cfg      *TaskManagerConfig
	logger   *zap.Logger
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	DropdownWarmers map[string]service.DropdownWarmer
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	DropdownEnabled bool
	DropdownSpec    string // cron 表达式（含秒）或 @every 5m
	WarmOnStart     bool
}

// DefaultConfig 默认配置
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		DropdownEnabled: true,
		DropdownSpec:    "@every 5m",
		WarmOnStart:     true,
	}
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig, logger *zap.Logger) *TaskManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tm := &TaskManager{
		cron:   cron.New(cron.WithSeconds()),
		cfg:    cfg,
		logger: logger,
	}
	if cfg.DropdownEnabled && deps != nil && len(deps.DropdownWarmers) > 0 {
		tm.dropdown = NewDropdownWarmTask(deps.DropdownWarmers, logger)
	}
	return tm
}

// ==================== 生命周期管理 ====================

// Start 注册并启动所有任务
func (tm *TaskManager) Start() error {
	if tm.dropdown != nil {
		if _, err := tm.cron.AddFunc(tm.cfg.DropdownSpec, func() {
			_ = tm.dropdown.Run(context.Background())
		}); err != nil {
			return err
		}

		if tm.cfg.WarmOnStart {
			go func() {
				_ = tm.dropdown.Run(context.Background())
			}()
		}
	}

	tm.cron.Start()
	tm.logger.Info("scheduled tasks started", zap.Any("tasks", tm.Status()))
	return nil
}

// Stop 停止调度并等待执行中的任务，最多等待 timeout
func (tm *TaskManager) Stop(timeout time.Duration) {
	ctx := tm.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(timeout):
		tm.logger.Warn("scheduled tasks did not stop in time")
	}
	tm.logger.Info("scheduled tasks stopped")
}

// ==================== 手动触发接口 ====================

// TriggerDropdownWarm 立即预热下拉缓存
func (tm *TaskManager) TriggerDropdownWarm(ctx context.Context) error {
	if tm.dropdown == nil {
		return ErrTaskDisabled
	}
	return tm.dropdown.Run(ctx)
}

// ==================== 状态查询 ====================

// Status 获取任务状态
func (tm *TaskManager) Status() map[string]bool {
	return map[string]bool{
		"dropdown_warm": tm.dropdown != nil,
	}
}

// ==================== 错误定义 ====================

type TaskError string

func (e TaskError) Error() string { return string(e) }

const (
	ErrTaskDisabled TaskError = "task is disabled"
	ErrTaskRunning  TaskError = "task is already running"
)
