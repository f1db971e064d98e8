package task

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"master_ms/internal/service"
)

// DropdownWarmTask 定时预热下拉缓存
type DropdownWarmTask struct {
	warmers map[string]service.DropdownWarmer
	timeout time.Duration
	logger  *zap.Logger

	running atomic.Bool
}

func NewDropdownWarmTask(warmers map[string]service.DropdownWarmer, logger *zap.Logger) *DropdownWarmTask {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DropdownWarmTask{
		warmers: warmers,
		timeout: time.Minute,
		logger:  logger.With(zap.String("task", "dropdown_warm")),
	}
}

// Run 并发预热所有模块，上一轮未结束时跳过
func (t *DropdownWarmTask) Run(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return ErrTaskRunning
	}
	defer t.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	names := make([]string, 0, len(t.warmers))
	for name := range t.warmers {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	start := time.Now()
	for _, name := range names {
		name, warmer := name, t.warmers[name]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := warmer.WarmDropdown(ctx); err != nil {
				t.logger.Warn("warm dropdown failed", zap.String("module", name), zap.Error(err))
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	t.logger.Debug("dropdown cache warmed",
		zap.Int("modules", len(names)),
		zap.Int("failed", len(errs)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return errors.Join(errs...)
}
