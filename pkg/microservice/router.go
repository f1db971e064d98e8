package microservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"master_ms/pkg/apperr"
)

// NoHandlerMessage 未注册的 pattern
const NoHandlerMessage = "There is no matching message handler defined in the remote service."

// Handler 消息处理函数，data 为请求中的 data 字段（Kafka 为消息体）
type Handler func(ctx context.Context, data json.RawMessage) (interface{}, error)

// Dispatcher 将消息按 pattern 分发给 Handler，传输层只依赖该接口
type Dispatcher interface {
	Dispatch(ctx context.Context, transport, pattern string, data json.RawMessage) (interface{}, *apperr.Error)
}

type route struct {
	pattern Pattern
	handler Handler
}

// Router 消息路由表
// 在启动传输层之前完成注册，之后只读
type Router struct {
	routes  map[string]route
	logger  *zap.Logger
	metrics *Metrics
}

var _ Dispatcher = (*Router)(nil)

func NewRouter(logger *zap.Logger, metrics *Metrics) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		routes:  make(map[string]route),
		logger:  logger,
		metrics: metrics,
	}
}

// Register 同时注册 TCP 对象键与 Kafka topic，重复注册直接 panic
func (r *Router) Register(p Pattern, h Handler) {
	for _, key := range []string{p.Key(), p.Topic()} {
		if _, dup := r.routes[key]; dup {
			panic(fmt.Sprintf("microservice: duplicate pattern %s", key))
		}
		r.routes[key] = route{pattern: p, handler: h}
	}
}

// Patterns 已注册的模式，按 role 排序
func (r *Router) Patterns() []Pattern {
	seen := make(map[Pattern]bool)
	var out []Pattern
	for _, rt := range r.routes {
		if !seen[rt.pattern] {
			seen[rt.pattern] = true
			out = append(out, rt.pattern)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out
}

// Topics Kafka 需要订阅的 topic
func (r *Router) Topics() []string {
	patterns := r.Patterns()
	topics := make([]string, 0, len(patterns))
	for _, p := range patterns {
		topics = append(topics, p.Topic())
	}
	return topics
}

// Has pattern 是否已注册
func (r *Router) Has(pattern string) bool {
	_, ok := r.routes[pattern]
	return ok
}

// Dispatch 执行 handler 并把任何错误（含 panic）转换为对外的异常
func (r *Router) Dispatch(ctx context.Context, transport, pattern string, data json.RawMessage) (result interface{}, appErr *apperr.Error) {
	rt, ok := r.routes[pattern]
	if !ok {
		r.logger.Warn("no handler for pattern", zap.String("transport", transport), zap.String("pattern", pattern))
		return nil, apperr.NotFound(NoHandlerMessage)
	}

	label := rt.pattern.Role
	start := time.Now()
	r.metrics.begin()

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("handler panic",
				zap.String("pattern", label),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			result, appErr = nil, apperr.Internal(fmt.Errorf("panic: %v", rec))
		}

		status := http.StatusOK
		if appErr != nil {
			status = appErr.Status
		}
		r.metrics.observe(transport, label, status, time.Since(start))
	}()

	res, err := rt.handler(ctx, data)
	if err != nil {
		appErr = apperr.From(err)
		if appErr.Status >= http.StatusInternalServerError {
			r.logger.Error("handler failed", zap.String("pattern", label), zap.Error(err))
		} else {
			r.logger.Debug("handler rejected request",
				zap.String("pattern", label),
				zap.Int("status", appErr.Status),
				zap.String("message", appErr.Message),
			)
		}
		return nil, appErr
	}
	return res, nil
}
