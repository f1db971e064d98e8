package controller

import (
	"bytes"
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"master_ms/internal/api/dto"
	"master_ms/internal/middleware"
	"master_ms/internal/service"
	"master_ms/pkg/apperr"
	"master_ms/pkg/i18n"
	"master_ms/pkg/microservice"
)

// Action 单个 message pattern 的处理函数
// 返回 *dto.Response 时 message 会按请求语言翻译
type Action func(ctx context.Context, p *dto.Payload) (interface{}, error)

// ExceptionHandler 解析入站消息并把任何错误转换为 {statusCode, message}
type ExceptionHandler struct {
	tr     *i18n.Translator
	logger *zap.Logger
}

func NewExceptionHandler(tr *i18n.Translator, logger *zap.Logger) *ExceptionHandler {
	if tr == nil {
		tr = i18n.New("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExceptionHandler{tr: tr, logger: logger}
}

// Wrap 转换为路由表使用的 Handler
func (h *ExceptionHandler) Wrap(a Action) microservice.Handler {
	return func(ctx context.Context, data json.RawMessage) (interface{}, error) {
		p, err := decodePayload(data)
		if err != nil {
			return nil, h.translate(ctx, err)
		}

		if p.Lang != "" {
			ctx = i18n.WithLang(ctx, p.Lang)
		}
		if id := p.OperatorID(); id > 0 {
			ctx = middleware.WithAuditInfo(ctx, id)
		}

		res, err := a(ctx, p)
		if err != nil {
			return nil, h.translate(ctx, err)
		}
		if resp, ok := res.(*dto.Response); ok && resp != nil {
			resp.Message = h.tr.TCtx(ctx, resp.Message)
		}
		return res, nil
	}
}

func (h *ExceptionHandler) translate(ctx context.Context, err error) error {
	appErr := apperr.From(err)
	return &apperr.Error{
		Status:  appErr.Status,
		Message: h.tr.TCtx(ctx, appErr.Message),
		Err:     err,
	}
}

func decodePayload(data json.RawMessage) (*dto.Payload, error) {
	var p dto.Payload
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperr.BadRequest("validation._invalid_payload").WithErr(err)
	}
	return &p, nil
}

// ==================== 辅助函数 ====================

func listQuery(p *dto.Payload) service.ListQuery {
	return service.ListQuery{Page: p.PageNo(), SearchText: p.SearchText()}
}

// visibility 解析 {is_active}
func visibility(p *dto.Payload) (bool, error) {
	var req dto.ToggleVisibilityReq
	if err := p.Bind(&req); err != nil {
		return false, err
	}
	return bool(*req.IsActive), nil
}
