package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"master_ms/pkg/apperr"
)

// ================== 入站消息 ==================

// Auth 网关解析出的当前用户
type Auth struct {
	ID int64 `json:"id"`
}

// Query 列表查询参数
type Query struct {
	SearchText string `json:"searchText"`
}

// Payload 所有 message pattern 共用的入站结构
type Payload struct {
	Auth  Auth            `json:"auth"`
	Data  json.RawMessage `json:"data,omitempty"`
	Page  FlexInt         `json:"page"`
	Query Query           `json:"query"`
	UUID  string          `json:"uuid"`
	ID    FlexInt         `json:"id"`
	Lang  string          `json:"lang"`
}

// OperatorID 当前操作人
func (p *Payload) OperatorID() int64 {
	return p.Auth.ID
}

// SearchText 去除首尾空白后的搜索词
func (p *Payload) SearchText() string {
	return strings.TrimSpace(p.Query.SearchText)
}

// PageNo 页码，缺省为 1
func (p *Payload) PageNo() int {
	if p.Page < 1 {
		return 1
	}
	return int(p.Page)
}

// RequireUUID 校验 uuid 参数
func (p *Payload) RequireUUID() (string, error) {
	uuid := strings.TrimSpace(p.UUID)
	if uuid == "" {
		return "", apperr.BadRequest("uuid is required.")
	}
	return uuid, nil
}

// Bind 将 data 解析到 dst 并执行校验
func (p *Payload) Bind(dst interface{}) error {
	data := bytes.TrimSpace(p.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		data = []byte("{}")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperr.BadRequest("Invalid payload.").WithErr(err)
	}
	return Validate(dst)
}

// ================== 宽松类型 ==================

// FlexBool 兼容 true / "true" 两种写法
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(s) {
	case "true":
		*b = true
	case "false", "", "null":
		*b = false
	default:
		return apperr.BadRequest("Is active should be true or false.")
	}
	return nil
}

// FlexInt 兼容 2 / "2" 两种写法，空串视为 0
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return apperr.BadRequest("Invalid number: " + s)
	}
	*n = FlexInt(v)
	return nil
}
