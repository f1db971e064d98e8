package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClientOptions 下游 HTTP 客户端配置
type HTTPClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	Token      string // 服务间调用的 Bearer Token
	Debug      bool
}

// NewHTTPClient 创建一个配置好超时、重试和鉴权头的 Resty 客户端
// 它是全系统统一的下游请求入口
func NewHTTPClient(opts HTTPClientOptions) *resty.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetDebug(opts.Debug).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "master-ms/1.0")

	if opts.Token != "" {
		client.SetAuthToken(opts.Token)
	}

	return client
}
