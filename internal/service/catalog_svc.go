package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"master_ms/internal/config"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
	"master_ms/pkg/utils"
)

// ProductLookup 商品存在性校验，未找到返回 nil, nil
type ProductLookup interface {
	FindByUUID(ctx context.Context, uuid string) (*model.Product, error)
}

// NewProductLookup 配置了商品服务地址时走 HTTP，否则直接读共享库中的 products 表
func NewProductLookup(cfg config.CatalogConfig, repo *repository.ProductRepo) ProductLookup {
	if cfg.BaseURL == "" {
		return repo
	}
	return NewCatalogClient(cfg)
}

// ==================== 商品服务客户端 ====================

// CatalogClient 商品服务 HTTP 客户端
type CatalogClient struct {
	client *resty.Client
}

func NewCatalogClient(cfg config.CatalogConfig) *CatalogClient {
	return &CatalogClient{
		client: utils.NewHTTPClient(utils.HTTPClientOptions{
			BaseURL:    cfg.BaseURL,
			Timeout:    cfg.Timeout,
			RetryCount: 2,
			Token:      cfg.Token,
		}),
	}
}

// catalogProductResp 商品服务响应
type catalogProductResp struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    *model.Product `json:"data"`
}

// FindByUUID 查询商品，404 视为不存在
func (c *CatalogClient) FindByUUID(ctx context.Context, uuid string) (*model.Product, error) {
	var res catalogProductResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&res).
		Get("/products/" + url.PathEscape(uuid))
	if err != nil {
		return nil, apperr.BadGateway("Product service is unavailable.").WithErr(err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, nil
	case resp.IsError():
		return nil, apperr.BadGateway("Product service is unavailable.").
			WithErr(fmt.Errorf("catalog [%d]: %s", resp.StatusCode(), resp.String()))
	}

	if res.Data == nil || res.Data.IsDeleted {
		return nil, nil
	}
	return res.Data, nil
}
