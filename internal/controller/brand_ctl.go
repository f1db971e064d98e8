package controller

import (
	"context"

	"master_ms/internal/api/dto"
	"master_ms/internal/service"
)

// 品牌模块返回 i18n key，由 ExceptionHandler 按请求语言翻译
const brandFetched = "brand._brand_fetched_successfully"

type BrandController struct {
	svc *service.BrandService
}

func NewBrandController(svc *service.BrandService) *BrandController {
	return &BrandController{svc: svc}
}

func (c *BrandController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK(brandFetched, page), nil
}

func (c *BrandController) FetchAllDeleted(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.ListDeleted(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK(brandFetched, page), nil
}

func (c *BrandController) Dropdown(ctx context.Context, p *dto.Payload) (interface{}, error) {
	list, err := c.svc.Dropdown(ctx)
	if err != nil {
		return nil, err
	}
	return dto.OK(brandFetched, list), nil
}

func (c *BrandController) FindByID(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	brand, err := c.svc.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return dto.OK(brandFetched, brand), nil
}

func (c *BrandController) Create(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.BrandReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	brand, err := c.svc.Create(ctx, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("brand._brand_created_successfully", brand), nil
}

func (c *BrandController) Update(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	var req dto.BrandReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	brand, err := c.svc.Update(ctx, uuid, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("brand._brand_updated_successfully", brand), nil
}

func (c *BrandController) Restore(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Restore(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("brand._brand_restore_successfully", nil), nil
}

func (c *BrandController) Delete(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Delete(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("brand._brand_deleted_successfully", nil), nil
}

func (c *BrandController) ToggleVisibility(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	active, err := visibility(p)
	if err != nil {
		return nil, err
	}
	if err := c.svc.ToggleVisibility(ctx, uuid, active, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("brand._brand_visibility_updated_successfullt", nil), nil
}
