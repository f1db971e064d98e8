package controller

import (
	"context"

	"master_ms/internal/api/dto"
	"master_ms/internal/service"
)

type TaxController struct {
	svc *service.TaxService
}

func NewTaxController(svc *service.TaxService) *TaxController {
	return &TaxController{svc: svc}
}

func (c *TaxController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("Tax fetched successfully.", page), nil
}

func (c *TaxController) FetchAllDeleted(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.ListDeleted(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("Deleted Tax fetched successfully.", page), nil
}

func (c *TaxController) FindByID(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	tax, err := c.svc.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return dto.OK("Tax fetched successfully.", tax), nil
}

func (c *TaxController) Create(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.TaxReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.svc.Create(ctx, &req, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("Tax created successfully", nil), nil
}

func (c *TaxController) Update(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	var req dto.TaxReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.svc.Update(ctx, uuid, &req, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("Tax updated successfully", nil), nil
}

func (c *TaxController) Delete(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Delete(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("Tax deleted successfully", nil), nil
}

func (c *TaxController) Restore(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Restore(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("tax restored successfully", nil), nil
}

func (c *TaxController) ToggleVisibility(ctx context.Context, p *dto.Payload) (interface{}, error) {
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
	return dto.OK("Tax visibility updated successfully", nil), nil
}

// Import Excel 批量导入
func (c *TaxController) Import(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.ImportTaxReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	n, err := c.svc.Import(ctx, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("Tax imported successfully", map[string]int{"imported": n}), nil
}

// FetchByCondition 供其他服务调用，直接返回列表，不包信封
func (c *TaxController) FetchByCondition(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.TaxConditionReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	return c.svc.FetchByCondition(ctx, &req)
}
