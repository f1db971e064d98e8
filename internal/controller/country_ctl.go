package controller

import (
	"context"

	"master_ms/internal/api/dto"
	"master_ms/internal/service"
)

type CountryController struct {
	svc *service.CountryService
}

func NewCountryController(svc *service.CountryService) *CountryController {
	return &CountryController{svc: svc}
}

// FetchAll 分页查询国家
func (c *CountryController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("Country fetched successfully.", page), nil
}

// FetchAllDeleted 分页查询已删除国家
func (c *CountryController) FetchAllDeleted(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.ListDeleted(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("Deleted Country fetched successfully.", page), nil
}

// Dropdown 国家下拉
func (c *CountryController) Dropdown(ctx context.Context, p *dto.Payload) (interface{}, error) {
	list, err := c.svc.Dropdown(ctx)
	if err != nil {
		return nil, err
	}
	return dto.OK("Country fetched successfully.", list), nil
}

func (c *CountryController) FindByID(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	country, err := c.svc.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return dto.OK("country fetched successfully", country), nil
}

func (c *CountryController) Create(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.CreateCountryReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	country, err := c.svc.Create(ctx, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("country created successfully", country), nil
}

func (c *CountryController) Update(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	var req dto.UpdateCountryReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	country, err := c.svc.Update(ctx, uuid, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("country updated successfully", country), nil
}

func (c *CountryController) Restore(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Restore(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("country restored successfully", nil), nil
}

func (c *CountryController) Delete(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Delete(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("Country deleted successfully", nil), nil
}

func (c *CountryController) ToggleVisibility(ctx context.Context, p *dto.Payload) (interface{}, error) {
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
	return dto.OK("Country visibility updated successfully", nil), nil
}
