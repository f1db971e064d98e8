package controller

import (
	"context"

	"master_ms/internal/api/dto"
	"master_ms/internal/service"
)

// ==================== Division ====================

type DivisionController struct {
	svc *service.DivisionService
}

func NewDivisionController(svc *service.DivisionService) *DivisionController {
	return &DivisionController{svc: svc}
}

func (c *DivisionController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("Division fetched successfully.", page), nil
}

func (c *DivisionController) FetchAllDeleted(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.ListDeleted(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("Division fetched successfully.", page), nil
}

func (c *DivisionController) Dropdown(ctx context.Context, p *dto.Payload) (interface{}, error) {
	list, err := c.svc.Dropdown(ctx)
	if err != nil {
		return nil, err
	}
	return dto.OK("Division fetched successfully.", list), nil
}

func (c *DivisionController) FindByID(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	division, err := c.svc.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return dto.OK("Division fetched successfully", division), nil
}

func (c *DivisionController) Create(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.DivisionReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.svc.Create(ctx, &req, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("Division created successfully", nil), nil
}

func (c *DivisionController) Update(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	var req dto.DivisionReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.svc.Update(ctx, uuid, &req, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("Division updated successfully", nil), nil
}

func (c *DivisionController) Restore(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Restore(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("Division restored successfully", nil), nil
}

func (c *DivisionController) Delete(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Delete(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("Division deleted successfully", nil), nil
}

func (c *DivisionController) ToggleVisibility(ctx context.Context, p *dto.Payload) (interface{}, error) {
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
	return dto.OK("Division visibility updated successfully", nil), nil
}

// ==================== Contact Us ====================

type ContactUsController struct {
	svc *service.ContactUsService
}

func NewContactUsController(svc *service.ContactUsService) *ContactUsController {
	return &ContactUsController{svc: svc}
}

func (c *ContactUsController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("Contact us fetched successfully.", page), nil
}

func (c *ContactUsController) FindByID(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	item, err := c.svc.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return dto.OK("Contact us data fetched successfully", item), nil
}

func (c *ContactUsController) Create(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.CreateContactUsReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	item, err := c.svc.Create(ctx, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("Contact us created successfully", item), nil
}

func (c *ContactUsController) Delete(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Delete(ctx, uuid); err != nil {
		return nil, err
	}
	return dto.OK("Contact us data deleted successfully", nil), nil
}
