package controller

import (
	"context"
	"strings"

	"master_ms/internal/api/dto"
	"master_ms/internal/service"
)

// ==================== State ====================

type StateController struct {
	svc *service.StateService
}

func NewStateController(svc *service.StateService) *StateController {
	return &StateController{svc: svc}
}

func (c *StateController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("All states fetched successfully", page), nil
}

func (c *StateController) FetchAllDeleted(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.ListDeleted(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("All deleted states fetch successfully", page), nil
}

// Dropdown 省份下拉，uuid 或 data.country_uuid 指定国家
func (c *StateController) Dropdown(ctx context.Context, p *dto.Payload) (interface{}, error) {
	countryUUID := strings.TrimSpace(p.UUID)
	if countryUUID == "" {
		var req dto.StateDropdownReq
		if err := p.Bind(&req); err != nil {
			return nil, err
		}
		countryUUID = req.CountryUUID
	}

	list, err := c.svc.Dropdown(ctx, countryUUID)
	if err != nil {
		return nil, err
	}
	return dto.OK("All states fetched successfully", list), nil
}

func (c *StateController) FindByID(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	state, err := c.svc.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return dto.OK("state fetched successfully", state), nil
}

func (c *StateController) Create(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.StateReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	state, err := c.svc.Create(ctx, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("state created successfully", state), nil
}

func (c *StateController) Update(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	var req dto.StateReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	state, err := c.svc.Update(ctx, uuid, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("state updated successfully", state), nil
}

func (c *StateController) Restore(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Restore(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("state restored successfully", nil), nil
}

func (c *StateController) Delete(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Delete(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("State deleted successfully", nil), nil
}

func (c *StateController) ToggleVisibility(ctx context.Context, p *dto.Payload) (interface{}, error) {
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
	return dto.OK("State visibility updated successfully", nil), nil
}

// ==================== City ====================

type CityController struct {
	svc *service.CityService
}

func NewCityController(svc *service.CityService) *CityController {
	return &CityController{svc: svc}
}

func (c *CityController) FetchAll(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.List(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("city fetched successfully.", page), nil
}

func (c *CityController) FetchAllDeleted(ctx context.Context, p *dto.Payload) (interface{}, error) {
	page, err := c.svc.ListDeleted(ctx, listQuery(p))
	if err != nil {
		return nil, err
	}
	return dto.OK("All Deleted Cities fetched successfully.", page), nil
}

// Dropdown 城市下拉，uuid 或 data.state_uuid 指定省份
func (c *CityController) Dropdown(ctx context.Context, p *dto.Payload) (interface{}, error) {
	stateUUID := strings.TrimSpace(p.UUID)
	if stateUUID == "" {
		var req dto.CityDropdownReq
		if err := p.Bind(&req); err != nil {
			return nil, err
		}
		stateUUID = req.StateUUID
	}

	list, err := c.svc.Dropdown(ctx, stateUUID)
	if err != nil {
		return nil, err
	}
	return dto.OK("city fetched successfully.", list), nil
}

func (c *CityController) FindByID(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	city, err := c.svc.Get(ctx, uuid)
	if err != nil {
		return nil, err
	}
	return dto.OK("city fetched successfully", city), nil
}

func (c *CityController) Create(ctx context.Context, p *dto.Payload) (interface{}, error) {
	var req dto.CityReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	city, err := c.svc.Create(ctx, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("City created successfully.", city), nil
}

func (c *CityController) Update(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	var req dto.CityReq
	if err := p.Bind(&req); err != nil {
		return nil, err
	}
	city, err := c.svc.Update(ctx, uuid, &req, p.OperatorID())
	if err != nil {
		return nil, err
	}
	return dto.OK("city updated successfully", city), nil
}

func (c *CityController) Restore(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Restore(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("City restored successfully", nil), nil
}

func (c *CityController) Delete(ctx context.Context, p *dto.Payload) (interface{}, error) {
	uuid, err := p.RequireUUID()
	if err != nil {
		return nil, err
	}
	if err := c.svc.Delete(ctx, uuid, p.OperatorID()); err != nil {
		return nil, err
	}
	return dto.OK("City deleted successfully", nil), nil
}

func (c *CityController) ToggleVisibility(ctx context.Context, p *dto.Payload) (interface{}, error) {
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
	return dto.OK("city visibility updated successfully", nil), nil
}
