package service

import (
	"context"
	"strings"
	"time"

	"master_ms/internal/api/dto"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
	"master_ms/pkg/utils"
)

type CityService struct {
	repo     *repository.CityRepo
	states   *repository.StateRepo
	dropdown *DropdownCache
}

func NewCityService(repo *repository.CityRepo, states *repository.StateRepo, dropdown *DropdownCache) *CityService {
	return &CityService{repo: repo, states: states, dropdown: dropdown}
}

// ==================== 查询 ====================

func (s *CityService) List(ctx context.Context, q ListQuery) (*repository.Page[model.City], error) {
	f := q.filter(false, s.repo.SearchScope(q.SearchText)).WithPreload("State")
	return s.repo.FindManyWithPaginate(ctx, f, q.Page)
}

func (s *CityService) ListDeleted(ctx context.Context, q ListQuery) (*repository.Page[model.City], error) {
	f := q.filter(true, s.repo.SearchScope(q.SearchText)).WithPreload("State")
	return s.repo.FindManyWithPaginate(ctx, f, q.Page)
}

// Dropdown 启用城市下拉，stateUUID 为空时返回全部
func (s *CityService) Dropdown(ctx context.Context, stateUUID string) ([]dto.CityOption, error) {
	var stateID int64
	if stateUUID != "" {
		state, err := s.states.FindByUUID(ctx, stateUUID)
		if err = exists(state, err, "state does not exist."); err != nil {
			return nil, err
		}
		stateID = state.ID
	}

	key := dropdownCity + ":" + orAll(stateUUID)
	return cachedList(ctx, s.dropdown, key, func(ctx context.Context) ([]dto.CityOption, error) {
		list, err := s.repo.Dropdown(ctx, stateID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CityOption, 0, len(list))
		for _, c := range list {
			out = append(out, dto.CityOption{UUID: c.UUID, CityName: c.CityName})
		}
		return out, nil
	})
}

func (s *CityService) WarmDropdown(ctx context.Context) error {
	s.dropdown.Invalidate(ctx, dropdownCity)
	_, err := s.Dropdown(ctx, "")
	return err
}

func (s *CityService) Get(ctx context.Context, uuid string) (*model.City, error) {
	city, err := s.repo.FindOne(ctx, repository.Where(repository.ByUUID(s.repo.Table(), uuid)).WithPreload("State"))
	if err = exists(city, err, "Data not found"); err != nil {
		return nil, err
	}
	return city, nil
}

// ==================== 写操作 ====================

func (s *CityService) liveState(ctx context.Context, uuid string) (*model.State, error) {
	state, err := s.states.FindByUUID(ctx, uuid)
	if err = exists(state, err, "state does not exist."); err != nil {
		return nil, err
	}
	return state, nil
}

// Create 新增城市，(state_id, city_name) 命中已删除记录时覆盖并恢复
func (s *CityService) Create(ctx context.Context, req *dto.CityReq, operatorID int64) (*model.City, error) {
	state, err := s.liveState(ctx, req.StateUUID)
	if err != nil {
		return nil, err
	}

	name := utils.TitleCase(strings.TrimSpace(req.Name))
	live, err := s.repo.FindOne(ctx, repository.Where(s.repo.NameScope(state.ID, name)))
	if err != nil {
		return nil, err
	}
	if live != nil {
		return nil, apperr.BadRequest("City already exist.")
	}

	city := &model.City{StateID: state.ID, CityName: name}
	city.IsActive = req.Active()
	city.CreatedBy = model.Operator(operatorID)

	update := model.ReviveFields()
	update["is_active"] = city.IsActive
	update["updated_by"] = model.Operator(operatorID)
	update["updated_at"] = time.Now()

	if err := s.repo.UpsertByStateAndName(ctx, city, update); err != nil {
		return nil, apperr.Forbidden("Error while creating city.").WithErr(err)
	}

	s.dropdown.Invalidate(ctx, dropdownCity)
	created, err := s.repo.FindOne(ctx, repository.Where(s.repo.NameScope(state.ID, name)).WithPreload("State"))
	if err = exists(created, err, "Data not found"); err != nil {
		return nil, err
	}
	return created, nil
}

// Update 修改城市
func (s *CityService) Update(ctx context.Context, uuid string, req *dto.CityReq, operatorID int64) (*model.City, error) {
	city, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(city, err, "city information not found."); err != nil {
		return nil, err
	}

	state, err := s.liveState(ctx, req.StateUUID)
	if err != nil {
		return nil, err
	}

	name := utils.TitleCase(strings.TrimSpace(req.Name))
	other, err := s.repo.FindOne(ctx, repository.Where(repository.NotUUID(s.repo.Table(), uuid), s.repo.NameScope(state.ID, name)))
	if err != nil {
		return nil, err
	}
	if other != nil {
		return nil, apperr.BadRequest("city already exist.")
	}

	deleted, err := s.repo.FindOne(ctx, repository.WhereDeleted(s.repo.NameScope(state.ID, name)))
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		return nil, apperr.BadRequest("city already exist, In deleted records.")
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), city.ID)), map[string]interface{}{
		"state_id":   state.ID,
		"city_name":  name,
		"is_active":  req.Active(),
		"updated_by": model.Operator(operatorID),
	})
	if err != nil {
		return nil, duplicateAs(err, apperr.BadRequest("city already exist."))
	}

	s.dropdown.Invalidate(ctx, dropdownCity)
	return s.Get(ctx, uuid)
}

func (s *CityService) ToggleVisibility(ctx context.Context, uuid string, active bool, operatorID int64) error {
	city, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(city, err, "No data found."); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), city.ID)), map[string]interface{}{
		"is_active":  active,
		"updated_by": model.Operator(operatorID),
	})
	if err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownCity)
	return nil
}

func (s *CityService) Delete(ctx context.Context, uuid string, operatorID int64) error {
	city, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(city, err, "No data found."); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), city.ID)), model.SoftDeleteFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownCity)
	return nil
}

func (s *CityService) Restore(ctx context.Context, uuid string, operatorID int64) error {
	city, err := s.repo.FindOne(ctx, repository.WhereDeleted(repository.ByUUID(s.repo.Table(), uuid)))
	if err = exists(city, err, "City information not found."); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.WhereDeleted(repository.ByID(s.repo.Table(), city.ID)), model.RestoreFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownCity)
	return nil
}
