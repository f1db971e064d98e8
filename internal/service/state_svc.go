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

type StateService struct {
	repo      *repository.StateRepo
	countries *repository.CountryRepo
	dropdown  *DropdownCache
}

func NewStateService(repo *repository.StateRepo, countries *repository.CountryRepo, dropdown *DropdownCache) *StateService {
	return &StateService{repo: repo, countries: countries, dropdown: dropdown}
}

// ==================== 查询 ====================

// List 未删除省份分页列表，按省份名或国家名搜索
func (s *StateService) List(ctx context.Context, q ListQuery) (*repository.Page[model.State], error) {
	f := q.filter(false, s.repo.SearchScope(q.SearchText)).WithPreload("Country")
	return s.repo.FindManyWithPaginate(ctx, f, q.Page)
}

// ListDeleted 已删除省份分页列表
func (s *StateService) ListDeleted(ctx context.Context, q ListQuery) (*repository.Page[model.State], error) {
	f := q.filter(true, s.repo.SearchScope(q.SearchText)).WithPreload("Country")
	return s.repo.FindManyWithPaginate(ctx, f, q.Page)
}

// Dropdown 启用省份下拉，countryUUID 为空时返回全部
func (s *StateService) Dropdown(ctx context.Context, countryUUID string) ([]dto.StateOption, error) {
	var countryID int64
	if countryUUID != "" {
		country, err := s.countries.FindByUUID(ctx, countryUUID)
		if err = exists(country, err, "country does not exist."); err != nil {
			return nil, err
		}
		countryID = country.ID
	}

	key := dropdownState + ":" + orAll(countryUUID)
	return cachedList(ctx, s.dropdown, key, func(ctx context.Context) ([]dto.StateOption, error) {
		list, err := s.repo.Dropdown(ctx, countryID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.StateOption, 0, len(list))
		for _, st := range list {
			out = append(out, dto.StateOption{UUID: st.UUID, StateName: st.StateName})
		}
		return out, nil
	})
}

func (s *StateService) WarmDropdown(ctx context.Context) error {
	s.dropdown.Invalidate(ctx, dropdownState)
	_, err := s.Dropdown(ctx, "")
	return err
}

// Get 按 uuid 查询
func (s *StateService) Get(ctx context.Context, uuid string) (*model.State, error) {
	state, err := s.repo.FindOne(ctx, repository.Where(repository.ByUUID(s.repo.Table(), uuid)).WithPreload("Country"))
	if err = exists(state, err, "Data not found"); err != nil {
		return nil, err
	}
	return state, nil
}

// ==================== 写操作 ====================

// liveCountry 所属国家必须存在且未删除
func (s *StateService) liveCountry(ctx context.Context, uuid string) (*model.Country, error) {
	country, err := s.countries.FindByUUID(ctx, uuid)
	if err = exists(country, err, "country does not exist."); err != nil {
		return nil, err
	}
	return country, nil
}

// Create 新增省份，命中已删除的同名/同简码记录时恢复该记录
func (s *StateService) Create(ctx context.Context, req *dto.StateReq, operatorID int64) (*model.State, error) {
	country, err := s.liveCountry(ctx, req.CountryUUID)
	if err != nil {
		return nil, err
	}

	name := utils.TitleCase(strings.TrimSpace(req.Name))
	shortCode := strings.TrimSpace(req.ShortCode)
	sameScope := s.repo.NameOrCodeScope(country.ID, name, shortCode)

	live, err := s.repo.FindOne(ctx, repository.Where(sameScope))
	if err != nil {
		return nil, err
	}
	if live != nil {
		return nil, apperr.BadRequest("record is already exist.")
	}

	deleted, err := s.repo.FindOne(ctx, repository.WhereDeleted(sameScope))
	if err != nil {
		return nil, err
	}

	if deleted != nil {
		fields := model.ReviveFields()
		fields["country_id"] = country.ID
		fields["state_name"] = name
		fields["short_code"] = shortCode
		fields["is_active"] = req.Active()
		fields["created_at"] = time.Now()
		fields["created_by"] = model.Operator(operatorID)
		fields["updated_by"] = nil

		if _, err := s.repo.Update(ctx, repository.WhereDeleted(repository.ByID(s.repo.Table(), deleted.ID)), fields); err != nil {
			return nil, duplicateAs(err, apperr.BadRequest("record is already exist."))
		}
		s.dropdown.Invalidate(ctx, dropdownState)
		return s.Get(ctx, deleted.UUID)
	}

	state := &model.State{CountryID: country.ID, StateName: name, ShortCode: shortCode}
	state.IsActive = req.Active()
	state.CreatedBy = model.Operator(operatorID)
	if err := s.repo.Create(ctx, state); err != nil {
		return nil, duplicateAs(err, apperr.BadRequest("record is already exist."))
	}

	s.dropdown.Invalidate(ctx, dropdownState)
	return s.Get(ctx, state.UUID)
}

// Update 修改省份
func (s *StateService) Update(ctx context.Context, uuid string, req *dto.StateReq, operatorID int64) (*model.State, error) {
	state, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(state, err, "State information not found."); err != nil {
		return nil, err
	}

	country, err := s.liveCountry(ctx, req.CountryUUID)
	if err != nil {
		return nil, err
	}

	name := utils.TitleCase(strings.TrimSpace(req.Name))
	shortCode := strings.TrimSpace(req.ShortCode)
	sameScope := s.repo.NameOrCodeScope(country.ID, name, shortCode)

	other, err := s.repo.FindOne(ctx, repository.Where(repository.NotUUID(s.repo.Table(), uuid), sameScope))
	if err != nil {
		return nil, err
	}
	if other != nil {
		return nil, apperr.BadRequest("record already exist.")
	}

	deleted, err := s.repo.FindOne(ctx, repository.WhereDeleted(sameScope))
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		return nil, apperr.BadRequest("State already exist, In deleted records.")
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), state.ID)), map[string]interface{}{
		"country_id": country.ID,
		"state_name": name,
		"short_code": shortCode,
		"is_active":  req.Active(),
		"updated_by": model.Operator(operatorID),
	})
	if err != nil {
		return nil, duplicateAs(err, apperr.BadRequest("record already exist."))
	}

	s.dropdown.Invalidate(ctx, dropdownState)
	return s.Get(ctx, uuid)
}

// ToggleVisibility 切换可见性
func (s *StateService) ToggleVisibility(ctx context.Context, uuid string, active bool, operatorID int64) error {
	state, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(state, err, "State information not found."); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), state.ID)), map[string]interface{}{
		"is_active":  active,
		"updated_by": model.Operator(operatorID),
	})
	if err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownState)
	return nil
}

// Delete 软删除
func (s *StateService) Delete(ctx context.Context, uuid string, operatorID int64) error {
	state, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(state, err, "State information not found."); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), state.ID)), model.SoftDeleteFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownState)
	return nil
}

// Restore 恢复已删除省份，视为重新创建
func (s *StateService) Restore(ctx context.Context, uuid string, operatorID int64) error {
	state, err := s.repo.FindOne(ctx, repository.WhereDeleted(repository.ByUUID(s.repo.Table(), uuid)))
	if err = exists(state, err, "State information not found."); err != nil {
		return err
	}

	fields := model.RestoreFields(operatorID)
	fields["created_at"] = time.Now()
	fields["created_by"] = model.Operator(operatorID)
	fields["updated_by"] = nil

	if _, err := s.repo.Update(ctx, repository.WhereDeleted(repository.ByID(s.repo.Table(), state.ID)), fields); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownState)
	return nil
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
