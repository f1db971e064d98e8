package service

import (
	"context"
	"strings"
	"time"

	"master_ms/internal/api/dto"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
)

type CountryService struct {
	repo     *repository.CountryRepo
	dropdown *DropdownCache
}

func NewCountryService(repo *repository.CountryRepo, dropdown *DropdownCache) *CountryService {
	return &CountryService{repo: repo, dropdown: dropdown}
}

// ==================== 查询 ====================

// List 未删除国家分页列表
func (s *CountryService) List(ctx context.Context, q ListQuery) (*repository.Page[model.Country], error) {
	return s.repo.FindManyWithPaginate(ctx, q.filter(false, s.repo.SearchScope(q.SearchText)), q.Page)
}

// ListDeleted 已删除国家分页列表，仅按名称搜索
func (s *CountryService) ListDeleted(ctx context.Context, q ListQuery) (*repository.Page[model.Country], error) {
	search := repository.Search(q.SearchText, s.repo.Col("country_name"))
	return s.repo.FindManyWithPaginate(ctx, q.filter(true, search), q.Page)
}

// Dropdown 启用国家下拉
func (s *CountryService) Dropdown(ctx context.Context) ([]dto.CountryOption, error) {
	return cachedList(ctx, s.dropdown, dropdownCountry, func(ctx context.Context) ([]dto.CountryOption, error) {
		list, err := s.repo.Dropdown(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.CountryOption, 0, len(list))
		for _, c := range list {
			out = append(out, dto.CountryOption{UUID: c.UUID, CountryName: c.CountryName})
		}
		return out, nil
	})
}

func (s *CountryService) WarmDropdown(ctx context.Context) error {
	s.dropdown.Invalidate(ctx, dropdownCountry)
	_, err := s.Dropdown(ctx)
	return err
}

// Get 按 uuid 查询
func (s *CountryService) Get(ctx context.Context, uuid string) (*model.Country, error) {
	country, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(country, err, "Data not found"); err != nil {
		return nil, err
	}
	return country, nil
}

// ==================== 写操作 ====================

// Create 新增国家，iso_code 命中已删除记录时覆盖并恢复
func (s *CountryService) Create(ctx context.Context, req *dto.CreateCountryReq, operatorID int64) (*model.Country, error) {
	name := strings.TrimSpace(req.CountryName)
	iso := strings.TrimSpace(req.IsoCode)

	sameName, err := s.repo.FindOne(ctx, repository.Where(repository.EqualFold(s.repo.Col("country_name"), name)))
	if err != nil {
		return nil, err
	}
	if sameName != nil {
		return nil, apperr.BadRequest("record is already exist.")
	}

	sameISO, err := s.repo.FindOne(ctx, repository.Where(repository.EqualFold(s.repo.Col("iso_code"), iso)))
	if err != nil {
		return nil, err
	}
	if sameISO != nil {
		return nil, apperr.BadRequest("country with this iso code already exist.")
	}

	country := &model.Country{
		CountryName:  name,
		IsoCode:      iso,
		MobileCode:   int(req.MobileCode),
		CurrencyCode: strings.TrimSpace(req.CurrencyCode),
	}
	country.IsActive = bool(req.IsActive)
	country.CreatedBy = model.Operator(operatorID)

	update := model.ReviveFields()
	update["country_name"] = country.CountryName
	update["mobile_code"] = country.MobileCode
	update["currency_code"] = country.CurrencyCode
	update["is_active"] = country.IsActive
	update["updated_by"] = model.Operator(operatorID)
	update["updated_at"] = time.Now()

	if err := s.repo.UpsertByIso(ctx, country, update); err != nil {
		return nil, duplicateAs(err, apperr.BadRequest("record is already exist."))
	}

	s.dropdown.Invalidate(ctx, dropdownCountry)
	return s.repo.FindOne(ctx, repository.Where(repository.Eq(s.repo.Col("iso_code"), iso)))
}

// Update 修改国家
func (s *CountryService) Update(ctx context.Context, uuid string, req *dto.UpdateCountryReq, operatorID int64) (*model.Country, error) {
	country, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(country, err, "Data not found"); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.CountryName)
	iso := strings.TrimSpace(req.IsoCode)
	others := repository.NotUUID(s.repo.Table(), uuid)

	sameISO, err := s.repo.FindOne(ctx, repository.Where(others, repository.EqualFold(s.repo.Col("iso_code"), iso)))
	if err != nil {
		return nil, err
	}
	if sameISO != nil {
		return nil, apperr.BadRequest("country with this iso code already exist.")
	}

	sameName, err := s.repo.FindOne(ctx, repository.Where(others, repository.EqualFold(s.repo.Col("country_name"), name)))
	if err != nil {
		return nil, err
	}
	if sameName != nil {
		return nil, apperr.BadRequest("country with same name already exist.")
	}

	deleted, err := s.repo.FindOne(ctx, repository.WhereDeleted(repository.EqualFold(s.repo.Col("country_name"), name)))
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		return nil, apperr.BadRequest("country already exist in deleted record")
	}

	fields := map[string]interface{}{
		"country_name":  name,
		"iso_code":      iso,
		"mobile_code":   int(req.MobileCode),
		"currency_code": strings.TrimSpace(req.CurrencyCode),
		"updated_by":    model.Operator(operatorID),
	}
	if req.IsActive != nil {
		fields["is_active"] = bool(*req.IsActive)
	}

	if _, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), country.ID)), fields); err != nil {
		return nil, duplicateAs(err, apperr.BadRequest("country with this iso code already exist."))
	}

	s.dropdown.Invalidate(ctx, dropdownCountry)
	return s.repo.FindByUUID(ctx, uuid)
}

// ToggleVisibility 切换可见性
func (s *CountryService) ToggleVisibility(ctx context.Context, uuid string, active bool, operatorID int64) error {
	country, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(country, err, "No data found."); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), country.ID)), map[string]interface{}{
		"is_active":  active,
		"updated_by": model.Operator(operatorID),
	})
	if err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownCountry)
	return nil
}

// Delete 软删除
func (s *CountryService) Delete(ctx context.Context, uuid string, operatorID int64) error {
	country, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(country, err, "Data not found"); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), country.ID)), model.SoftDeleteFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownCountry)
	return nil
}

// Restore 恢复已删除国家
func (s *CountryService) Restore(ctx context.Context, uuid string, operatorID int64) error {
	country, err := s.repo.FindOne(ctx, repository.WhereDeleted(repository.ByUUID(s.repo.Table(), uuid)))
	if err = exists(country, err, "Data not found"); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.WhereDeleted(repository.ByID(s.repo.Table(), country.ID)), model.RestoreFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownCountry)
	return nil
}
