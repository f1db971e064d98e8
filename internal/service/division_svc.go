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

type DivisionService struct {
	repo     *repository.DivisionRepo
	dropdown *DropdownCache
}

func NewDivisionService(repo *repository.DivisionRepo, dropdown *DropdownCache) *DivisionService {
	return &DivisionService{repo: repo, dropdown: dropdown}
}

// ==================== 查询 ====================

func (s *DivisionService) List(ctx context.Context, q ListQuery) (*repository.Page[model.Division], error) {
	return s.repo.FindManyWithPaginate(ctx, q.filter(false, s.repo.SearchScope(q.SearchText)), q.Page)
}

func (s *DivisionService) ListDeleted(ctx context.Context, q ListQuery) (*repository.Page[model.Division], error) {
	return s.repo.FindManyWithPaginate(ctx, q.filter(true, s.repo.SearchScope(q.SearchText)), q.Page)
}

func (s *DivisionService) Dropdown(ctx context.Context) ([]dto.DivisionOption, error) {
	return cachedList(ctx, s.dropdown, dropdownDivision, func(ctx context.Context) ([]dto.DivisionOption, error) {
		list, err := s.repo.Dropdown(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.DivisionOption, 0, len(list))
		for _, d := range list {
			out = append(out, dto.DivisionOption{UUID: d.UUID, DivisionName: d.DivisionName, Slug: d.Slug})
		}
		return out, nil
	})
}

func (s *DivisionService) WarmDropdown(ctx context.Context) error {
	s.dropdown.Invalidate(ctx, dropdownDivision)
	_, err := s.Dropdown(ctx)
	return err
}

func (s *DivisionService) Get(ctx context.Context, uuid string) (*model.Division, error) {
	division, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(division, err, "Data not found"); err != nil {
		return nil, err
	}
	return division, nil
}

// ==================== 写操作 ====================

// Create 名称或 slug 与未删除记录冲突时拒绝，slug 命中已删除记录时覆盖恢复
func (s *DivisionService) Create(ctx context.Context, req *dto.DivisionReq, operatorID int64) error {
	name := strings.TrimSpace(req.DivisionName)
	slug := strings.TrimSpace(req.Slug)

	live, err := s.repo.FindOne(ctx, repository.Where(repository.AnyEqualFold(map[string]string{
		s.repo.Col("division_name"): name,
		s.repo.Col("slug"):          slug,
	})))
	if err != nil {
		return err
	}
	if live != nil {
		return apperr.BadRequest("Division already exist.")
	}

	division := &model.Division{DivisionName: name, Slug: slug}
	division.IsActive = req.Active()
	division.CreatedBy = model.Operator(operatorID)

	update := model.ReviveFields()
	update["division_name"] = name
	update["is_active"] = division.IsActive
	update["updated_by"] = model.Operator(operatorID)
	update["updated_at"] = time.Now()

	if err := s.repo.UpsertBySlug(ctx, division, update); err != nil {
		return duplicateAs(err, apperr.BadRequest("Division already exist."))
	}

	s.dropdown.Invalidate(ctx, dropdownDivision)
	return nil
}

// Update 其他未删除记录的名称或 slug 包含新值时拒绝
func (s *DivisionService) Update(ctx context.Context, uuid string, req *dto.DivisionReq, operatorID int64) error {
	division, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(division, err, "Data not found"); err != nil {
		return err
	}

	name := strings.TrimSpace(req.DivisionName)
	slug := strings.TrimSpace(req.Slug)

	other, err := s.repo.FindOne(ctx, repository.Where(
		repository.NotUUID(s.repo.Table(), uuid),
		repository.AnyContains(map[string]string{
			s.repo.Col("division_name"): name,
			s.repo.Col("slug"):          slug,
		}),
	))
	if err != nil {
		return err
	}
	if other != nil {
		return apperr.BadRequest("Division already exist.")
	}

	fields := map[string]interface{}{
		"division_name": name,
		"slug":          slug,
		"updated_by":    model.Operator(operatorID),
	}
	if req.IsActive != nil {
		fields["is_active"] = bool(*req.IsActive)
	}

	n, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), division.ID)), fields)
	if err != nil {
		return duplicateAs(err, apperr.BadRequest("Division already exist."))
	}
	if n == 0 {
		return apperr.BadRequest("Error while updating division.")
	}

	s.dropdown.Invalidate(ctx, dropdownDivision)
	return nil
}

func (s *DivisionService) ToggleVisibility(ctx context.Context, uuid string, active bool, operatorID int64) error {
	division, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(division, err, "No data found."); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), division.ID)), map[string]interface{}{
		"is_active":  active,
		"updated_by": model.Operator(operatorID),
	})
	if err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownDivision)
	return nil
}

func (s *DivisionService) Delete(ctx context.Context, uuid string, operatorID int64) error {
	division, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(division, err, "Data not found"); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), division.ID)), model.SoftDeleteFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownDivision)
	return nil
}

func (s *DivisionService) Restore(ctx context.Context, uuid string, operatorID int64) error {
	division, err := s.repo.FindOne(ctx, repository.WhereDeleted(repository.ByUUID(s.repo.Table(), uuid)))
	if err = exists(division, err, "Data not found"); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.WhereDeleted(repository.ByID(s.repo.Table(), division.ID)), model.RestoreFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownDivision)
	return nil
}
