package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"master_ms/internal/api/dto"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
)

// 品牌模块消息为 i18n key，由 controller 按请求语言翻译
const (
	brandNotFound  = "brand._we_could_not_find_what_you_are_looking_for"
	brandDuplicate = "brand._record_already_exists"
)

type BrandService struct {
	repo     *repository.BrandRepo
	storage  *StorageService
	dropdown *DropdownCache
	logger   *zap.Logger
}

func NewBrandService(repo *repository.BrandRepo, storage *StorageService, dropdown *DropdownCache, logger *zap.Logger) *BrandService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrandService{repo: repo, storage: storage, dropdown: dropdown, logger: logger}
}

// ==================== 查询 ====================

func (s *BrandService) List(ctx context.Context, q ListQuery) (*repository.Page[model.Brand], error) {
	return s.repo.FindManyWithPaginate(ctx, q.filter(false, s.repo.SearchScope(q.SearchText)), q.Page)
}

func (s *BrandService) ListDeleted(ctx context.Context, q ListQuery) (*repository.Page[model.Brand], error) {
	return s.repo.FindManyWithPaginate(ctx, q.filter(true, s.repo.SearchScope(q.SearchText)), q.Page)
}

func (s *BrandService) Dropdown(ctx context.Context) ([]dto.BrandOption, error) {
	return cachedList(ctx, s.dropdown, dropdownBrand, func(ctx context.Context) ([]dto.BrandOption, error) {
		list, err := s.repo.Dropdown(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]dto.BrandOption, 0, len(list))
		for _, b := range list {
			out = append(out, dto.BrandOption{UUID: b.UUID, BrandName: b.BrandName})
		}
		return out, nil
	})
}

func (s *BrandService) WarmDropdown(ctx context.Context) error {
	s.dropdown.Invalidate(ctx, dropdownBrand)
	_, err := s.Dropdown(ctx)
	return err
}

func (s *BrandService) Get(ctx context.Context, uuid string) (*model.Brand, error) {
	brand, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(brand, err, brandNotFound); err != nil {
		return nil, err
	}
	return brand, nil
}

// ==================== 写操作 ====================

// resolveImage 内联 base64 图片上传到对象存储，返回 URL；普通 URL 原样返回
func (s *BrandService) resolveImage(ctx context.Context, image string) (string, error) {
	image = strings.TrimSpace(image)
	if !IsDataURI(image) {
		return image, nil
	}
	if s.storage == nil {
		return "", apperr.BadRequest("brand._error_while_uploading_brand_image")
	}

	url, err := s.storage.SaveDataURI(ctx, image, "brand")
	if err != nil {
		s.logger.Warn("brand image upload failed", zap.Error(err))
		return "", apperr.BadRequest("brand._error_while_uploading_brand_image").WithErr(err)
	}
	return url, nil
}

// Create 新增品牌，同名已删除品牌直接覆盖恢复
func (s *BrandService) Create(ctx context.Context, req *dto.BrandReq, operatorID int64) (*model.Brand, error) {
	name := strings.TrimSpace(req.BrandName)

	existing, err := s.repo.FindOneWithoutDelete(ctx, repository.Eq(s.repo.Col("brand_name"), name))
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.IsDeleted {
		return nil, apperr.BadRequest(brandDuplicate)
	}

	image, err := s.resolveImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	brand := &model.Brand{
		BrandName:         name,
		Image:             image,
		BrandAssociations: datatypes.JSON(req.BrandAssociations),
	}
	brand.IsActive = req.Active()
	brand.CreatedBy = model.Operator(operatorID)

	update := model.ReviveFields()
	update["is_active"] = brand.IsActive
	update["image"] = brand.Image
	update["brand_associations"] = brand.BrandAssociations
	update["updated_by"] = model.Operator(operatorID)
	update["updated_at"] = time.Now()

	if err := s.repo.UpsertByName(ctx, brand, update); err != nil {
		return nil, apperr.BadRequest("brand._error_while_creating_brand").WithErr(err)
	}

	s.dropdown.Invalidate(ctx, dropdownBrand)
	created, err := s.repo.FindOne(ctx, repository.Where(repository.Eq(s.repo.Col("brand_name"), name)))
	if err = exists(created, err, brandNotFound); err != nil {
		return nil, err
	}
	return created, nil
}

// Update 修改品牌；其他未删除品牌名称包含新名称时拒绝
func (s *BrandService) Update(ctx context.Context, uuid string, req *dto.BrandReq, operatorID int64) (*model.Brand, error) {
	brand, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(brand, err, brandNotFound); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.BrandName)
	other, err := s.repo.FindOne(ctx, repository.Where(
		repository.NotUUID(s.repo.Table(), uuid),
		repository.Search(name, s.repo.Col("brand_name")),
	))
	if err != nil {
		return nil, err
	}
	if other != nil {
		return nil, apperr.BadRequest("brand._brand_with_same_name_already_exists")
	}

	fields := map[string]interface{}{
		"brand_name": name,
		"updated_by": model.Operator(operatorID),
	}
	if req.Image != "" {
		image, err := s.resolveImage(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		fields["image"] = image
	}
	if len(req.BrandAssociations) > 0 {
		fields["brand_associations"] = datatypes.JSON(req.BrandAssociations)
	}
	if req.IsActive != nil {
		fields["is_active"] = bool(*req.IsActive)
	}

	if _, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), brand.ID)), fields); err != nil {
		return nil, duplicateAs(err, apperr.BadRequest("brand._brand_with_same_name_already_exists"))
	}

	if image, ok := fields["image"].(string); ok {
		s.removeImage(ctx, brand.Image, image)
	}

	s.dropdown.Invalidate(ctx, dropdownBrand)
	return s.repo.FindByUUID(ctx, uuid)
}

// removeImage 图片被替换后删除旧文件，失败只记日志
func (s *BrandService) removeImage(ctx context.Context, old, current string) {
	if s.storage == nil || old == "" || old == current || !s.storage.Owns(old) {
		return
	}
	if err := s.storage.Delete(ctx, old); err != nil {
		s.logger.Warn("delete old brand image failed", zap.String("image", old), zap.Error(err))
	}
}

func (s *BrandService) ToggleVisibility(ctx context.Context, uuid string, active bool, operatorID int64) error {
	brand, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(brand, err, brandNotFound); err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), brand.ID)), map[string]interface{}{
		"is_active":  active,
		"updated_by": model.Operator(operatorID),
	})
	if err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownBrand)
	return nil
}

func (s *BrandService) Delete(ctx context.Context, uuid string, operatorID int64) error {
	brand, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(brand, err, brandNotFound); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.Where(repository.ByID(s.repo.Table(), brand.ID)), model.SoftDeleteFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownBrand)
	return nil
}

func (s *BrandService) Restore(ctx context.Context, uuid string, operatorID int64) error {
	brand, err := s.repo.FindOne(ctx, repository.WhereDeleted(repository.ByUUID(s.repo.Table(), uuid)))
	if err = exists(brand, err, brandNotFound); err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, repository.WhereDeleted(repository.ByID(s.repo.Table(), brand.ID)), model.RestoreFields(operatorID)); err != nil {
		return err
	}

	s.dropdown.Invalidate(ctx, dropdownBrand)
	return nil
}
