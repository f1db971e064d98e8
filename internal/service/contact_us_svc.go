package service

import (
	"context"
	"strings"

	"master_ms/internal/api/dto"
	"master_ms/internal/model"
	"master_ms/internal/repository"
	"master_ms/pkg/apperr"
)

// ContactUsService 联系我们留言，无软删除
type ContactUsService struct {
	repo *repository.ContactUsRepo
}

func NewContactUsService(repo *repository.ContactUsRepo) *ContactUsService {
	return &ContactUsService{repo: repo}
}

func (s *ContactUsService) List(ctx context.Context, q ListQuery) (*repository.Page[model.ContactUs], error) {
	return s.repo.FindManyWithPaginate(ctx, q.filter(false, s.repo.SearchScope(q.SearchText)), q.Page)
}

func (s *ContactUsService) Get(ctx context.Context, uuid string) (*model.ContactUs, error) {
	item, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(item, err, "Data not found"); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ContactUsService) Create(ctx context.Context, req *dto.CreateContactUsReq, operatorID int64) (*model.ContactUs, error) {
	item := &model.ContactUs{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.BusinessEmail),
		UserMessage: req.Message,
	}
	item.IsActive = req.IsActive != nil && bool(*req.IsActive)
	item.CreatedBy = model.Operator(operatorID)

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperr.BadRequest("Error while creating contact us.").WithErr(err)
	}
	return item, nil
}

// Delete 物理删除
func (s *ContactUsService) Delete(ctx context.Context, uuid string) error {
	item, err := s.repo.FindByUUID(ctx, uuid)
	if err = exists(item, err, "Data not found"); err != nil {
		return err
	}

	n, err := s.repo.DeleteByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.BadRequest("Error while deleting contact us.")
	}
	return nil
}
