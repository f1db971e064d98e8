package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type ContactUsRepo struct {
	Repo[model.ContactUs]
}

func NewContactUsRepo(db *gorm.DB) *ContactUsRepo {
	return &ContactUsRepo{Repo: newRepo[model.ContactUs](db)}
}

func (r *ContactUsRepo) FindByUUID(ctx context.Context, uuid string) (*model.ContactUs, error) {
	return r.FindOne(ctx, Where(ByUUID(r.Table(), uuid)))
}

func (r *ContactUsRepo) SearchScope(text string) Scope {
	return Search(text, r.Col("email"), r.Col("name"), r.Col("user_message"))
}

// DeleteByUUID 物理删除
func (r *ContactUsRepo) DeleteByUUID(ctx context.Context, uuid string) (int64, error) {
	return r.Delete(ctx, WhereAny(ByUUID(r.Table(), uuid)))
}
