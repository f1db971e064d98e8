package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type BrandRepo struct {
	Repo[model.Brand]
}

func NewBrandRepo(db *gorm.DB) *BrandRepo {
	return &BrandRepo{Repo: newRepo[model.Brand](db)}
}

func (r *BrandRepo) FindByUUID(ctx context.Context, uuid string) (*model.Brand, error) {
	return r.FindOne(ctx, Where(ByUUID(r.Table(), uuid)))
}

func (r *BrandRepo) SearchScope(text string) Scope {
	return Search(text, r.Col("brand_name"))
}

// UpsertByName 以 brand_name 为唯一键新增或覆盖
func (r *BrandRepo) UpsertByName(ctx context.Context, b *model.Brand, update map[string]interface{}) error {
	return r.Upsert(ctx, b, []string{"brand_name"}, update)
}

func (r *BrandRepo) Dropdown(ctx context.Context) ([]model.Brand, error) {
	f := Where(Active(r.Table())).WithSelect("id", "uuid", "brand_name")
	f.Order = r.Col("brand_name") + " ASC"
	return r.FindMany(ctx, f)
}
