package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type DivisionRepo struct {
	Repo[model.Division]
}

func NewDivisionRepo(db *gorm.DB) *DivisionRepo {
	return &DivisionRepo{Repo: newRepo[model.Division](db)}
}

func (r *DivisionRepo) FindByUUID(ctx context.Context, uuid string) (*model.Division, error) {
	return r.FindOne(ctx, Where(ByUUID(r.Table(), uuid)))
}

func (r *DivisionRepo) SearchScope(text string) Scope {
	return Search(text, r.Col("division_name"), r.Col("slug"))
}

// UpsertBySlug 以 slug 为唯一键新增或覆盖
func (r *DivisionRepo) UpsertBySlug(ctx context.Context, d *model.Division, update map[string]interface{}) error {
	return r.Upsert(ctx, d, []string{"slug"}, update)
}

func (r *DivisionRepo) Dropdown(ctx context.Context) ([]model.Division, error) {
	f := Where(Active(r.Table())).WithSelect("id", "uuid", "division_name", "slug")
	f.Order = r.Col("division_name") + " ASC"
	return r.FindMany(ctx, f)
}
