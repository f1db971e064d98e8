package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type CountryRepo struct {
	Repo[model.Country]
}

func NewCountryRepo(db *gorm.DB) *CountryRepo {
	return &CountryRepo{Repo: newRepo[model.Country](db)}
}

// FindByUUID 查询未删除的国家
func (r *CountryRepo) FindByUUID(ctx context.Context, uuid string) (*model.Country, error) {
	return r.FindOne(ctx, Where(ByUUID(r.Table(), uuid)))
}

// SearchScope 按名称、ISO、货币模糊搜索
func (r *CountryRepo) SearchScope(text string) Scope {
	return Search(text, r.Col("country_name"), r.Col("iso_code"), r.Col("currency_code"))
}

// UpsertByIso 以 iso_code 为唯一键新增或覆盖
func (r *CountryRepo) UpsertByIso(ctx context.Context, c *model.Country, update map[string]interface{}) error {
	return r.Upsert(ctx, c, []string{"iso_code"}, update)
}

// Dropdown 启用中的国家 (uuid + 名称)
func (r *CountryRepo) Dropdown(ctx context.Context) ([]model.Country, error) {
	f := Where(Active(r.Table())).WithSelect("id", "uuid", "country_name")
	f.Order = r.Col("country_name") + " ASC"
	return r.FindMany(ctx, f)
}
