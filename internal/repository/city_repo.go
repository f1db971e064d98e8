package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type CityRepo struct {
	Repo[model.City]
}

func NewCityRepo(db *gorm.DB) *CityRepo {
	return &CityRepo{Repo: newRepo[model.City](db)}
}

func (r *CityRepo) FindByUUID(ctx context.Context, uuid string) (*model.City, error) {
	return r.FindOne(ctx, Where(ByUUID(r.Table(), uuid)))
}

// SearchScope 按城市名或所属省份名模糊搜索
func (r *CityRepo) SearchScope(text string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if text == "" {
			return db
		}
		pattern := ContainsPattern(text)
		return db.Where(
			"(LOWER("+r.Col("city_name")+") LIKE ? ESCAPE '\\' OR "+r.Col("state_id")+
				" IN (SELECT id FROM states WHERE LOWER(state_name) LIKE ? ESCAPE '\\'))",
			pattern, pattern,
		)
	}
}

// NameScope 同一省份下的城市名
func (r *CityRepo) NameScope(stateID int64, cityName string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(r.Col("state_id")+" = ?", stateID).
			Where("LOWER("+r.Col("city_name")+") = LOWER(?)", cityName)
	}
}

// UpsertByStateAndName 以 (state_id, city_name) 为唯一键新增或覆盖
func (r *CityRepo) UpsertByStateAndName(ctx context.Context, c *model.City, update map[string]interface{}) error {
	return r.Upsert(ctx, c, []string{"state_id", "city_name"}, update)
}

// Dropdown 启用中的城市，stateID > 0 时按省份过滤
func (r *CityRepo) Dropdown(ctx context.Context, stateID int64) ([]model.City, error) {
	scopes := []Scope{Active(r.Table())}
	if stateID > 0 {
		scopes = append(scopes, Eq(r.Col("state_id"), stateID))
	}
	f := Where(scopes...).WithSelect("id", "uuid", "city_name")
	f.Order = r.Col("city_name") + " ASC"
	return r.FindMany(ctx, f)
}
