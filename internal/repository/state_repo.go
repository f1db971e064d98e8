package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type StateRepo struct {
	Repo[model.State]
}

func NewStateRepo(db *gorm.DB) *StateRepo {
	return &StateRepo{Repo: newRepo[model.State](db)}
}

func (r *StateRepo) FindByUUID(ctx context.Context, uuid string) (*model.State, error) {
	return r.FindOne(ctx, Where(ByUUID(r.Table(), uuid)))
}

// SearchScope 按省份名或所属国家名模糊搜索
func (r *StateRepo) SearchScope(text string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if text == "" {
			return db
		}
		pattern := ContainsPattern(text)
		return db.Where(
			"(LOWER("+r.Col("state_name")+") LIKE ? ESCAPE '\\' OR "+r.Col("country_id")+
				" IN (SELECT id FROM countries WHERE LOWER(country_name) LIKE ? ESCAPE '\\'))",
			pattern, pattern,
		)
	}
}

// NameOrCodeScope 同一国家下名称或简码相同 (不区分大小写)
func (r *StateRepo) NameOrCodeScope(countryID int64, name, shortCode string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(r.Col("country_id")+" = ?", countryID).
			Scopes(AnyEqualFold(map[string]string{
				r.Col("state_name"): name,
				r.Col("short_code"): shortCode,
			}))
	}
}

// Dropdown 启用中的省份，countryID > 0 时按国家过滤
func (r *StateRepo) Dropdown(ctx context.Context, countryID int64) ([]model.State, error) {
	scopes := []Scope{Active(r.Table())}
	if countryID > 0 {
		scopes = append(scopes, Eq(r.Col("country_id"), countryID))
	}
	f := Where(scopes...).WithSelect("id", "uuid", "state_name")
	f.Order = r.Col("state_name") + " ASC"
	return r.FindMany(ctx, f)
}
