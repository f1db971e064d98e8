package repository

import (
	"context"
	"fmt"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type TaxRepo struct {
	Repo[model.Tax]
}

func NewTaxRepo(db *gorm.DB) *TaxRepo {
	return &TaxRepo{Repo: newRepo[model.Tax](db)}
}

func (r *TaxRepo) FindByUUID(ctx context.Context, uuid string) (*model.Tax, error) {
	return r.FindOne(ctx, Where(ByUUID(r.Table(), uuid)))
}

func (r *TaxRepo) SearchScope(text string) Scope {
	return Search(text, r.Col("tax_name"), r.Col("description"))
}

// UpsertByName 以 tax_name 为唯一键新增或覆盖 (Excel 导入)
func (r *TaxRepo) UpsertByName(ctx context.Context, t *model.Tax, update map[string]interface{}) error {
	return r.Upsert(ctx, t, []string{"tax_name"}, update)
}

// TaxColumns fetchTaxesByCondition 允许查询/过滤的列
var TaxColumns = map[string]bool{
	"id": true, "uuid": true, "tax_name": true, "description": true, "tax_type": true,
	"value_type": true, "tax_value": true, "is_active": true, "created_at": true, "updated_at": true,
}

// FindByCondition 按调用方传入的列与等值条件查询未删除的税费
func (r *TaxRepo) FindByCondition(ctx context.Context, selectCols []string, where map[string]interface{}) ([]model.Tax, error) {
	for _, c := range selectCols {
		if !TaxColumns[c] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, c)
		}
	}

	scopes := make([]Scope, 0, len(where))
	for _, col := range sortedAnyKeys(where) {
		if !TaxColumns[col] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, col)
		}
		scopes = append(scopes, Eq(r.Col(col), where[col]))
	}

	return r.FindMany(ctx, Where(scopes...).WithSelect(selectCols...))
}
