package repository

import (
	"context"

	"master_ms/internal/model"

	"gorm.io/gorm"
)

type ProductRepo struct {
	Repo[model.Product]
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{Repo: newRepo[model.Product](db)}
}

// FindByUUID 查询未删除的商品 (只取 id/uuid/title)
func (r *ProductRepo) FindByUUID(ctx context.Context, uuid string) (*model.Product, error) {
	f := Where(ByUUID(r.Table(), uuid)).WithSelect("id", "uuid", "title", "is_active")
	return r.FindOne(ctx, f)
}

// ProductTitleScope 按关联商品标题模糊搜索，column 为外键列
func ProductTitleScope(column, text string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if text == "" {
			return db
		}
		return db.Where(
			column+" IN (SELECT id FROM products WHERE LOWER(title) LIKE ? ESCAPE '\\')",
			ContainsPattern(text),
		)
	}
}
