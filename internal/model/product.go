package model

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product 商品只读视图，由商品服务维护，这里只用于购物车/心愿单校验与展示
type Product struct {
	BaseModel
	Title          string         `gorm:"size:255;index" json:"title"`
	Slug           string         `gorm:"size:255" json:"slug"`
	Description    string         `gorm:"type:text" json:"description"`
	Tags           pq.StringArray `gorm:"type:text[]" json:"tags"`
	TemplateSuffix string         `gorm:"size:100" json:"template_suffix"`
	BrandID        *int64         `json:"brand_id"`
	Brand          *Brand         `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// Cart 购物车条目，物理删除
type Cart struct {
	BaseModel
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	UserID    int64           `gorm:"not null;index" json:"user_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}

func (Cart) TableName() string {
	return "carts"
}

// Wishlist 心愿单条目，物理删除
type Wishlist struct {
	BaseModel
	ProductID int64    `gorm:"not null;index" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	UserID    int64    `gorm:"not null;index" json:"user_id"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
