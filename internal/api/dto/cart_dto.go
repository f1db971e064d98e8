package dto

import "github.com/shopspring/decimal"

// ================== Cart && Wishlist DTO ==================

// CartReq 加入/修改购物车
type CartReq struct {
	ProductUUID string           `json:"product_uuid" binding:"required" msg:"required=_product_uuid_is_required"`
	Quantity    *FlexInt         `json:"quantity" binding:"required,min=0" msg:"required=_quantity_is_required_;min=_quantity_can_not_be_negative_"`
	Price       *decimal.Decimal `json:"price" binding:"required" msg:"required=_price_is_required_"`
}

// Qty 数量
func (r *CartReq) Qty() int {
	if r.Quantity == nil {
		return 0
	}
	return int(*r.Quantity)
}

// PriceValue 单价
func (r *CartReq) PriceValue() decimal.Decimal {
	if r.Price == nil {
		return decimal.Zero
	}
	return *r.Price
}

// AddToWishlistReq 加入心愿单
type AddToWishlistReq struct {
	ProductUUID string `json:"product_uuid" binding:"required" msg:"required=_product_uuid_is_required"`
}

// RemoveFromWishlistReq 移出心愿单
type RemoveFromWishlistReq struct {
	ID FlexInt `json:"id" binding:"required,min=1" msg:"required=_product_id_is_required;min=_id_must_be_interger_"`
}
