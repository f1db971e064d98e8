package dto

import "encoding/json"

// ================== Brand DTO ==================

// BrandReq 新增/修改品牌
// image 可以是 URL，也可以是 data:image/...;base64, 开头的内联图片
type BrandReq struct {
	BrandName         string          `json:"brand_name" binding:"required,max=150" msg:"required=brand._please_enter_brand_name"`
	Image             string          `json:"image"`
	BrandAssociations json.RawMessage `json:"brand_associations"`
	IsActive          *FlexBool       `json:"is_active"`
}

func (r *BrandReq) Active() bool {
	return r.IsActive != nil && bool(*r.IsActive)
}

// BrandOption 品牌下拉选项
type BrandOption struct {
	UUID      string `json:"uuid"`
	BrandName string `json:"brand_name"`
}
