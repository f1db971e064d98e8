package dto

// ================== Country DTO ==================

// CreateCountryReq 新增国家
type CreateCountryReq struct {
	CountryName  string   `json:"country_name" binding:"required,max=100" msg:"required=Please enter country name."`
	IsoCode      string   `json:"iso_code" binding:"required,max=10" msg:"required=Please enter iso code."`
	MobileCode   FlexInt  `json:"mobile_code" binding:"required" msg:"required=Please enter mobile code."`
	CurrencyCode string   `json:"currency_code" binding:"omitempty,max=10"`
	IsActive     FlexBool `json:"is_active"`
}

// UpdateCountryReq 修改国家，is_active 不传则保持不变
type UpdateCountryReq struct {
	CountryName  string    `json:"country_name" binding:"required,max=100" msg:"required=Please enter country name."`
	IsoCode      string    `json:"iso_code" binding:"required,max=10" msg:"required=Please enter iso code."`
	MobileCode   FlexInt   `json:"mobile_code" binding:"required" msg:"required=Please enter mobile code."`
	CurrencyCode string    `json:"currency_code" binding:"omitempty,max=10"`
	IsActive     *FlexBool `json:"is_active"`
}

// ToggleVisibilityReq 切换可见性（所有模块共用）
type ToggleVisibilityReq struct {
	IsActive *FlexBool `json:"is_active" binding:"required" msg:"required=Please enter visibility type."`
}

// CountryOption 国家下拉选项
type CountryOption struct {
	UUID        string `json:"uuid"`
	CountryName string `json:"country_name"`
}
