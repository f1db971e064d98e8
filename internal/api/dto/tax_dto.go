package dto

import "github.com/shopspring/decimal"

// ================== Tax DTO ==================

// TaxReq 新增/修改税费
type TaxReq struct {
	TaxName     string           `json:"tax_name" binding:"required,max=150" msg:"required=Please enter tax name."`
	Description string           `json:"description" binding:"required" msg:"required=Please enter tax description."`
	TaxType     string           `json:"tax_type" binding:"required,oneof=Tax Fee_And_Charges" msg:"required=Please enter tax type.;oneof=Invalid tax type."`
	ValueType   string           `json:"value_type" binding:"required,oneof=Fixed Percent" msg:"required=Please enter tax value type.;oneof=Invalid tax value type."`
	TaxValue    *decimal.Decimal `json:"tax_value" binding:"required" msg:"required=Please enter tax value."`
	IsActive    *FlexBool        `json:"is_active"`
}

func (r *TaxReq) Active() bool {
	return r.IsActive != nil && bool(*r.IsActive)
}

// Value 税值
func (r *TaxReq) Value() decimal.Decimal {
	if r.TaxValue == nil {
		return decimal.Zero
	}
	return *r.TaxValue
}

// ImportTaxReq Excel 导入，file（base64）与 key（对象存储路径）二选一
type ImportTaxReq struct {
	File string `json:"file" binding:"required_without=Key" msg:"required_without=Please upload excel file."`
	Key  string `json:"key"`
}

// TaxConditionReq 按条件查询税费
type TaxConditionReq struct {
	Select []string               `json:"select"`
	Where  map[string]interface{} `json:"where"`
}
