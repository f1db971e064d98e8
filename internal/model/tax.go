package model

import "github.com/shopspring/decimal"

// TaxType 税费类型
type TaxType string

const (
	TaxTypeTax           TaxType = "Tax"
	TaxTypeFeeAndCharges TaxType = "Fee_And_Charges"
)

// TaxValueType 税值类型
type TaxValueType string

const (
	TaxValueFixed   TaxValueType = "Fixed"
	TaxValuePercent TaxValueType = "Percent"
)

// Tax 税费
type Tax struct {
	BaseModel
	TaxName     string          `gorm:"size:150;not null;uniqueIndex" json:"tax_name"`
	Description string          `gorm:"type:text" json:"description"`
	TaxType     TaxType         `gorm:"size:30;not null" json:"tax_type"`
	ValueType   TaxValueType    `gorm:"size:20;not null" json:"value_type"`
	TaxValue    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax_value"`
}

func (Tax) TableName() string {
	return "taxes"
}
