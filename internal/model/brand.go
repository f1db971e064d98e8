package model

import "gorm.io/datatypes"

// Brand 品牌
type Brand struct {
	BaseModel
	BrandName         string         `gorm:"size:150;not null;uniqueIndex" json:"brand_name"`
	Image             string         `gorm:"size:500" json:"image"`
	BrandAssociations datatypes.JSON `json:"brand_associations"`
}

func (Brand) TableName() string {
	return "brands"
}
