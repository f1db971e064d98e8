package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel 所有主数据表的公共字段
// ID 仅用于内部关联，对外统一使用 UUID
type BaseModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID string `gorm:"type:uuid;uniqueIndex;not null" json:"uuid"`

	IsActive bool `gorm:"not null" json:"is_active"`

	// --- 软删除 ---
	IsDeleted bool       `gorm:"not null;index" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	DeletedBy *int64     `json:"deleted_by,omitempty"`

	// --- 审计字段 ---
	CreatedBy *int64    `gorm:"comment:创建人ID" json:"created_by,omitempty"`
	UpdatedBy *int64    `gorm:"comment:更新人ID" json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate 自动生成 UUID
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.NewString()
	}
	return nil
}
