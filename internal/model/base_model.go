package model

import "time"

// Operator 返回审计字段使用的操作人 ID，未登录时为 nil
func Operator(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}

// SoftDeleteFields 软删除时写入的字段
func SoftDeleteFields(operatorID int64) map[string]interface{} {
	return map[string]interface{}{
		"is_active":  false,
		"is_deleted": true,
		"deleted_at": time.Now(),
		"deleted_by": Operator(operatorID),
	}
}

// RestoreFields 恢复已删除记录时写入的字段
func RestoreFields(operatorID int64) map[string]interface{} {
	return map[string]interface{}{
		"is_active":  true,
		"is_deleted": false,
		"deleted_at": nil,
		"deleted_by": nil,
		"updated_by": Operator(operatorID),
	}
}

// ReviveFields 用新数据覆盖已删除记录时需要清空的软删除字段
// 调用方在返回的 map 上追加业务字段
func ReviveFields() map[string]interface{} {
	return map[string]interface{}{
		"is_deleted": false,
		"deleted_at": nil,
		"deleted_by": nil,
	}
}
