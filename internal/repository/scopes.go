package repository

import (
	"sort"
	"strings"

	"gorm.io/gorm"
)

// ByUUID uuid = ?
func ByUUID(table, uuid string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".uuid = ?", uuid)
	}
}

// NotUUID uuid <> ?
func NotUUID(table, uuid string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".uuid <> ?", uuid)
	}
}

// ByID id = ?
func ByID(table string, id int64) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".id = ?", id)
	}
}

// Eq column = ?
func Eq(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// EqualFold 不区分大小写相等
func EqualFold(column, value string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") = LOWER(?)", value)
	}
}

// AnyEqualFold 任一列不区分大小写相等 (OR)
func AnyEqualFold(value map[string]string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		cond := db.Session(&gorm.Session{NewDB: true})
		first := true
		for _, col := range sortedKeys(value) {
			expr := "LOWER(" + col + ") = LOWER(?)"
			if first {
				cond = cond.Where(expr, value[col])
				first = false
			} else {
				cond = cond.Or(expr, value[col])
			}
		}
		if first {
			return db
		}
		return db.Where(cond)
	}
}

// AnyContains 任一列不区分大小写包含对应值 (OR)
func AnyContains(value map[string]string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		cols := sortedKeys(value)
		if len(cols) == 0 {
			return db
		}
		parts := make([]string, len(cols))
		args := make([]interface{}, len(cols))
		for i, col := range cols {
			parts[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
			args[i] = ContainsPattern(value[col])
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

// Search 任一列不区分大小写包含 text，text 为空时不过滤
func Search(text string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		text = strings.TrimSpace(text)
		if text == "" || len(columns) == 0 {
			return db
		}
		pattern := ContainsPattern(text)
		parts := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			parts[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

// ContainsPattern 生成 LIKE 包含匹配模式 (已转义 % _ \)
func ContainsPattern(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(text)) + "%"
}

// Active is_active = true
func Active(table string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".is_active = ?", true)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
