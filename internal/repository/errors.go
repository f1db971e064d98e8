package repository

import "errors"

// ErrUnknownColumn 调用方传入了不在白名单内的列
var ErrUnknownColumn = errors.New("unknown column")

func sortedAnyKeys(m map[string]interface{}) []string {
	keys := make(map[string]string, len(m))
	for k := range m {
		keys[k] = k
	}
	return sortedKeys(keys)
}
