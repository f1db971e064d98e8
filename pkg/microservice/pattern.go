package microservice

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Pattern 消息模式：TCP 使用 {role, cmd} 对象，Kafka 使用 role 作为 topic
type Pattern struct {
	Role string `json:"role"`
	Cmd  string `json:"cmd"`
}

// Key TCP 路由键，即对象按 key 排序后的紧凑 JSON
func (p Pattern) Key() string {
	// encoding/json 对 map 按 key 排序
	raw, _ := json.Marshal(map[string]string{"role": p.Role, "cmd": p.Cmd})
	return string(raw)
}

// Topic Kafka topic
func (p Pattern) Topic() string {
	return p.Role
}

func (p Pattern) String() string {
	return p.Key()
}

// NormalizePattern 将入站 pattern 转为路由键
// 字符串原样使用；对象或对象形式的 JSON 字符串按 key 排序后重新序列化
func NormalizePattern(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", fmt.Errorf("empty pattern")
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("decode pattern: %w", err)
		}
		if len(s) > 0 && s[0] == '{' {
			if key, err := canonical([]byte(s)); err == nil {
				return key, nil
			}
		}
		return s, nil
	}
	return canonical(raw)
}

func canonical(raw []byte) (string, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("decode pattern: %w", err)
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
