package dto

// Response 统一响应信封
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OK 成功响应
func OK(message string, data interface{}) *Response {
	return &Response{Status: true, Message: message, Data: data}
}
