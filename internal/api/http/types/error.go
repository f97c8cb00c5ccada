// Package types provides HTTP error type definitions.
package types

import "time"

// ErrorResponse 统一错误响应格式
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Code      string      `json:"code"`                // 错误码
	Message   string      `json:"message"`             // 错误消息
	Details   interface{} `json:"details,omitempty"`   // 详细信息
	RequestID string      `json:"requestId,omitempty"` // 请求ID
	Timestamp string      `json:"timestamp,omitempty"` // 时间戳
}

// 错误码常量
const (
	// 钱包状态错误码
	ErrWalletBusy = "WALLET_BUSY"

	// 服务器错误码
	ErrInternal = "INTERNAL"
)

// NewErrorResponse 创建错误响应
func NewErrorResponse(code, message string, details interface{}) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithRequestID 添加请求ID
func (e *ErrorResponse) WithRequestID(requestID string) *ErrorResponse {
	e.Error.RequestID = requestID
	return e
}

// WithTimestamp 添加时间戳（RFC3339，UTC）
func (e *ErrorResponse) WithTimestamp(t time.Time) *ErrorResponse {
	e.Error.Timestamp = t.UTC().Format(time.RFC3339)
	return e
}

// ErrWalletBusyResponse 钱包忙碌错误
func ErrWalletBusyResponse(operations interface{}) *ErrorResponse {
	return NewErrorResponse(
		ErrWalletBusy,
		"Wallet is busy, please try again later",
		map[string]interface{}{
			"operations": operations,
		},
	)
}
