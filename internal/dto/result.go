package dto

import "cms-backend/internal/cmserr"

// Result 统一响应结构，所有接口成功失败都走它
type Result struct {
	Code     int         `json:"code"`
	Success  bool        `json:"success"`
	ErrorMsg string      `json:"errorMsg,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Total    *int64      `json:"total,omitempty"`
}

// Ok returns a successful response without payload.
func Ok() Result {
	return Result{Code: 200, Success: true}
}

// OkWithData returns a successful response with data payload.
func OkWithData(data interface{}) Result {
	return Result{Code: 200, Success: true, Data: data}
}

// OkWithPage returns a paginated success response.
func OkWithPage(data interface{}, total int64) Result {
	return Result{Code: 200, Success: true, Data: data, Total: &total}
}

// Fail returns a failure response with the generic business code.
func Fail(msg string) Result {
	return Result{Code: cmserr.SystemInnerError.Code, Success: false, ErrorMsg: msg}
}

// FailWithError 把业务错误映射为响应；非业务错误一律按系统内部错误返回
func FailWithError(err error) Result {
	if e, ok := cmserr.As(err); ok {
		return Result{Code: e.Code, Success: false, ErrorMsg: e.Msg}
	}
	return Result{
		Code:     cmserr.SystemInnerError.Code,
		Success:  false,
		ErrorMsg: cmserr.SystemInnerError.Msg,
	}
}
