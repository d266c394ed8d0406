// Package errors 定义应用错误与错误码
//
// 错误码分段：
//
//	400xx 业务规则不满足
//	404xx 资源不存在
//	409xx 请求参数不合法
//	500xx 服务端故障（数据库、缓存）
//
// HTTP层统一返回200，客户端只根据Code区分错误类型
package errors

import (
	"errors"
	"fmt"
)

// AppError 应用错误
// Err为底层错误，只写日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 错误码和消息都相同即视为同一错误
// 使预定义错误在被复制或重新包装后仍能被errors.Is识别
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New 创建不带底层错误的AppError
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap 包装底层错误为内部错误
func Wrap(err error, message string) *AppError {
	return WrapCode(err, ErrCodeInternal, message)
}

// Wrapf 同Wrap，消息支持格式化
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return WrapCode(err, ErrCodeInternal, fmt.Sprintf(format, args...))
}

// WrapCode 以指定错误码包装底层错误
// err本身已是AppError时保留其错误码，避免业务错误在仓储层被降级为内部错误
func WrapCode(err error, code int, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code < ErrCodeInternal {
		return appErr
	}
	return &AppError{Code: code, Message: message, Err: err}
}

const (
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeCacheError    = 50002

	ErrCodeNotFound       = 40400
	ErrCodeMemberNotFound = 40401
	ErrCodeItemNotFound   = 40402
	ErrCodeOrderNotFound  = 40403

	ErrCodeNotEnoughStock         = 40001 // 库存不足
	ErrCodeInvalidStateTransition = 40002 // 当前状态不允许此操作
	ErrCodeDuplicateMember        = 40003 // 会员名已存在
	ErrCodePagingNotSupported     = 40004 // 集合抓取连接不支持分页

	ErrCodeInvalidParams = 40900
)

// GetAppError 提取AppError，非AppError包装成内部错误
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// CodeOf 返回错误码，非AppError返回ErrCodeInternal
func CodeOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsCode 错误链上是否有指定错误码
func IsCode(err error, code int) bool {
	return err != nil && CodeOf(err) == code
}
