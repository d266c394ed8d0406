// Package response 统一的HTTP响应封装
// 所有接口都返回HTTP 200，结果体为{code, message, data}，code为0表示成功
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

// CodeOK 成功
const CodeOK = 0

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Page offset/limit分页结果
// Count为本页实际条数，读取策略不统计总数
type Page[T any] struct {
	List   []T `json:"list"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Count  int `json:"count"`
}

func write(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: code, Message: message, Data: data})
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	write(c, CodeOK, "success", data)
}

// SuccessWithPage 分页成功响应，list为nil时输出空数组
func SuccessWithPage[T any](c *gin.Context, list []T, offset, limit int) {
	if list == nil {
		list = []T{}
	}
	Success(c, Page[T]{List: list, Offset: offset, Limit: limit, Count: len(list)})
}

// Error 错误响应
// 底层错误只写日志：5xxxx记error，其余记warn
//
//	id, err := orderService.Order(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	if appErr.Err != nil {
		level := slog.LevelWarn
		if appErr.Code >= apperrors.ErrCodeInternal {
			level = slog.LevelError
		}
		slog.Log(c.Request.Context(), level, "请求失败",
			"code", appErr.Code,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", appErr.Err,
		)
	}

	write(c, appErr.Code, appErr.Message, nil)
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	write(c, code, message, nil)
}
