package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/jpashop/pkg/tracing"
)

const (
	// RequestIDHeader 请求ID头
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

type requestIDCtxKey struct{}

// slowRequest 超过该耗时记录慢请求告警
const slowRequest = 3 * time.Second

// Logger 请求日志中间件
// 1. 生成唯一请求ID(客户端传入X-Request-ID时沿用)，写入响应头和context
// 2. 请求结束后记录方法、路径、状态码、耗时、客户端IP
// 3. 存在trace时附带trace_id，方便与链路追踪关联
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDCtxKey{}, requestID))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		}
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			attrs = append(attrs, "trace_id", traceID)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case c.Writer.Status() >= 500:
			slog.ErrorContext(ctx, "http request", attrs...)
		case latency > slowRequest:
			slog.WarnContext(ctx, "slow http request", attrs...)
		default:
			slog.InfoContext(ctx, "http request", attrs...)
		}
	}
}

// RequestID 返回context中的请求ID
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}
