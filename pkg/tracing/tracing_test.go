package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

// newRecorder 安装内存SpanRecorder作为全局Provider
func newRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	shutdown, err := install(context.Background(), Options{ServiceName: "test-service"}, sdktrace.WithSpanProcessor(sr))
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return sr
}

func lastEnded(t *testing.T, sr *tracetest.SpanRecorder) sdktrace.ReadOnlySpan {
	t.Helper()
	ended := sr.Ended()
	require.NotEmpty(t, ended)
	return ended[len(ended)-1]
}

func TestStartSpan(t *testing.T) {
	sr := newRecorder(t)

	t.Run("创建根Span和子Span", func(t *testing.T) {
		ctx, root := StartSpan(context.Background(), "test-service", "Order")
		_, child := StartSpan(ctx, "test-service", "FindOneForUpdate")
		child.End()
		root.End()

		ended := sr.Ended()
		require.GreaterOrEqual(t, len(ended), 2)
		c, r := ended[len(ended)-2], ended[len(ended)-1]
		assert.Equal(t, "FindOneForUpdate", c.Name())
		assert.Equal(t, "Order", r.Name())
		assert.Equal(t, r.SpanContext().TraceID(), c.SpanContext().TraceID())
		assert.Equal(t, r.SpanContext().SpanID(), c.Parent().SpanID())
	})

	t.Run("初始属性", func(t *testing.T) {
		_, span := StartSpan(context.Background(), "test-service", "Order", attribute.Int("order.count", 2))
		span.End()
		assert.Contains(t, lastEnded(t, sr).Attributes(), attribute.Int("order.count", 2))
	})
}

func TestFail(t *testing.T) {
	sr := newRecorder(t)

	t.Run("业务错误不标记Error", func(t *testing.T) {
		_, span := StartSpan(context.Background(), "test-service", "Order")
		Fail(span, apperrors.New(apperrors.ErrCodeNotEnoughStock, "库存不足"))
		span.End()

		s := lastEnded(t, sr)
		assert.Equal(t, codes.Unset, s.Status().Code)
		assert.Len(t, s.Events(), 1)
		assert.Contains(t, s.Attributes(), attribute.Int("app.error_code", apperrors.ErrCodeNotEnoughStock))
	})

	t.Run("内部错误标记Error", func(t *testing.T) {
		_, span := StartSpan(context.Background(), "test-service", "Order")
		Fail(span, errors.New("deadlock"))
		span.End()
		assert.Equal(t, codes.Error, lastEnded(t, sr).Status().Code)
	})

	t.Run("nil错误忽略", func(t *testing.T) {
		_, span := StartSpan(context.Background(), "test-service", "Order")
		Fail(span, nil)
		span.End()
		assert.Empty(t, lastEnded(t, sr).Events())
	})
}

func TestExtractIDs(t *testing.T) {
	newRecorder(t)

	t.Run("没有Span时返回空", func(t *testing.T) {
		assert.Empty(t, ExtractTraceID(context.Background()))
		assert.Empty(t, ExtractSpanID(context.Background()))
	})

	t.Run("有Span时返回十六进制ID", func(t *testing.T) {
		ctx, span := StartSpan(context.Background(), "test-service", "Op")
		defer span.End()

		assert.Len(t, ExtractTraceID(ctx), 32)
		assert.Len(t, ExtractSpanID(ctx), 16)
	})
}

func TestOptions_sampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), Options{}.sampler().Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), Options{SampleRatio: 1}.sampler().Description())
	assert.Contains(t, Options{SampleRatio: 0.25}.sampler().Description(), "TraceIDRatioBased{0.25}")
}

func TestInitTracer(t *testing.T) {
	// gRPC连接是惰性的，collector不在线也能创建成功
	shutdown, err := InitTracer(context.Background(), Options{ServiceName: "test-service", Endpoint: "localhost:4317"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
}
