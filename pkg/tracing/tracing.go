// Package tracing OpenTelemetry链路追踪
//
// 应用服务的每个用例一个Span(如order.Order、orderquery.OrdersWithFetchJoin)。
// 未调用InitTracer时全局Provider为no-op。
//
// 使用示例：
//
//	shutdown, err := tracing.InitTracer(ctx, tracing.Options{ServiceName: "jpashop", Endpoint: "localhost:4317"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "jpashop/order", "Order")
//	defer span.End()
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/xiebiao/jpashop/pkg/errors"
)

const shutdownTimeout = 5 * time.Second

// Options 追踪配置
type Options struct {
	ServiceName string
	Endpoint    string // OTLP gRPC端点，不带协议前缀
	// SampleRatio 根Span采样比例，<=0或>=1时全部采样
	SampleRatio float64
}

func (o Options) sampler() sdktrace.Sampler {
	if o.SampleRatio <= 0 || o.SampleRatio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(o.SampleRatio))
}

// InitTracer 初始化全局Tracer Provider
// 返回的shutdown须在退出前调用，否则最后一批Span会丢失
func InitTracer(ctx context.Context, opts Options) (func(context.Context) error, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(opts.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}
	return install(ctx, opts, sdktrace.WithBatcher(exporter))
}

func install(ctx context.Context, opts Options, processor sdktrace.TracerProviderOption) (func(context.Context) error, error) {
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(opts.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(opts.sampler()),
		processor,
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		return tp.Shutdown(ctx)
	}, nil
}

// StartSpan 以ctx中的Span为父Span创建子Span；下游调用必须使用返回的ctx
func StartSpan(ctx context.Context, tracerName, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// Fail 在Span上记录错误
// 业务错误(库存不足、状态不允许等)只记录事件；内部错误同时把Span标记为Error
func Fail(span trace.Span, err error) {
	if err == nil {
		return
	}
	code := apperrors.CodeOf(err)
	span.RecordError(err)
	span.SetAttributes(attribute.Int("app.error_code", code))
	if code >= apperrors.ErrCodeInternal {
		span.SetStatus(codes.Error, err.Error())
	}
}

// ExtractTraceID 从Context提取TraceID，用于关联日志
func ExtractTraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}

// ExtractSpanID 从Context提取SpanID
func ExtractSpanID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.SpanID().String()
}
