package observability

import (
	"context"
	"errors"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// TracingConfig 链路追踪开关与导出配置
type TracingConfig struct {
	Enabled          bool
	OTLPGrpcEndpoint string
	Insecure         bool
	SampleRate       float64
}

// ResourceConfig 标识当前进程的 service 资源属性
type ResourceConfig struct {
	ServiceName string
	Environment string
}

// SetupTracing 初始化全局 TracerProvider 与传播器，返回关闭函数。
// 未启用时返回空操作的关闭函数，调用方无需区分。
func SetupTracing(ctx context.Context, tracing TracingConfig, resourceCfg ResourceConfig) (func(context.Context) error, error) {
	if !tracing.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	if tracing.OTLPGrpcEndpoint == "" {
		return nil, errors.New("otlp grpc endpoint is required when tracing is enabled")
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(tracing.OTLPGrpcEndpoint)}
	if tracing.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// 采样率非法时按全采样处理
	sampleRate := tracing.SampleRate
	if math.IsNaN(sampleRate) || sampleRate <= 0 || sampleRate > 1 {
		sampleRate = 1
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(resourceCfg.ServiceName),
			attribute.String("deployment.environment", resourceCfg.Environment),
		),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return provider.Shutdown, nil
}
