package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const serviceVersion = "v0.0.1"

// InitZipkinTracer 没有配置 endpoint 的时候只设置传播器，不导出 span
func InitZipkinTracer() *trace.TracerProvider {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(econf.GetString("trace.zipkin.serviceName")),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		elog.Panic("init resource failed", elog.FieldErr(err))
	}

	opts := []trace.TracerProviderOption{trace.WithResource(res)}
	if endpoint := econf.GetString("trace.zipkin.endpoint"); endpoint != "" {
		exporter, err := zipkin.New(endpoint)
		if err != nil {
			elog.Panic("init zipkin exporter failed", elog.FieldErr(err))
		}
		opts = append(opts, trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)))
	}
	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}
