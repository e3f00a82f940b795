// Package telemetry provides logging and OpenTelemetry instrumentation
// for dsctl.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/dsctl/dsctl/config"
)

// Provider wraps OTEL tracer and meter providers. A nil Provider is valid
// and records nothing, so instrumentation call sites need no guards.
type Provider struct {
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	tracer         trace.Tracer
	meter          metric.Meter

	// Metrics
	cacheHits       metric.Int64Counter
	cacheMisses     metric.Int64Counter
	remoteFetches   metric.Int64Counter
	resolveDuration metric.Float64Histogram
}

// NewProvider creates a new telemetry provider. Exporters are only wired
// when an endpoint is configured; otherwise tracer and meter are inert.
func NewProvider(ctx context.Context, cfg config.OTELConfig) (*Provider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	p := &Provider{}

	if err := p.setupTracing(ctx, cfg, res); err != nil {
		return nil, err
	}

	if err := p.setupMetrics(ctx, cfg, res); err != nil {
		if p.tracerProvider != nil {
			_ = p.tracerProvider.Shutdown(ctx)
		}
		return nil, err
	}

	if err := p.initMetrics(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) setupTracing(ctx context.Context, cfg config.OTELConfig, res *resource.Resource) error {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	if cfg.Traces.Enabled && cfg.Endpoint != "" {
		exp, err := createTraceExporter(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}
		sampler := sdktrace.TraceIDRatioBased(cfg.Traces.SampleRate)
		opts = append(opts, sdktrace.WithBatcher(exp), sdktrace.WithSampler(sampler))
	}

	p.tracerProvider = sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(p.tracerProvider)
	p.tracer = p.tracerProvider.Tracer("dsctl")

	return nil
}

func (p *Provider) setupMetrics(ctx context.Context, cfg config.OTELConfig, res *resource.Resource) error {
	opts := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}

	if cfg.Metrics.Enabled && cfg.Endpoint != "" {
		exp, err := createMetricExporter(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create metric exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)))
	}

	p.meterProvider = sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter("dsctl")

	return nil
}

func createTraceExporter(ctx context.Context, cfg config.OTELConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	return otlptracegrpc.New(ctx, opts...)
}

func createMetricExporter(ctx context.Context, cfg config.OTELConfig) (sdkmetric.Exporter, error) {
	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	return otlpmetricgrpc.New(ctx, opts...)
}

func (p *Provider) initMetrics() error {
	var err error

	p.cacheHits, err = p.meter.Int64Counter(
		"dsctl_cache_hits_total",
		metric.WithDescription("Listing cache hits by tier"),
	)
	if err != nil {
		return fmt.Errorf("create cache_hits: %w", err)
	}

	p.cacheMisses, err = p.meter.Int64Counter(
		"dsctl_cache_misses_total",
		metric.WithDescription("Listing cache misses"),
	)
	if err != nil {
		return fmt.Errorf("create cache_misses: %w", err)
	}

	p.remoteFetches, err = p.meter.Int64Counter(
		"dsctl_remote_fetches_total",
		metric.WithDescription("Directory listing fetches"),
	)
	if err != nil {
		return fmt.Errorf("create remote_fetches: %w", err)
	}

	p.resolveDuration, err = p.meter.Float64Histogram(
		"dsctl_resolve_duration_seconds",
		metric.WithDescription("Duration of name resolutions"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("create resolve_duration: %w", err)
	}

	return nil
}

// StartSpan starts a new span. Nil-safe.
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.tracer.Start(ctx, name)
}

// RecordCacheHit counts a cache hit on the given tier. Nil-safe.
func (p *Provider) RecordCacheHit(ctx context.Context, tier string) {
	if p == nil {
		return
	}
	p.cacheHits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tier", tier),
	))
}

// RecordCacheMiss counts a cache miss. Nil-safe.
func (p *Provider) RecordCacheMiss(ctx context.Context) {
	if p == nil {
		return
	}
	p.cacheMisses.Add(ctx, 1)
}

// RecordRemoteFetch counts a directory fetch. Nil-safe.
func (p *Provider) RecordRemoteFetch(ctx context.Context, kind string) {
	if p == nil {
		return
	}
	p.remoteFetches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordResolveDuration records a name resolution duration. Nil-safe.
func (p *Provider) RecordResolveDuration(ctx context.Context, kind string, d time.Duration) {
	if p == nil {
		return
	}
	p.resolveDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// Shutdown flushes and stops the providers. Nil-safe.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var firstErr error
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
