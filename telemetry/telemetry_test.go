package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsctl/dsctl/config"
)

func TestNewProvider_Disabled(t *testing.T) {
	cfg := config.OTELConfig{
		ServiceName: "test-dsctl",
		Traces:      config.TracesConfig{Enabled: false},
		Metrics:     config.MetricsConfig{Enabled: false},
	}

	p, err := NewProvider(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, p)

	// Recording against inert providers must not panic.
	p.RecordCacheHit(context.Background(), "memory")
	p.RecordCacheMiss(context.Background())
	p.RecordRemoteFetch(context.Background(), "target")
	p.RecordResolveDuration(context.Background(), "target", 50*time.Millisecond)

	err = p.Shutdown(context.Background())
	require.NoError(t, err)
}

func TestNewProvider_WithEndpoint(t *testing.T) {
	cfg := config.OTELConfig{
		Endpoint:    "localhost:4317",
		Insecure:    true,
		ServiceName: "test-dsctl",
		Traces:      config.TracesConfig{Enabled: true, SampleRate: 1.0},
		Metrics:     config.MetricsConfig{Enabled: true},
	}

	// Provider setup should succeed even without a real collector
	p, err := NewProvider(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, p)

	// Use a short timeout for shutdown - collector isn't running
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = p.Shutdown(ctx)
}

func TestNilProviderIsSafe(t *testing.T) {
	var p *Provider

	ctx, span := p.StartSpan(context.Background(), "test")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)

	p.RecordCacheHit(ctx, "disk")
	p.RecordCacheMiss(ctx)
	p.RecordRemoteFetch(ctx, "connector")
	p.RecordResolveDuration(ctx, "connector", time.Second)
	assert.NoError(t, p.Shutdown(ctx))
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "info")

	logger.LogCacheHit(context.Background(), "memory", "target|c1|")
	assert.Empty(t, buf.String(), "debug events should be filtered at info level")

	logger.LogRemoteFetch(context.Background(), "target|c1|", 12, 84.2)
	assert.Contains(t, buf.String(), "fetched listing from directory")
	assert.Contains(t, buf.String(), "remote_fetch")
}

func TestLoggerFuzzyMatch(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "debug")

	logger.LogFuzzyMatch(context.Background(), "prod", "Prod-DB1", "ocid1.datasafetargetdatabase.oc1..t1")

	out := buf.String()
	assert.True(t, strings.Contains(out, "Prod-DB1"))
	assert.True(t, strings.Contains(out, "substring match"))
}

func TestLoggerBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "nonsense")

	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}
