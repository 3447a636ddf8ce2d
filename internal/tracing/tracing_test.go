package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	enabled bool
}

func (c testConfig) IsEnabled() bool       { return c.enabled }
func (c testConfig) AgentHostPort() string { return "127.0.0.1:6831" }
func (c testConfig) ServiceName() string   { return "expense-tracker-test" }

func Test_OnDisabledTracing_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}

func Test_OnEnabledTracing_ShouldInstallJaegerTracer(t *testing.T) {
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	closer, err := Init(testConfig{enabled: true})
	require.NoError(t, err)
	defer func() { _ = closer.Close() }()

	assert.NotEqual(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
	span := opentracing.StartSpan("probe")
	span.Finish()
}
