// Package tracing installs the global opentracing tracer backed by jaeger.
package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

type tracingConfig interface {
	IsEnabled() bool
	AgentHostPort() string
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init sets the global tracer. With tracing disabled the opentracing no-op
// tracer stays in place. The returned closer flushes pending spans.
func Init(cfg tracingConfig) (io.Closer, error) {
	if !cfg.IsEnabled() {
		return nopCloser{}, nil
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(zapLogger{}))
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled",
		zap.String("service", cfg.ServiceName()),
		zap.String("agent", cfg.AgentHostPort()))
	return closer, nil
}

// zapLogger routes jaeger's own messages to the application logger.
type zapLogger struct{}

func (zapLogger) Error(msg string) {
	logger.Error(msg)
}

func (zapLogger) Infof(msg string, args ...interface{}) {
	logger.Info(fmt.Sprintf(msg, args...))
}
