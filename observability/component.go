package observability

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/avatax/component"
	"github.com/kbukum/avatax/logger"
)

// Component installs the OTLP tracer and meter providers for the lifetime
// of an application. Spans and Metrics created earlier from the global
// providers start exporting once it is started.
type Component struct {
	tracerCfg TracerConfig
	meterCfg  MeterConfig
	log       *logger.Logger

	tp *sdktrace.TracerProvider
	mp *sdkmetric.MeterProvider
}

var (
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent creates a telemetry component.
func NewComponent(tc TracerConfig, mc MeterConfig, log *logger.Logger) *Component {
	return &Component{tracerCfg: tc, meterCfg: mc, log: log}
}

// Name returns the component name.
func (c *Component) Name() string { return "telemetry" }

// Start creates the exporters and installs the providers globally.
func (c *Component) Start(ctx context.Context) error {
	tp, err := InitTracer(ctx, c.tracerCfg, c.log)
	if err != nil {
		return err
	}
	mp, err := InitMeter(ctx, &c.meterCfg, c.log)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return err
	}
	c.tp, c.mp = tp, mp
	return nil
}

// Stop flushes and shuts down both providers.
func (c *Component) Stop(ctx context.Context) error {
	var errs []error
	if c.tp != nil {
		errs = append(errs, c.tp.Shutdown(ctx))
	}
	if c.mp != nil {
		errs = append(errs, c.mp.Shutdown(ctx))
	}
	c.tp, c.mp = nil, nil
	return errors.Join(errs...)
}

// Health reports whether the providers are installed.
func (c *Component) Health(_ context.Context) component.Health {
	if c.tp == nil || c.mp == nil {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe returns component description for the startup summary.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "OpenTelemetry",
		Type:    "otlp-http",
		Details: fmt.Sprintf("endpoint=%s sample_rate=%.2f interval=%s", c.tracerCfg.Endpoint, c.tracerCfg.SampleRate, c.meterCfg.Interval),
	}
}
