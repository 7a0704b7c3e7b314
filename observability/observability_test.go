package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return rec
}

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestDefaultConfigs(t *testing.T) {
	tc := DefaultTracerConfig("billing")
	assert.Equal(t, "billing", tc.ServiceName)
	assert.Equal(t, "localhost:4318", tc.Endpoint)
	assert.Equal(t, 1.0, tc.SampleRate)
	assert.True(t, tc.Insecure)

	mc := DefaultMeterConfig("billing")
	assert.Equal(t, 15*time.Second, mc.Interval)
	assert.Equal(t, "sandbox", mc.Environment)
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.5).Description(), sampler(0.5).Description())
}

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background(), "billing", "1.4.2", "sandbox")
	require.NoError(t, err)

	v, ok := res.Set().Value("service.name")
	require.True(t, ok)
	assert.Equal(t, "billing", v.AsString())
	v, ok = res.Set().Value("environment")
	require.True(t, ok)
	assert.Equal(t, "sandbox", v.AsString())
}

func TestCallSuccessSpan(t *testing.T) {
	rec := installRecorder(t)
	metrics, reader := newTestMetrics(t)

	call := NewCall("GET", "https://sandbox-rest.avatax.com/api/v2/utilities/ping", "req-1", metrics)
	ctx, span := call.Start(context.Background())
	assert.True(t, trace.SpanFromContext(ctx).SpanContext().IsValid())
	call.End(ctx, span, 200, "corr-1", "", "", nil)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, SpanAvaTaxRequest, s.Name())
	assert.Equal(t, trace.SpanKindClient, s.SpanKind())
	assert.Equal(t, codes.Unset, s.Status().Code)

	v, ok := attrValue(s.Attributes(), AttrStatusCode)
	require.True(t, ok)
	assert.Equal(t, int64(200), v.AsInt64())
	v, ok = attrValue(s.Attributes(), AttrCorrelationID)
	require.True(t, ok)
	assert.Equal(t, "corr-1", v.AsString())
	v, ok = attrValue(s.Attributes(), AttrRequestID)
	require.True(t, ok)
	assert.Equal(t, "req-1", v.AsString())

	got := collect(t, reader)
	total := got["avatax.client.request.total"].Data.(metricdata.Sum[int64])
	require.Len(t, total.DataPoints, 1)
	assert.Equal(t, int64(1), total.DataPoints[0].Value)

	active := got["avatax.client.request.active"].Data.(metricdata.Sum[int64])
	require.Len(t, active.DataPoints, 1)
	assert.Equal(t, int64(0), active.DataPoints[0].Value)

	_, hasErrors := got["avatax.client.error.total"]
	assert.False(t, hasErrors)
}

func TestCallErrorSpan(t *testing.T) {
	rec := installRecorder(t)
	metrics, reader := newTestMetrics(t)

	call := NewCall("POST", "https://rest.avatax.com/api/v2/transactions/create", "req-2", metrics)
	ctx, span := call.Start(context.Background())
	call.End(ctx, span, 0, "", "NetworkFailure", "transport", errors.New("connection refused"))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "NetworkFailure", spans[0].Status().Description)
	_, hasStatus := attrValue(spans[0].Attributes(), AttrStatusCode)
	assert.False(t, hasStatus)
	require.Len(t, spans[0].Events(), 1)

	got := collect(t, reader)
	errs := got["avatax.client.error.total"].Data.(metricdata.Sum[int64])
	require.Len(t, errs.DataPoints, 1)
	code, ok := errs.DataPoints[0].Attributes.Value("code")
	require.True(t, ok)
	assert.Equal(t, "NetworkFailure", code.AsString())
}

func TestCallWithoutMetrics(t *testing.T) {
	call := NewCall("GET", "/x", "req-3", nil)
	ctx, span := call.Start(context.Background())
	call.End(ctx, span, 204, "", "", "", nil)
	assert.GreaterOrEqual(t, call.Duration(), time.Duration(0))
}

func TestComponentLifecycle(t *testing.T) {
	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	})

	tc := DefaultTracerConfig("billing")
	tc.Endpoint = "127.0.0.1:1"
	mc := DefaultMeterConfig("billing")
	mc.Endpoint = "127.0.0.1:1"
	c := NewComponent(tc, mc, nil)

	assert.Equal(t, "telemetry", c.Name())
	assert.Equal(t, "unhealthy", string(c.Health(context.Background()).Status))
	assert.Contains(t, c.Describe().Details, "endpoint=127.0.0.1:1")

	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, "healthy", string(c.Health(context.Background()).Status))

	// nothing listens on the endpoint; only the shutdown path matters here
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = c.Stop(ctx)
	assert.Equal(t, "unhealthy", string(c.Health(context.Background()).Status))
	assert.NoError(t, c.Stop(context.Background()))
}
