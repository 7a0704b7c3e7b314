package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Call holds the observability state of one AvaTax request.
type Call struct {
	Method    string
	URL       string
	RequestID string
	StartTime time.Time
	Metrics   *Metrics
}

// NewCall creates a call. If metrics is nil, metric recording is skipped.
func NewCall(method, url, requestID string, metrics *Metrics) *Call {
	return &Call{
		Method:    method,
		URL:       url,
		RequestID: requestID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

// Start opens the request span and records the start metric.
func (c *Call) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanAvaTaxRequest, trace.WithAttributes(
		attribute.String(AttrHTTPMethod, c.Method),
		attribute.String(AttrURL, c.URL),
		attribute.String(AttrRequestID, c.RequestID),
	))
	if c.Metrics != nil {
		c.Metrics.RecordRequestStart(ctx)
	}
	return ctx, span
}

// End closes the span and records the end metrics. errCode and kind are
// empty for a successful call.
func (c *Call) End(ctx context.Context, span trace.Span, statusCode int, correlationID string, errCode, kind string, err error) {
	duration := time.Since(c.StartTime)

	span.SetAttributes(attribute.Int64(AttrDurationMs, duration.Milliseconds()))
	if statusCode > 0 {
		span.SetAttributes(attribute.Int(AttrStatusCode, statusCode))
	}
	if correlationID != "" {
		span.SetAttributes(attribute.String(AttrCorrelationID, correlationID))
	}
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorCode, errCode))
		span.SetStatus(codes.Error, errCode)
	}
	span.End()

	if c.Metrics != nil {
		c.Metrics.RecordRequestEnd(ctx, c.Method, statusCode, duration)
		if err != nil {
			c.Metrics.RecordError(ctx, errCode, kind)
		}
	}
}

// Duration returns the elapsed time since the call started.
func (c *Call) Duration() time.Duration {
	return time.Since(c.StartTime)
}
