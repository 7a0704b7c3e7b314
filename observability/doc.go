// Package observability provides OpenTelemetry tracing and metrics for
// AvaTax calls.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("billing"), log)
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("billing"), log)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("billing"))
//
// Each call is wrapped in a Call, which owns the "avatax.request" span and
// feeds the request metrics:
//
//	call := observability.NewCall("GET", url, requestID, metrics)
//	ctx, span := call.Start(ctx)
//	defer call.End(ctx, span, statusCode, errorCode, err)
package observability
