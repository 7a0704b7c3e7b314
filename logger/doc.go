// Package logger provides the diagnostic sink each AvaTax client owns.
//
// A Logger gates messages by severity (Error < Warn < Info < Debug) and by
// an enabled switch, and writes to a Backend: zerolog by default, zap via
// NewZapBackend, or any caller value with the four methods. Every call
// produces one LogRecord, emitted once at completion.
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: "info"
//	  format: "console"
//	  log_request_and_response_info: false
//
// # Usage
//
//	log := logger.New(logger.Config{Enabled: true, Level: "debug"})
//	log.Info("client ready")
package logger
