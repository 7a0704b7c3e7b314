package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Backend is the four-method contract every log destination satisfies.
//
//go:generate mockgen -source=backend.go -destination=mock/backend_mock.go -package=mock
type Backend interface {
	Error(msg string)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

// ZerologBackend writes through a zerolog.Logger.
type ZerologBackend struct {
	zl zerolog.Logger
}

var _ Backend = (*ZerologBackend)(nil)

// NewZerologBackend wraps an existing zerolog logger, e.g. the one an
// application already configured.
func NewZerologBackend(zl zerolog.Logger) *ZerologBackend {
	return &ZerologBackend{zl: zl}
}

func (b *ZerologBackend) Error(msg string) { b.zl.Error().Msg(msg) }
func (b *ZerologBackend) Warn(msg string)  { b.zl.Warn().Msg(msg) }
func (b *ZerologBackend) Info(msg string)  { b.zl.Info().Msg(msg) }
func (b *ZerologBackend) Debug(msg string) { b.zl.Debug().Msg(msg) }

func (b *ZerologBackend) writeRecord(level Level, rec *LogRecord) {
	event := b.zl.WithLevel(level.zerolog()).
		Str(FieldRequestID, rec.RequestID).
		Str(FieldMethod, rec.HTTPMethod).
		Str(FieldRequestURI, rec.RequestURI).
		Int(FieldStatus, rec.StatusCode).
		Int64(FieldDuration, rec.TotalExecutionTime.Milliseconds())
	if rec.CorrelationID != "" {
		event = event.Str(FieldCorrelationID, rec.CorrelationID)
	}
	if rec.RequestDetails != "" {
		event = event.Str(FieldRequestBody, rec.RequestDetails)
	}
	if rec.ResponseDetails != "" {
		event = event.Str(FieldResponseBody, rec.ResponseDetails)
	}
	if rec.ErrorInfo != nil {
		event.Str(FieldErrorCode, string(rec.ErrorInfo.Code)).
			Str(FieldError, rec.ErrorInfo.Message).
			Msg("AvaTax request failed")
		return
	}
	event.Msg("AvaTax request completed")
}

// newDefaultBackend builds the console-equivalent zerolog backend.
func newDefaultBackend(cfg *Config) *ZerologBackend {
	var out io.Writer = outputWriter(cfg.Output)
	if cfg.Writer != nil {
		// the logger is shared across concurrent calls
		out = zerolog.SyncWriter(cfg.Writer)
	}

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == "json" {
		zl = zerolog.New(out)
	} else {
		zl = newConsoleLogger(out, cfg.NoColor || !isTerminal(out))
	}
	// gating happens in Logger; the backend itself accepts everything
	return NewZerologBackend(zl.Level(zerolog.DebugLevel).With().
		Timestamp().
		Str(FieldComponent, componentName).
		Logger())
}

func outputWriter(output string) *os.File {
	switch strings.ToLower(output) {
	case "stderr":
		return os.Stderr
	default:
		return os.Stdout
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newConsoleLogger(out io.Writer, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			var tag string
			switch strings.ToUpper(fmt.Sprintf("%s", i)) {
			case "DEBUG":
				tag = "DBG"
			case "INFO":
				tag = "INF"
			case "WARN":
				tag = "WRN"
			case "ERROR":
				tag = "ERR"
			default:
				tag = strings.ToUpper(fmt.Sprintf("%s", i))
			}
			if noColor {
				return "[" + tag + "]"
			}
			switch tag {
			case "DBG":
				return "\033[36m[DBG]\033[0m"
			case "INF":
				return "\033[32m[INF]\033[0m"
			case "WRN":
				return "\033[33m[WRN]\033[0m"
			case "ERR":
				return "\033[31m[ERR]\033[0m"
			}
			return "[" + tag + "]"
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
	})
}
