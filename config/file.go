package config

import (
	"time"

	"github.com/kbukum/avatax/httpclient"
	"github.com/kbukum/avatax/observability"
	"github.com/kbukum/avatax/validation"
)

// File is the configuration file of an AvaTax client application.
//
//	client:
//	  app_name: billing
//	  app_version: 1.4.2
//	  environment: sandbox
//	  timeout: 30s
//	  logging:
//	    enabled: true
//	    level: info
//	telemetry:
//	  otlp_endpoint: localhost:4318
type File struct {
	Client    httpclient.Config `yaml:"client" mapstructure:"client"`
	Telemetry Telemetry         `yaml:"telemetry" mapstructure:"telemetry"`
}

// Telemetry configures OTLP export. An empty endpoint disables it.
type Telemetry struct {
	OTLPEndpoint   string        `yaml:"otlp_endpoint" mapstructure:"otlp_endpoint"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	ExportInterval time.Duration `yaml:"export_interval" mapstructure:"export_interval" validate:"gte=0"`
}

// ApplyDefaults fills unset values.
func (f *File) ApplyDefaults() {
	f.Client.ApplyDefaults()
	if f.Telemetry.SampleRate == 0 {
		f.Telemetry.SampleRate = 1.0
	}
	if f.Telemetry.ExportInterval == 0 {
		f.Telemetry.ExportInterval = 15 * time.Second
	}
}

// Validate checks the client and telemetry sections.
func (f *File) Validate() error {
	if err := f.Client.Validate(); err != nil {
		return err
	}
	return validation.Validate(f.Telemetry)
}

// Enabled reports whether telemetry export is configured.
func (t Telemetry) Enabled() bool {
	return t.OTLPEndpoint != ""
}

// TracerConfig maps the telemetry section onto an observability tracer
// configuration for the given client.
func (t Telemetry) TracerConfig(client httpclient.Config) observability.TracerConfig {
	return observability.TracerConfig{
		ServiceName:    client.AppName,
		ServiceVersion: client.AppVersion,
		Environment:    client.Environment,
		Endpoint:       t.OTLPEndpoint,
		Insecure:       t.Insecure,
		SampleRate:     t.SampleRate,
	}
}

// MeterConfig maps the telemetry section onto an observability meter
// configuration for the given client.
func (t Telemetry) MeterConfig(client httpclient.Config) observability.MeterConfig {
	return observability.MeterConfig{
		ServiceName:    client.AppName,
		ServiceVersion: client.AppVersion,
		Environment:    client.Environment,
		Endpoint:       t.OTLPEndpoint,
		Insecure:       t.Insecure,
		Interval:       t.ExportInterval,
	}
}
