package httpclient

import (
	"os"
	"time"

	"dario.cat/mergo"

	"github.com/kbukum/avatax/logger"
	"github.com/kbukum/avatax/validation"
)

const defaultMachineName = "unknown"

// Config configures an AvaTax client. It is read once at construction.
type Config struct {
	// AppName and AppVersion identify the calling application in the
	// X-Avalara-Client header.
	AppName    string `yaml:"app_name" mapstructure:"app_name" validate:"required"`
	AppVersion string `yaml:"app_version" mapstructure:"app_version" validate:"required"`

	// MachineName defaults to the host name.
	MachineName string `yaml:"machine_name" mapstructure:"machine_name"`

	// Environment is "sandbox", "production", or an explicit base URL.
	// Empty selects production.
	Environment string `yaml:"environment" mapstructure:"environment"`

	// Timeout bounds each call. Zero leaves calls unbounded.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// TLS configures the transport. Ignored when WithHTTPClient is used.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are default headers applied to all requests. They never
	// replace the headers the client always sets.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// DefaultConfig returns the values ApplyDefaults fills in.
func DefaultConfig() Config {
	machine, err := os.Hostname()
	if err != nil || machine == "" {
		machine = defaultMachineName
	}
	return Config{
		MachineName: machine,
		Logging: logger.Config{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
	}
}

// ApplyDefaults fills zero-value fields from DefaultConfig.
func (c *Config) ApplyDefaults() {
	// both sides are Config, so Merge cannot fail on types
	_ = mergo.Merge(c, DefaultConfig())
	c.Logging.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BaseURL returns the base URL selected by Environment.
func (c *Config) BaseURL() string {
	return ResolveBaseURL(c.Environment)
}
