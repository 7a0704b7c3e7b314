// Package validation checks configuration structs against their
// `validate` struct tags (go-playground/validator) and reports failures as
// a ConfigurationError with one detail per offending field.
//
//	type Config struct {
//	    AppName string `yaml:"app_name" validate:"required"`
//	    Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
//	}
//	err := validation.Validate(cfg)
package validation
