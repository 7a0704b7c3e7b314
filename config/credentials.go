package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/kbukum/avatax/errors"
	"github.com/kbukum/avatax/httpclient"
)

// CredentialEnv holds the AvaTax credential variables.
type CredentialEnv struct {
	Username    string `env:"AVATAX_USERNAME"`
	Password    string `env:"AVATAX_PASSWORD"`
	AccountID   string `env:"AVATAX_ACCOUNT_ID"`
	LicenseKey  string `env:"AVATAX_LICENSE_KEY"`
	BearerToken string `env:"AVATAX_BEARER_TOKEN"`
}

// CredentialOption customizes LoadCredentials.
type CredentialOption func(*env.Options)

// WithEnvironment reads variables from vars instead of the process
// environment.
func WithEnvironment(vars map[string]string) CredentialOption {
	return func(o *env.Options) { o.Environment = vars }
}

// LoadCredentials builds credentials from the environment. A bearer token
// wins over an account pair, which wins over a username pair. With nothing
// set it returns the zero Credentials and no error; the service then
// rejects calls. A half-set pair is an error.
func LoadCredentials(opts ...CredentialOption) (httpclient.Credentials, error) {
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	var ce CredentialEnv
	if err := env.ParseWithOptions(&ce, o); err != nil {
		return httpclient.Credentials{}, fmt.Errorf("config: read credential variables: %w", err)
	}
	return ce.Credentials()
}

// Credentials picks the credential shape that is set.
func (ce CredentialEnv) Credentials() (httpclient.Credentials, error) {
	switch {
	case ce.BearerToken != "":
		return httpclient.BearerAuth(ce.BearerToken), nil
	case ce.AccountID != "" || ce.LicenseKey != "":
		if ce.AccountID == "" || ce.LicenseKey == "" {
			return httpclient.Credentials{}, errors.Configuration("credentials",
				"AVATAX_ACCOUNT_ID and AVATAX_LICENSE_KEY must be set together")
		}
		return httpclient.AccountAuth(ce.AccountID, ce.LicenseKey), nil
	case ce.Username != "" || ce.Password != "":
		if ce.Username == "" || ce.Password == "" {
			return httpclient.Credentials{}, errors.Configuration("credentials",
				"AVATAX_USERNAME and AVATAX_PASSWORD must be set together")
		}
		return httpclient.BasicAuth(ce.Username, ce.Password), nil
	default:
		return httpclient.Credentials{}, nil
	}
}
