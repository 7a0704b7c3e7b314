// Package config loads the configuration of AvaTax client applications.
//
// LoadConfig reads a YAML file with Viper, loads an optional .env file with
// godotenv and lets environment variables override file values:
//
//	var f config.File
//	err := config.LoadConfig("avatax", &f, config.WithConfigFile("avatax.yml"))
//
// Variables are prefixed with the upper-cased application name, with
// underscores standing in for nesting: AVATAX_CLIENT_TIMEOUT=30s sets
// client.timeout.
//
// LoadCredentials reads the AvaTax credentials from the environment.
package config
