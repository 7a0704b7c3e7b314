package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/avatax/httpclient"
)

const sampleYAML = `
client:
  app_name: billing
  app_version: 1.4.2
  environment: sandbox
  timeout: 30s
  logging:
    enabled: true
    level: debug
  tls:
    min_version: "1.3"
  headers:
    X-Tenant: acme
telemetry:
  otlp_endpoint: localhost:4318
  sample_rate: 0.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

type mockFS struct {
	files   map[string]bool
	home    string
	loadEnv func(path string) error
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) HomeDir() (string, error) { return m.home, nil }
func (m *mockFS) LoadEnv(path string) error {
	if m.loadEnv != nil {
		return m.loadEnv(path)
	}
	return nil
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeFile(t, "avatax.yml", sampleYAML)

	var f File
	require.NoError(t, LoadConfig("avatax", &f, WithConfigFile(path), WithFileSystem(&mockFS{files: map[string]bool{path: true}})))

	assert.Equal(t, "billing", f.Client.AppName)
	assert.Equal(t, "1.4.2", f.Client.AppVersion)
	assert.Equal(t, httpclient.EnvSandbox, f.Client.Environment)
	assert.Equal(t, 30*time.Second, f.Client.Timeout)
	assert.True(t, f.Client.Logging.Enabled)
	assert.Equal(t, "debug", f.Client.Logging.Level)
	require.NotNil(t, f.Client.TLS)
	assert.Equal(t, "1.3", f.Client.TLS.MinVersion)
	// viper lowercases map keys; header names are canonicalized on send
	assert.Equal(t, "acme", f.Client.Headers["x-tenant"])
	assert.Equal(t, "localhost:4318", f.Telemetry.OTLPEndpoint)
	assert.InDelta(t, 0.5, f.Telemetry.SampleRate, 1e-9)

	f.ApplyDefaults()
	require.NoError(t, f.Validate())
	assert.Equal(t, httpclient.SandboxURL, f.Client.BaseURL())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeFile(t, "avatax.yml", sampleYAML)
	t.Setenv("AVATAX_CLIENT_TIMEOUT", "45s")
	t.Setenv("AVATAX_CLIENT_LOGGING_LEVEL", "warn")
	t.Setenv("AVATAX_CLIENT_APP_VERSION", "2.0.0")
	t.Setenv("OTHER_CLIENT_APP_NAME", "ignored")

	var f File
	require.NoError(t, LoadConfig("avatax", &f, WithConfigFile(path)))
	assert.Equal(t, 45*time.Second, f.Client.Timeout)
	assert.Equal(t, "warn", f.Client.Logging.Level)
	assert.Equal(t, "2.0.0", f.Client.AppVersion)
	assert.Equal(t, "billing", f.Client.AppName)
}

func TestLoadConfigEnvFile(t *testing.T) {
	fs := &mockFS{
		files: map[string]bool{".env": true},
		loadEnv: func(path string) error {
			assert.Equal(t, ".env", path)
			t.Setenv("AVATAX_CLIENT_APP_NAME", "from-dotenv")
			return nil
		},
	}

	var f File
	require.NoError(t, LoadConfig("avatax", &f, WithFileSystem(fs)))
	assert.Equal(t, "from-dotenv", f.Client.AppName)
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	var f File
	err := LoadConfig("avatax", &f, WithConfigFile(filepath.Join(t.TempDir(), "missing.yml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadConfigExplicitFileMalformed(t *testing.T) {
	path := writeFile(t, "avatax.yml", "client: [unterminated")
	var f File
	assert.Error(t, LoadConfig("avatax", &f, WithConfigFile(path)))
}

func TestLoadConfigNothingFound(t *testing.T) {
	var f File
	require.NoError(t, LoadConfig("avatax", &f, WithFileSystem(&mockFS{})))
	assert.Empty(t, f.Client.AppName)
}

func TestResolveFiles(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]bool
		lc         LoaderConfig
		wantConfig string
		wantEnv    string
	}{
		{
			name:       "app file in working dir",
			files:      map[string]bool{"avatax.yml": true, "config.yml": true, ".env": true},
			wantConfig: "avatax.yml",
			wantEnv:    ".env",
		},
		{
			name:       "config dir",
			files:      map[string]bool{filepath.Join("config", "avatax.yml"): true, ".env.avatax": true, ".env": true},
			wantConfig: filepath.Join("config", "avatax.yml"),
			wantEnv:    ".env.avatax",
		},
		{
			name:       "home dir",
			files:      map[string]bool{filepath.Join("/home/dev", ".config", "avatax", "config.yml"): true},
			wantConfig: filepath.Join("/home/dev", ".config", "avatax", "config.yml"),
		},
		{
			name:       "explicit wins",
			files:      map[string]bool{"avatax.yml": true},
			lc:         LoaderConfig{ConfigFile: "/etc/avatax.yml", EnvFile: "/etc/avatax.env"},
			wantConfig: "/etc/avatax.yml",
			wantEnv:    "/etc/avatax.env",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{FileSystem: &mockFS{files: tt.files, home: "/home/dev"}}
			got := r.ResolveFiles("avatax", tt.lc)
			assert.Equal(t, tt.wantConfig, got.ConfigFile)
			assert.Equal(t, tt.wantEnv, got.EnvFile)
		})
	}
}

func TestEnvKeyVariants(t *testing.T) {
	assert.Equal(t, []string{"timeout"}, envKeyVariants("TIMEOUT"))
	assert.ElementsMatch(t,
		[]string{"client_app_name", "client.app.name", "client.app_name", "client_app.name"},
		envKeyVariants("CLIENT_APP_NAME"))
}

func TestRealFileSystem(t *testing.T) {
	path := writeFile(t, ".env", "AVATAX_CONFIG_TEST_ONLY=1\n")
	t.Cleanup(func() { _ = os.Unsetenv("AVATAX_CONFIG_TEST_ONLY") })

	fs := RealFileSystem{}
	assert.True(t, fs.Exists(path))
	assert.False(t, fs.Exists(path+".missing"))
	require.NoError(t, fs.LoadEnv(path))
	assert.Equal(t, "1", os.Getenv("AVATAX_CONFIG_TEST_ONLY"))
}

func TestFileDefaultsAndValidate(t *testing.T) {
	f := File{Client: httpclient.Config{AppName: "billing", AppVersion: "1.0"}}
	f.ApplyDefaults()
	assert.InDelta(t, 1.0, f.Telemetry.SampleRate, 1e-9)
	assert.Equal(t, 15*time.Second, f.Telemetry.ExportInterval)
	assert.False(t, f.Telemetry.Enabled())
	require.NoError(t, f.Validate())

	f.Telemetry.SampleRate = 2
	assert.Error(t, f.Validate())

	missing := File{}
	missing.ApplyDefaults()
	assert.Error(t, missing.Validate())
}

func TestTelemetryMapping(t *testing.T) {
	client := httpclient.Config{AppName: "billing", AppVersion: "1.4.2", Environment: "sandbox"}
	tel := Telemetry{OTLPEndpoint: "collector:4318", Insecure: true, SampleRate: 0.25, ExportInterval: time.Minute}

	tc := tel.TracerConfig(client)
	assert.Equal(t, "billing", tc.ServiceName)
	assert.Equal(t, "collector:4318", tc.Endpoint)
	assert.InDelta(t, 0.25, tc.SampleRate, 1e-9)

	mc := tel.MeterConfig(client)
	assert.Equal(t, "1.4.2", mc.ServiceVersion)
	assert.Equal(t, time.Minute, mc.Interval)
	assert.True(t, mc.Insecure)
	assert.True(t, tel.Enabled())
}
