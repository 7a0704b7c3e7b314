package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/avatax/avatax"
	"github.com/kbukum/avatax/component"
	"github.com/kbukum/avatax/config"
	"github.com/kbukum/avatax/errors"
	"github.com/kbukum/avatax/httpclient"
	"github.com/kbukum/avatax/logger"
	"github.com/kbukum/avatax/observability"
	"github.com/kbukum/avatax/version"
)

const (
	appName      = "avatax"
	defaultApp   = "avatax-cli"
	meterName    = "github.com/kbukum/avatax/cmd/avatax"
	stopDeadline = 5 * time.Second
)

// app holds the state shared by all subcommands.
type app struct {
	cfgFile      string
	env          string
	otlpEndpoint string

	out io.Writer

	file     config.File
	log      *logger.Logger
	registry *component.Registry
	client   *avatax.Client
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if stopErr := a.shutdown(); err == nil {
		err = stopErr
	}
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Call the AvaTax REST API",
		Long: `avatax calls a few AvaTax REST endpoints and prints the JSON result.

Credentials come from AVATAX_ACCOUNT_ID/AVATAX_LICENSE_KEY,
AVATAX_USERNAME/AVATAX_PASSWORD or AVATAX_BEARER_TOKEN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./avatax.yml if present)")
	root.PersistentFlags().StringVar(&a.env, "env", "", `"sandbox", "production" or a base URL`)
	root.PersistentFlags().StringVar(&a.otlpEndpoint, "otlp-endpoint", "", "export traces and metrics to this OTLP HTTP host:port")

	root.AddCommand(
		a.pingCmd(),
		a.resolveAddressCmd(),
		a.companiesCmd(),
		versionCmd(),
	)
	return root
}

// setup loads configuration and starts the components. Subcommands that
// talk to AvaTax use it as PreRunE.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if a.cfgFile != "" {
		opts = append(opts, config.WithConfigFile(a.cfgFile))
	}
	if err := config.LoadConfig(appName, &a.file, opts...); err != nil {
		return err
	}

	if a.env != "" {
		a.file.Client.Environment = a.env
	}
	if a.otlpEndpoint != "" {
		a.file.Telemetry.OTLPEndpoint = a.otlpEndpoint
	}
	if a.file.Client.AppName == "" {
		a.file.Client.AppName = defaultApp
	}
	if a.file.Client.AppVersion == "" {
		a.file.Client.AppVersion = version.Version
	}
	a.file.ApplyDefaults()
	if err := a.file.Validate(); err != nil {
		return err
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		return err
	}

	a.log = logger.New(a.file.Client.Logging)
	a.registry = component.NewRegistry(a.log)

	clientOpts := []httpclient.Option{httpclient.WithLogger(a.log)}
	if a.file.Telemetry.Enabled() {
		tel := observability.NewComponent(
			a.file.Telemetry.TracerConfig(a.file.Client),
			a.file.Telemetry.MeterConfig(a.file.Client),
			a.log,
		)
		if err := a.registry.Register(tel); err != nil {
			return err
		}
		metrics, err := observability.NewMetrics(observability.Meter(meterName))
		if err != nil {
			return err
		}
		clientOpts = append(clientOpts, httpclient.WithMetrics(metrics))
	}

	hc := httpclient.NewComponent(a.file.Client, creds, clientOpts...)
	if err := a.registry.Register(hc); err != nil {
		return err
	}
	if err := a.registry.StartAll(cmd.Context()); err != nil {
		return err
	}
	a.client = avatax.NewFromHTTP(hc.Client())
	return nil
}

func (a *app) shutdown() error {
	if a.registry == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), stopDeadline)
	defer cancel()
	return a.registry.StopAll(ctx)
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// reportError prints AvaTax errors with their code and details.
func reportError(w io.Writer, err error) {
	ae, ok := errors.AsAvalaraError(err)
	if !ok {
		_, _ = fmt.Fprintln(w, "error:", err)
		return
	}
	_, _ = fmt.Fprintf(w, "error: %s\n", ae.Error())
	for _, d := range ae.Details {
		_, _ = fmt.Fprintf(w, "  - %s: %s\n", d.Code, d.Message)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.SDKName, version.Version)
			return err
		},
	}
}
