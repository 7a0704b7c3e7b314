// Command avatax calls a few AvaTax endpoints from the shell.
//
//	AVATAX_ACCOUNT_ID=... AVATAX_LICENSE_KEY=... avatax --env sandbox ping
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
