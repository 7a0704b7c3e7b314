// Package version carries the SDK identity sent to AvaTax on every call.
//
// Version and git commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/avatax/version.Version=24.12.0"
package version
