package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// SDKName identifies this client library in the X-Avalara-Client header.
const SDKName = "GoSdk"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// Info represents version information.
type Info struct {
	SDKName   string `json:"sdk_name"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	IsDirty   bool   `json:"is_dirty"`
}

// GetVersionInfo returns the SDK version merged with whatever the Go
// toolchain embedded in the binary.
func GetVersionInfo() *Info {
	info := &Info{
		SDKName:   SDKName,
		Version:   Version,
		GitCommit: GitCommit,
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			}
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	return info
}

// GetShortVersion returns a short version string.
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit != "" {
		if info.IsDirty {
			return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
		}
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
	return info.Version
}

// ClientID builds the free-form X-Avalara-Client value:
//
//	{appName}; {appVersion}; {sdkName}; {sdkVersion}; {machineName}
//
// The server does not parse it; it only shows up in AvaTax diagnostics.
func ClientID(appName, appVersion, machineName string) string {
	return strings.Join([]string{appName, appVersion, SDKName, Version, machineName}, "; ")
}
