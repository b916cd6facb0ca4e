// Package version exposes build metadata stamped at link time.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	BuildTime time.Time `json:"build_time"`
	GoVersion string    `json:"go_version"`
	Platform  string    `json:"platform"`
}

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version of the application
	Version = "dev"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildTime is the time when the binary was built (RFC3339 format)
	BuildTime = "unknown"
)

// GetBuildInfo returns the full build information
func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		Version:   GetVersion(),
		GitCommit: GetGitCommit(),
		BuildTime: parseBuildTime(BuildTime),
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// GetVersion returns the application version
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				return fmt.Sprintf("dev-%s", setting.Value[:7])
			}
		}
	}

	return "dev"
}

// GetGitCommit returns the git commit hash
func GetGitCommit() string {
	if GitCommit != "" && GitCommit != "unknown" {
		return GitCommit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}

// GetShortVersion returns just the version string
func GetShortVersion() string {
	return GetVersion()
}

func parseBuildTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}

	return time.Time{}
}
