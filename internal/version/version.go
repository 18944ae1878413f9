package version

import (
	"fmt"
	"runtime"
)

// Build information. Populated at build-time via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns version information
func Info() map[string]string {
	return map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
	}
}

// String returns a single-line version string for banners and logs
func String() string {
	return fmt.Sprintf("tectra %s (commit %s, built %s, %s)",
		Version, GitCommit, BuildDate, runtime.Version())
}
