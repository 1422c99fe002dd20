// Package version holds build metadata injected at link time.
package version

import "fmt"

// Version is set via build-time ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/doxybridge/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the version for --version output.
func String() string {
	return fmt.Sprintf("doxybridge %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
