// Package version carries build information injected by ldflags.
package version

var (
	// Version is the current launchkit version (e.g., "1.0.0")
	Version = "0.1.0"
	// GitCommit is the git commit hash
	GitCommit = ""
	// BuildDate is the build timestamp
	BuildDate = ""
)
