package buildinfo

import "fmt"

// Set at build time via -ldflags "-X serialterm/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build identifier printed by `version`.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Short(), Commit, Date)
}
