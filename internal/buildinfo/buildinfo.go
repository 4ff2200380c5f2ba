// Package buildinfo carries the build identity stamped in via -ldflags.
package buildinfo

// Set at build time via -ldflags "-X helios/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns a compact identifier for window titles and logs.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	default:
		return "dev"
	}
}
