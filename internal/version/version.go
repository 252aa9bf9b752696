package version

import "runtime"

// Set with -ldflags "-X github.com/dastanaron/html2nix/internal/version.Version=..."
var (
	Version   = "dev"  // ex: v0.1.0
	Commit    = "none" // ex: abcd123
	GoVersion = runtime.Version()
)

// String formats the build information for --version
func String() string {
	return "html2nix " + Version + " (commit=" + Commit + ", go=" + GoVersion + ")"
}
