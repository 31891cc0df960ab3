package version

import "fmt"

// Version contains the application version information.
// Release builds set it via ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/apidocs/internal/version.Version=v1.0.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String is the text printed by apidocs --version.
func String() string {
	return fmt.Sprintf("apidocs %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
