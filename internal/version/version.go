// Package version holds build metadata stamped in via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/coinboard/internal/version.Version=0.3.0 \
//	                   -X github.com/rickgao/coinboard/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/coinboard/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/coinboard
package version

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "0.3.0")
	Version = "dev"

	// Commit is the git commit hash (short form)
	Commit = "unknown"

	// BuildTime is the UTC build timestamp (ISO 8601)
	BuildTime = "unknown"
)

// String returns the full build description for logs.
func String() string {
	return Version + " (" + Commit + ") built " + BuildTime
}

// Short returns the version shown in the dashboard footer. The commit is
// appended only when it is known.
func Short() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}
