// Package version carries build metadata stamped at link time:
//
//	go build -ldflags "-X .../internal/version.Version=$(git rev-parse --short HEAD) \
//	                   -X .../internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

var (
	// Version is the release identifier, typically the commit SHA the
	// image was built from.
	Version = "dev"

	// BuildDate is the UTC timestamp of the build.
	BuildDate = "unknown"
)
