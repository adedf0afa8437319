// Package version exposes build metadata injected at link time:
//
//	go build -ldflags "-X github.com/cwbudde/algo-dspkit/internal/version.Version=v0.3.0 \
//	  -X github.com/cwbudde/algo-dspkit/internal/version.BuildTime=2026-01-01T00:00:00Z"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag; "dev" for local builds.
	Version = "dev"
	// BuildTime is the RFC 3339 build timestamp, empty when unknown.
	BuildTime = ""
)

// String returns a one-line description of the build.
func String() string {
	built := BuildTime
	if built == "" {
		built = "unknown"
	}

	return fmt.Sprintf("dspkit %s (built %s, %s %s/%s)", Version, built, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
