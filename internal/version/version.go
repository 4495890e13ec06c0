// Package version holds build metadata injected at link time.
package version

// Version is set with -ldflags "-X github.com/ndewijer/portfolio-tracker/internal/version.Version=..."
var Version = "dev"
