// Package version holds the build version string.
package version

// Version is stamped at release time via
// -ldflags "-X github.com/JiYeong0127/paperdeck/internal/version.Version=...".
var Version = "dev"
