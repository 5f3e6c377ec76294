// Package version provides centralized version management for the shell
// kernel. It supports semantic versioning and build-time injection, and
// exposes the numeric revision components rendered in the help banner.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags.
var (
	// Version is the semantic version of the kernel.
	Version = "1.1.0"

	// GitCommit is the git commit hash when the binary was built.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// Rev returns the major, minor, and patch components of the current
// version. A malformed version reports 0.0.0 rather than failing; the
// help banner must always render.
func Rev() (major, minor, patch uint64) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return 0, 0, 0
	}
	return sv.Major(), sv.Minor(), sv.Patch()
}

// GetFormattedVersion returns a nicely formatted version string for the
// CLI.
func GetFormattedVersion() string {
	parts := []string{fmt.Sprintf("shellkernel v%s", Version)}

	if GitCommit != "unknown" && GitCommit != "" {
		shortCommit := GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}
	if BuildDate != "unknown" && BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", BuildDate))
	}
	parts = append(parts, fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH))

	return strings.Join(parts, ", ")
}

// ValidateVersion validates that the current version is a valid semantic
// version.
func ValidateVersion() error {
	if _, err := semver.NewVersion(Version); err != nil {
		return fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}
	return nil
}
