// Package version reports the ngl10n build version.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"     // Version string (e.g., "v0.3.0")
	GitCommit = "unknown" // Git commit hash
	BuildTime = "unknown" // Build timestamp
	GitDirty  = ""        // "dirty" if working directory has uncommitted changes
)

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the version string for the application
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := readBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return "dev"
}

// ShortCommit returns the first seven characters of the commit hash
func ShortCommit() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

// GetFullVersion returns the version with commit and build details, as printed by `ngl10n version`
func GetFullVersion() string {
	var b strings.Builder
	b.WriteString(GetVersion())
	if GitCommit != "unknown" && GitCommit != "" {
		fmt.Fprintf(&b, " (commit: %s", ShortCommit())
		if GitDirty == "dirty" {
			b.WriteString(", dirty")
		}
		b.WriteString(")")
	}
	if BuildTime != "unknown" && BuildTime != "" {
		fmt.Fprintf(&b, " built %s", BuildTime)
	}
	return b.String()
}
