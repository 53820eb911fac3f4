package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVars(t *testing.T, v, commit, built, dirty string) {
	t.Helper()
	origVersion, origCommit, origBuilt, origDirty := Version, GitCommit, BuildTime, GitDirty
	origRead := readBuildInfo
	t.Cleanup(func() {
		Version, GitCommit, BuildTime, GitDirty = origVersion, origCommit, origBuilt, origDirty
		readBuildInfo = origRead
	})
	Version, GitCommit, BuildTime, GitDirty = v, commit, built, dirty
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
}

func TestGetVersion(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		withVars(t, "dev", "unknown", "unknown", "")
		assert.Equal(t, "dev", GetVersion())
	})

	t.Run("ldflags", func(t *testing.T) {
		withVars(t, "v1.2.3", "unknown", "unknown", "")
		assert.Equal(t, "v1.2.3", GetVersion())
	})

	t.Run("module build info", func(t *testing.T) {
		withVars(t, "dev", "unknown", "unknown", "")
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}}, true
		}
		assert.Equal(t, "v0.4.0", GetVersion())
	})

	t.Run("devel build info falls back to dev", func(t *testing.T) {
		withVars(t, "dev", "unknown", "unknown", "")
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
		}
		assert.Equal(t, "dev", GetVersion())
	})
}

func TestGetFullVersion(t *testing.T) {
	t.Run("version only", func(t *testing.T) {
		withVars(t, "v1.0.0", "unknown", "unknown", "")
		assert.Equal(t, "v1.0.0", GetFullVersion())
	})

	t.Run("with commit and build time", func(t *testing.T) {
		withVars(t, "v1.0.0", "0123456789abcdef", "2026-01-02T03:04:05Z", "")
		assert.Equal(t, "v1.0.0 (commit: 0123456) built 2026-01-02T03:04:05Z", GetFullVersion())
	})

	t.Run("dirty tree", func(t *testing.T) {
		withVars(t, "v1.0.0", "abc", "unknown", "dirty")
		assert.Equal(t, "v1.0.0 (commit: abc, dirty)", GetFullVersion())
	})
}
