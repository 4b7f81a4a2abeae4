/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"runtime/debug"
	"testing"
)

func stamp(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	oldVersion, oldCommit, oldTime := Version, Commit, BuildTime
	Version, Commit, BuildTime = version, commit, buildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldTime })
}

func TestFromBuildInfo_VCSSettings(t *testing.T) {
	stamp(t, "dev", "", "")

	b := fromBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.25.5",
		Main:      debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "1a2b3c4d5e6f"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}, true)

	if b.Version != "dev" {
		t.Errorf("expected dev, got %q", b.Version)
	}
	if b.Commit != "1a2b3c4d5e6f" || b.Time != "2026-10-01T12:00:00Z" || !b.Modified {
		t.Errorf("VCS settings not applied: %+v", b)
	}
	if got := b.String(); got != "dev (commit 1a2b3c4, modified)" {
		t.Errorf("unexpected String() %q", got)
	}
}

func TestFromBuildInfo_LdflagsWin(t *testing.T) {
	stamp(t, "v0.3.0", "ffffffffff", "2026-09-30")

	b := fromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v0.2.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "1a2b3c4"}},
	}, true)

	if b.Version != "v0.3.0" || b.Commit != "ffffffffff" || b.Time != "2026-09-30" {
		t.Errorf("ldflags overridden: %+v", b)
	}
}

func TestFromBuildInfo_ModuleVersion(t *testing.T) {
	stamp(t, "dev", "", "")

	b := fromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v0.2.0"}}, true)
	if b.Version != "v0.2.0" {
		t.Errorf("expected module version, got %q", b.Version)
	}
	if got := b.String(); got != "v0.2.0" {
		t.Errorf("unexpected String() %q", got)
	}
}

func TestFromBuildInfo_Unavailable(t *testing.T) {
	stamp(t, "dev", "", "")

	if b := fromBuildInfo(nil, false); b.Version != "dev" || b.String() != "dev" {
		t.Errorf("unexpected build %+v", b)
	}
}
