/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports how the running czero binary was built.
//
// Release builds stamp Version, Commit and BuildTime with ldflags. Other
// builds fall back to the module version and VCS settings the Go toolchain
// records, so `go install` binaries still report their commit.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	Time      string `json:"time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Read assembles the build description. ldflags values take precedence
// over recorded build settings.
func Read() Build {
	return fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) Build {
	b := Build{Version: Version, Commit: Commit, Time: BuildTime}
	if !ok || info == nil {
		return b
	}
	b.GoVersion = info.GoVersion
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.Time == "" {
				b.Time = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

// ShortCommit is the first seven characters of the commit hash.
func (b Build) ShortCommit() string {
	if len(b.Commit) > 7 {
		return b.Commit[:7]
	}
	return b.Commit
}

// String formats the build on one line, e.g. "v0.3.0 (commit 1a2b3c4, modified)".
func (b Build) String() string {
	var details []string
	if b.Commit != "" {
		details = append(details, "commit "+b.ShortCommit())
	}
	if b.Modified {
		details = append(details, "modified")
	}
	if len(details) == 0 {
		return b.Version
	}
	return fmt.Sprintf("%s (%s)", b.Version, strings.Join(details, ", "))
}

// Get returns the version string.
func Get() string {
	return Read().Version
}
