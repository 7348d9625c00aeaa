/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports tessera build information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info is the structured build description printed by `tessera version`.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	Dirty     bool   `json:"dirty,omitempty"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the version string for the application.
func Get() string {
	return Read().Version
}

// Read collects build information. ldflags win; otherwise module and VCS
// metadata embedded by the go tool are used.
func Read() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String renders the one-line form, e.g. "v1.2.0 (commit: abc1234-dirty)".
func (i Info) String() string {
	if i.GitCommit == "unknown" || i.GitCommit == "" {
		return i.Version
	}
	commit := i.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s)", i.Version, commit)
}
