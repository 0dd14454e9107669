// Package version reports the rolas build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the program name used in version strings and HTTP user agents.
const Name = "rolas"

// Set via ldflags at release time:
//
//	-X github.com/pthm/rolas/internal/version.Version=v1.2.3
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns "rolas <version> (commit: <sha>, built: <date>) <go version>".
func Info() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s) %s",
		Name, Version, Commit, Date, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}

// UserAgent returns "rolas/<version>".
func UserAgent() string {
	return Name + "/" + Version
}

// FromBuildInfo fills Version, Commit and Date from the module build info
// when they were not set via ldflags, as with "go install
// github.com/pthm/rolas/cmd/rolas@<version>".
func FromBuildInfo() {
	if Version != "dev" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	apply(info)
}

func apply(info *debug.BuildInfo) {
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			Commit = setting.Value
			if len(Commit) > 7 {
				Commit = Commit[:7]
			}
		case "vcs.time":
			Date = setting.Value
		}
	}
}
