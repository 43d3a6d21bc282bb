// Package version reports the build identity of the mainviews binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/mainviews/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/mainviews/internal/version.Commit=abc1234"
//
// Empty values are filled from the embedded VCS build info.
var (
	Version = ""
	Commit  = ""
)

func init() {
	resolve(readSettings())
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func readSettings() map[string]string {
	settings := make(map[string]string)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" && Version == "" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// resolve fills Commit and Version from vcs.* build settings.
func resolve(settings map[string]string) {
	if Commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			Commit = rev
		}
	}
	if Version == "" {
		if t := settings["vcs.time"]; len(t) >= 10 {
			Version = "dev-" + strings.ReplaceAll(t[:10], "-", "")
		}
	}
}

// Full returns the version with its commit.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Platform returns "os/arch go-version" of the running binary.
func Platform() string {
	return fmt.Sprintf("%s/%s %s", runtime.GOOS, runtime.GOARCH, runtime.Version())
}
