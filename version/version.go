// Package version reports build metadata for the loghorn binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Revision is the git commit revision, set via ldflags. When empty it is
	// read from the embedded VCS build settings.
	Revision string
)

// Info describes a build.
type Info struct {
	Version   string
	Revision  string
	GoVersion string
	Platform  string
}

// Get returns the [Info] for the running binary. Values set via ldflags take
// precedence over the embedded build info.
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  Revision,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		bi = nil
	}

	return info.Fill(bi)
}

// Fill sets empty fields of i from bi, which may be nil, then defaults the
// version to "devel" and the revision to "unknown".
func (i Info) Fill(bi *debug.BuildInfo) Info {
	if bi != nil {
		if i.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			i.Version = bi.Main.Version
		}

		if i.Revision == "" {
			i.Revision = revision(bi.Settings)
		}
	}

	if i.Version == "" {
		i.Version = "devel"
	}

	if i.Revision == "" {
		i.Revision = "unknown"
	}

	return i
}

func revision(settings []debug.BuildSetting) string {
	rev := ""
	modified := false

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev != "" && modified {
		return rev + "-dirty"
	}

	return rev
}

// String renders i on one line, e.g. "v1.2.0 (abc123, go1.25.0 linux/amd64)".
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, %s %s)", i.Version, i.Revision, i.GoVersion, i.Platform)
}
