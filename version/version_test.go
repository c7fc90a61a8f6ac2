package version_test

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/loghorn/version"
)

func TestFill(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		bi   *debug.BuildInfo
		in   version.Info
		want version.Info
	}{
		"no build info": {
			want: version.Info{Version: "devel", Revision: "unknown"},
		},
		"module version and clean revision": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "false"},
				},
			},
			want: version.Info{Version: "v1.2.0", Revision: "abc123"},
		},
		"dirty tree": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: version.Info{Version: "devel", Revision: "abc123-dirty"},
		},
		"ldflags win": {
			bi: &debug.BuildInfo{
				Main:     debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
			},
			in:   version.Info{Version: "v9.9.9", Revision: "release"},
			want: version.Info{Version: "v9.9.9", Revision: "release"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.in.Fill(tc.bi))
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Revision)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	info := version.Info{
		Version:   "v1.2.0",
		Revision:  "abc123",
		GoVersion: "go1.25.0",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "v1.2.0 (abc123, go1.25.0 linux/amd64)", info.String())
}
