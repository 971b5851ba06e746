// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubBuildInfo makes vcsRevision see the passed settings for the rest of the
// test.
func stubBuildInfo(t *testing.T, settings ...debug.BuildSetting) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: settings}, true
	}
}

// TestSemIdentifiers ensures characters outside the semantic versioning
// alphabets are stripped.
func TestSemIdentifiers(t *testing.T) {
	tests := []struct {
		in     string
		preRel string
		build  string
	}{
		{in: "", preRel: "", build: ""},
		{in: "beta1", preRel: "beta1", build: "beta1"},
		{in: "rc-2", preRel: "rc-2", build: "rc-2"},
		{in: "abc.123", preRel: "abc123", build: "abc.123"},
		{in: "a+b_c d", preRel: "abcd", build: "abcd"},
		{in: "日本", preRel: "", build: ""},
	}

	for i, test := range tests {
		if got := semIdentifiers(test.in, false); got != test.preRel {
			t.Errorf("semIdentifiers #%d (%q): got %q, want %q", i,
				test.in, got, test.preRel)
		}
		if got := semIdentifiers(test.in, true); got != test.build {
			t.Errorf("semIdentifiers build #%d (%q): got %q, want %q",
				i, test.in, got, test.build)
		}
	}
}

// TestString ensures the pre-release and build metadata are appended only
// when present and the VCS revision fills in missing build metadata.
func TestString(t *testing.T) {
	defer func(preRel, build string) {
		PreRelease, BuildMetadata = preRel, build
	}(PreRelease, BuildMetadata)

	const commit = "4f2d6c1a9b3e7d5508a1c2e3f4a5b6c7d8e9f0a1"
	base := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	tests := []struct {
		name     string
		preRel   string
		build    string
		settings []debug.BuildSetting
		want     string
	}{
		{name: "bare", want: base},
		{name: "pre-release", preRel: "pre", want: base + "-pre"},
		{name: "build", build: "dev", want: base + "+dev"},
		{name: "both", preRel: "pre", build: "dev", want: base + "-pre+dev"},
		{name: "stripped", preRel: "p r e", build: "d+ev", want: base + "-pre+dev"},
		{
			name:     "revision",
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: commit}},
			want:     base + "+4f2d6c1a9b3e",
		},
		{
			name: "dirty revision",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: commit},
				{Key: "vcs.modified", Value: "true"},
			},
			preRel: "pre",
			want:   base + "-pre+4f2d6c1a9b3e.dirty",
		},
		{
			name:     "link time metadata wins",
			build:    "release",
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: commit}},
			want:     base + "+release",
		},
		{
			name:     "modified without revision",
			settings: []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
			want:     base,
		},
	}

	for i, test := range tests {
		stubBuildInfo(t, test.settings...)
		PreRelease, BuildMetadata = test.preRel, test.build
		if got := String(); got != test.want {
			t.Errorf("String #%d (%s): got %q, want %q", i, test.name,
				got, test.want)
		}
	}

	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
	PreRelease, BuildMetadata = "", ""
	require.Equal(t, base, String())
}

// TestFull ensures the --version line names the application, version and Go
// toolchain.
func TestFull(t *testing.T) {
	full := Full("hdkeyutil")
	require.True(t, strings.HasPrefix(full, "hdkeyutil version "+String()))
	require.Contains(t, full, runtime.Version())
	require.True(t, strings.HasSuffix(full, runtime.GOOS+"/"+runtime.GOARCH+")"))
}
