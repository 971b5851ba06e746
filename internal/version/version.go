// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version reports the version of hdkeyutil and the other utilities in
// this repository.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// These constants define the application version and follow semantic
// versioning 2.0.0 (http://semver.org/).
const (
	Major uint = 0
	Minor uint = 1
	Patch uint = 0
)

var (
	// PreRelease may be overridden at link time with
	// '-ldflags "-X github.com/hdcore/hdcore/internal/version.PreRelease=foo"'.
	// Characters semantic versioning does not allow are dropped.
	PreRelease = "pre"

	// BuildMetadata may be overridden at link time with
	// '-ldflags "-X github.com/hdcore/hdcore/internal/version.BuildMetadata=foo"'.
	// When empty, the VCS revision recorded by the Go toolchain is used.
	BuildMetadata = ""
)

// revisionLen is the number of commit hash characters kept in the build
// metadata.
const revisionLen = 12

// readBuildInfo is replaced by tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the semantic version of the utilities, for example
// "0.1.0-pre+4f2d6c1a9b3e".
func String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", Major, Minor, Patch)

	if pre := semIdentifiers(PreRelease, false); pre != "" {
		sb.WriteString("-")
		sb.WriteString(pre)
	}

	build := semIdentifiers(BuildMetadata, true)
	if build == "" {
		build = vcsRevision()
	}
	if build != "" {
		sb.WriteString("+")
		sb.WriteString(build)
	}

	return sb.String()
}

// Full returns the line printed by the --version flag of the utilities.
func Full(appName string) string {
	return fmt.Sprintf("%s version %s (Go version %s %s/%s)", appName,
		String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// semIdentifiers strips the characters which are not allowed in pre-release
// identifiers, or in build identifiers when build is set.  Only the latter
// keep dots.
func semIdentifiers(s string, build bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z', r == '-':
			return r
		case r == '.' && build:
			return r
		}
		return -1
	}, s)
}

// vcsRevision returns the shortened commit the binary was built from, with a
// ".dirty" suffix when the tree had local modifications.  It is empty when the
// toolchain recorded no revision, as for tests.
func vcsRevision() string {
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return ""
	}
	if len(revision) > revisionLen {
		revision = revision[:revisionLen]
	}
	if modified {
		revision += ".dirty"
	}
	return revision
}
