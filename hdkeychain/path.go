// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxPathDepth is the maximum number of segments ParsePath
	// accepts.  It is a policy limit and is stricter than the 255 levels the
	// serialized depth allows.
	DefaultMaxPathDepth = 5

	// pathPrefix is the required prefix of an absolute derivation path.
	pathPrefix = "m/"

	pathSeparator = "/"
)

// DerivationPath is an ordered, immutable sequence of child numbers.  The
// order is the derivation order.
type DerivationPath struct {
	path []ChildNumber
}

// ParsePath parses a path in the "m/44'/0'/0'/0/0" notation allowing at most
// DefaultMaxPathDepth segments.
func ParsePath(s string) (DerivationPath, error) {
	return ParsePathWithLimit(s, DefaultMaxPathDepth)
}

// ParsePathWithLimit parses a path in the "m/44'/0'/0'/0/0" notation allowing
// at most maxDepth segments.
func ParsePathWithLimit(s string, maxDepth int) (DerivationPath, error) {
	rest, ok := strings.CutPrefix(s, pathPrefix)
	if !ok {
		str := fmt.Sprintf("path %q does not start with %q", s,
			pathPrefix)
		return DerivationPath{}, makeError(ErrWrongPathPrefix, str)
	}

	segments := strings.Split(rest, pathSeparator)
	if len(segments) > maxDepth {
		str := fmt.Sprintf("path %q has %d segments which exceeds the "+
			"maximum of %d", s, len(segments), maxDepth)
		return DerivationPath{}, makeError(ErrMaxDepthExceeded, str)
	}

	path := make([]ChildNumber, 0, len(segments))
	for i, segment := range segments {
		cn, err := ParseChildNumber(segment)
		if err != nil {
			str := fmt.Sprintf("path %q: invalid index at position "+
				"%d: %v", s, i, err)
			return DerivationPath{}, wrapError(ErrInvalidPathIndex,
				str, err)
		}
		path = append(path, cn)
	}

	return DerivationPath{path: path}, nil
}

// NewDerivationPath returns a path made of the passed child numbers.  The same
// length rules as ParsePath apply.
func NewDerivationPath(childNums ...ChildNumber) (DerivationPath, error) {
	if err := (DerivationPath{path: childNums}).checkNotEmpty(); err != nil {
		return DerivationPath{}, err
	}
	if len(childNums) > DefaultMaxPathDepth {
		str := fmt.Sprintf("path has %d segments which exceeds the "+
			"maximum of %d", len(childNums), DefaultMaxPathDepth)
		return DerivationPath{}, makeError(ErrMaxDepthExceeded, str)
	}

	path := make([]ChildNumber, len(childNums))
	copy(path, childNums)
	return DerivationPath{path: path}, nil
}

// checkNotEmpty returns ErrInvalidPathIndex for a path without child numbers,
// such as the zero value.
func (p DerivationPath) checkNotEmpty() error {
	if len(p.path) == 0 {
		str := "path must contain at least one child number"
		return makeError(ErrInvalidPathIndex, str)
	}
	return nil
}

// Len returns the number of derivation steps in the path.
func (p DerivationPath) Len() int {
	return len(p.path)
}

// At returns the i'th child number of the path.  It panics if i is out of
// range, like a slice index would.
func (p DerivationPath) At(i int) ChildNumber {
	return p.path[i]
}

// ChildNumbers returns a copy of the child numbers in derivation order.
func (p DerivationPath) ChildNumbers() []ChildNumber {
	path := make([]ChildNumber, len(p.path))
	copy(path, p.path)
	return path
}

// String returns the path in the "m/44'/0'" notation.
func (p DerivationPath) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, cn := range p.path {
		sb.WriteString(pathSeparator)
		sb.WriteString(cn.String())
	}
	return sb.String()
}
