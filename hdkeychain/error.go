// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrWrongPathPrefix indicates a derivation path does not start with the
	// required "m/" prefix.
	ErrWrongPathPrefix = ErrorKind("ErrWrongPathPrefix")

	// ErrMaxDepthExceeded indicates a derivation path has more segments than
	// the configured maximum.
	ErrMaxDepthExceeded = ErrorKind("ErrMaxDepthExceeded")

	// ErrCannotParseIndex indicates a child number segment is not a valid
	// decimal index, optionally suffixed with an apostrophe.
	ErrCannotParseIndex = ErrorKind("ErrCannotParseIndex")

	// ErrInvalidIndex indicates an index is outside the range allowed for
	// the requested kind of child.
	ErrInvalidIndex = ErrorKind("ErrInvalidIndex")

	// ErrInvalidPathIndex indicates one of the segments of a derivation path
	// could not be parsed.  The underlying child number error is available
	// through errors.Is and errors.As.
	ErrInvalidPathIndex = ErrorKind("ErrInvalidPathIndex")

	// ErrVersionTooShort indicates version bytes are not exactly four bytes
	// long.
	ErrVersionTooShort = ErrorKind("ErrVersionTooShort")

	// ErrInvalidVersion indicates version bytes or a version tag do not
	// match any known extended key version.
	ErrInvalidVersion = ErrorKind("ErrInvalidVersion")

	// ErrInvalidSeedLen indicates the seed used to create a master key is
	// outside the allowed length.
	ErrInvalidSeedLen = ErrorKind("ErrInvalidSeedLen")

	// ErrUnusableSeed indicates a seed produced a master secret that is not
	// a valid secp256k1 private key.
	ErrUnusableSeed = ErrorKind("ErrUnusableSeed")

	// ErrDepthExceeded indicates a child can't be derived because the parent
	// is already at the maximum depth the serialization format allows.
	ErrDepthExceeded = ErrorKind("ErrDepthExceeded")

	// ErrTweakOutOfRange indicates the intermediate key for a child is not
	// usable, or produced an invalid child key.  The chances of this are
	// negligible and the caller is expected to move on to the next index.
	ErrTweakOutOfRange = ErrorKind("ErrTweakOutOfRange")

	// ErrHardenedFromPublic indicates an attempt to derive a hardened child
	// from a public extended key.
	ErrHardenedFromPublic = ErrorKind("ErrHardenedFromPublic")

	// ErrInvalidBase58 indicates a serialized key contains characters
	// outside the base58 alphabet.
	ErrInvalidBase58 = ErrorKind("ErrInvalidBase58")

	// ErrInvalidKeyLen indicates a serialized key does not decode to the
	// expected number of bytes.
	ErrInvalidKeyLen = ErrorKind("ErrInvalidKeyLen")

	// ErrBadChecksum indicates the checksum of a serialized key does not
	// match its payload.
	ErrBadChecksum = ErrorKind("ErrBadChecksum")

	// ErrNotPrivateKey indicates the key data of an extended key is not a
	// padded private key.
	ErrNotPrivateKey = ErrorKind("ErrNotPrivateKey")

	// ErrVersionMismatch indicates the version of an extended key is for
	// the other kind of key than the one requested.
	ErrVersionMismatch = ErrorKind("ErrVersionMismatch")

	// ErrInvalidPrivateKey indicates the key data of an extended key is not
	// a valid secp256k1 private key.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrInvalidPublicKey indicates the key data of an extended key is not
	// a valid compressed secp256k1 public key.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to hierarchical deterministic keys.  It
// has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string

	// Cause is the error that triggered this one, if any.
	Cause error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped errors.
func (e Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// wrapError creates an Error that also carries the error which caused it.
func wrapError(kind ErrorKind, desc string, cause error) Error {
	return Error{Err: kind, Description: desc, Cause: cause}
}
