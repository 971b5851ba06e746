// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package batch derives many children of a single extended key.

Extended keys are immutable once created, so the siblings of a parent can be
derived on several goroutines at once.  Range does that for a run of
consecutive indices and returns the children in index order.

NextValidChild implements the remedy BIP0032 prescribes for the negligible
chance that an index does not produce a usable key: the index is skipped and
the next one of the same kind is tried.

Both work with either *hdkeychain.ExtendedPrivateKey or
*hdkeychain.ExtendedPublicKey through the Deriver interface.
*/
package batch
