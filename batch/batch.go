// Copyright (c) 2026 The hdcore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/hdcore/hdcore/hdkeychain"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrRangeCrossesBoundary is returned when a range of indices would
	// span both normal and hardened children, or run past the last index.
	ErrRangeCrossesBoundary = errors.New("index range crosses the " +
		"hardened boundary")

	// ErrIndexSpaceExhausted is returned by NextValidChild when no usable
	// child is left before the end of the normal or hardened range.
	ErrIndexSpaceExhausted = errors.New("no usable child index left")

	// ErrInvalidCount is returned when a negative number of children is
	// requested.
	ErrInvalidCount = errors.New("child count must not be negative")
)

// Deriver is implemented by extended keys which derive children of type K.
// Both *hdkeychain.ExtendedPrivateKey and *hdkeychain.ExtendedPublicKey
// satisfy it.
type Deriver[K any] interface {
	Child(cn hdkeychain.ChildNumber) (K, error)
}

// options houses the tunables of Range.
type options struct {
	workers int
}

// Option configures Range.
type Option func(*options)

// WithWorkers limits the number of children derived at the same time.  Values
// below one leave the default of one worker per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// checkRange ensures count children starting at start stay on one side of the
// hardened boundary.
func checkRange(start uint32, count int) error {
	if count < 0 {
		return ErrInvalidCount
	}
	if count == 0 {
		return nil
	}

	last := uint64(start) + uint64(count) - 1
	if last > 0xffffffff {
		return fmt.Errorf("%w: last index %d overflows",
			ErrRangeCrossesBoundary, last)
	}
	if start < hdkeychain.HardenedKeyStart &&
		last >= hdkeychain.HardenedKeyStart {

		return fmt.Errorf("%w: indices %d through %d",
			ErrRangeCrossesBoundary, start, last)
	}
	return nil
}

// Range derives count consecutive children of parent beginning at index start
// and returns them in index order.  The children are derived concurrently.
//
// The first derivation error, or cancellation of ctx, stops the remaining work
// and is returned.  Unlike NextValidChild, an index which does not produce a
// usable key is an error here, since skipping it would shift every following
// child.
func Range[K any](ctx context.Context, parent Deriver[K], start uint32,
	count int, opts ...Option) ([]K, error) {

	if err := checkRange(start, count); err != nil {
		return nil, err
	}

	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}

	children := make([]K, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}

		cn := hdkeychain.NewChildNumber(start + uint32(i))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			child, err := parent.Child(cn)
			if err != nil {
				return fmt.Errorf("derive child %s: %w", cn, err)
			}
			children[i] = child
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debugf("Derived %d children starting at index %d with %d workers",
		count, start, o.workers)
	return children, nil
}

// NextValidChild derives the child of parent at start, moving on to the
// following index whenever one does not produce a usable key.  It returns the
// child along with the child number it was derived at.
//
// The search never leaves the normal or hardened range start belongs to and
// fails with ErrIndexSpaceExhausted at its end.  Any error other than
// hdkeychain.ErrTweakOutOfRange is returned as is.
func NextValidChild[K any](parent Deriver[K],
	start hdkeychain.ChildNumber) (K, hdkeychain.ChildNumber, error) {

	var zero K
	cn := start
	for {
		child, err := parent.Child(cn)
		if err == nil {
			return child, cn, nil
		}
		if !errors.Is(err, hdkeychain.ErrTweakOutOfRange) {
			return zero, cn, err
		}
		log.Warnf("Skipping unusable child index %s: %v", cn, err)

		next := cn.Index() + 1
		if next == hdkeychain.HardenedKeyStart || next == 0 {
			return zero, cn, fmt.Errorf("%w after index %s",
				ErrIndexSpaceExhausted, cn)
		}
		cn = hdkeychain.NewChildNumber(next)
	}
}
