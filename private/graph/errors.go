// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

import "errors"

// Sentinel error kinds, wrapped by Error before being returned. Callers
// should match them with errors.Is, not by comparing the returned error
// directly.
var (
	// ErrConfig marks invalid constructor arguments: bad block counts, a
	// missing auxiliary mapping, or a fudge factor not greater than 1.0.
	ErrConfig = errors.New("invalid configuration")

	// ErrCapacity marks an ingest that would exceed the node space
	// pre-sized at construction time.
	ErrCapacity = errors.New("check-block capacity exceeded")

	// ErrAlloc marks a cell-pool or array allocation failure.
	ErrAlloc = errors.New("allocation failed")
)

// invariant panics with an InvariantViolation-flavored message.
// Violating one of these means the decoder's internal state is already
// undefined, so there is nothing a returned error could do for the
// caller; asserting loudly is the only honest response.
func invariant(format string, args ...any) {
	panic(Error.New("invariant violation: "+format, args...))
}
