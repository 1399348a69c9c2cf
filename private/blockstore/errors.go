// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package blockstore

import "errors"

var (
	// ErrConfig marks a payload that doesn't match the store's block size.
	ErrConfig = errors.New("invalid configuration")

	// ErrMissing marks a Combine call that named a node with no stored
	// payload, typically a caller passing ids that were never fed
	// through Put (a check id XORList didn't actually reference, or
	// that was decommissioned from the graph before its payload was
	// recorded here).
	ErrMissing = errors.New("no stored payload for node")
)
