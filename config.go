// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package onlinecode

import "github.com/rateless/onlinecode/private/codec"

// Config is the shared configuration an Encoder and the matching
// Decoder must agree on out of band before either one is constructed.
// Mblocks, Ablocks, Q, and Epsilon size the code the same way
// graph.New and codec.New do; BlockSize fixes the payload length every
// message, auxiliary, and check block carries.
type Config struct {
	// Mblocks is the number of source message blocks the encoder splits
	// its input into.
	Mblocks int
	// Ablocks is the number of auxiliary blocks.
	Ablocks int
	// Q is the number of auxiliary blocks each message block belongs to.
	Q int
	// Epsilon is the check-block degree distribution's tail parameter.
	Epsilon float64
	// Fudge inflates the decoder's pre-allocated check-block node space
	// beyond the expected count; it must be greater than 1.0.
	Fudge float64
	// BlockSize is the fixed payload length, in bytes, of every block.
	BlockSize int
}

func (c Config) codecParams() codec.Params {
	return codec.Params{
		Mblocks: c.Mblocks,
		Ablocks: c.Ablocks,
		Q:       c.Q,
		Epsilon: c.Epsilon,
	}
}
