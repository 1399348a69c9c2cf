// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package onlinecode

import "errors"

// ErrConfig marks a Config or source payload that doesn't satisfy an
// Encoder's or Decoder's preconditions.
var ErrConfig = errors.New("invalid configuration")
