// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (errors.go)

package codec

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrOutputTooSmall is returned when dst cannot hold even one token.
	ErrOutputTooSmall = errors.New("codec: output buffer too small")
	// ErrCorruptStream is returned when the token stream violates the
	// offset/length invariants or would read/write out of bounds.
	ErrCorruptStream = errors.New("codec: corrupt token stream")
)
