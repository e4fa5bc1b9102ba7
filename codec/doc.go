// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (doc.go)

/*
Package codec implements a domain-specialised LZ77 variant whose
literal/match unit is a 32-bit RGBA pixel rather than a byte. It defines a
fixed 12-byte token (offset, length, next), a hash-chained matcher over a
4096-pixel sliding window, and an overlap-aware copy engine for decoding.

Two interchangeable implementations are provided through the Backend
interface, ScalarBackend and VectorBackend. Both run the identical greedy
parse and are required to produce byte-identical output for any input;
VectorBackend simply compares and copies pixels in blocks of four where the
scalar backend does so one at a time.

# Compress

	n, err := backend.Compress(pixels, dst, work)

work is the pre-allocated, task-owned working memory returned by NewWork
(272 KiB: a 65536-entry hash head table plus a 4096-entry chain). If work
is nil, Compress falls back to emitting one literal token per pixel.

# Decompress

	n, err := backend.Decompress(tokens, dst)
*/
package codec
