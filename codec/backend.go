// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package codec

// Backend is one of the codec's interchangeable implementations, selected
// by the batch orchestrator (spec §6, use_asm). Any two Backends MUST
// produce byte-identical Compress output for the same input, and MUST
// decompress any stream the other produced.
type Backend interface {
	// Name identifies the backend for logging and CLI selection.
	Name() string
	// Compress writes src's token stream to dst and returns the number of
	// bytes written. work may be nil, which selects the literal fallback
	// mode described in spec §4.2.
	Compress(src []Pixel, dst []byte, work *Work) (int, error)
	// Decompress reconstructs pixels from a token stream into dst and
	// returns the number of pixels written.
	Decompress(src []byte, dst []Pixel) (int, error)
}

// ScalarBackend compares and copies one pixel at a time throughout. It is
// the reference implementation: simplest to read, and the one every test
// in this package is written against first.
type ScalarBackend struct{}

func (ScalarBackend) Name() string { return "scalar" }

func (ScalarBackend) Compress(src []Pixel, dst []byte, work *Work) (int, error) {
	return compress(src, dst, work, scalarExtend)
}

func (ScalarBackend) Decompress(src []byte, dst []Pixel) (int, error) {
	return decompress(src, dst, scalarCopy)
}

// VectorBackend extends matches and copies runs in blocks of 4 pixels
// where it safely can (spec §4.2 "Comparison policy", §4.3 "Overlap-safe
// copy"). It exists purely for throughput; its output is defined to be
// identical to ScalarBackend's.
type VectorBackend struct{}

func (VectorBackend) Name() string { return "vector" }

func (VectorBackend) Compress(src []Pixel, dst []byte, work *Work) (int, error) {
	return compress(src, dst, work, vectorExtend)
}

func (VectorBackend) Decompress(src []byte, dst []Pixel) (int, error) {
	return decompress(src, dst, vectorCopy)
}

// Backends lists both built-in backends, useful for equivalence tests and
// CLI enumeration.
var Backends = map[string]Backend{
	"scalar": ScalarBackend{},
	"vector": VectorBackend{},
}
