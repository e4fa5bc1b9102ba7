// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package codec

import "encoding/binary"

// Pixel is the codec's atomic symbol: a 32-bit value compared by full
// integer equality. Channel layout is opaque to the codec; the surrounding
// pipeline (package imgio) interprets it as RGBA.
type Pixel = uint32

// Fixed parameters of the pixel LZ77 format (spec §3, §4.1).
const (
	// TokenSize is the fixed on-wire size of one token: three little-endian
	// uint32 fields (offset, length, next) with no padding.
	TokenSize = 12

	// windowSize is the sliding window width in pixels.
	windowSize = 4096
	// hashSize is the number of distinct hash buckets (2^16).
	hashSize = 1 << 16
	// hashMask masks a hash value into [0, hashSize).
	hashMask = hashSize - 1
	// maxMatchLen is the longest match a single token can encode.
	maxMatchLen = 64
	// maxCandidates bounds how many hash-chain positions are probed per call.
	maxCandidates = 32
	// sentinelPos marks an empty head[] slot.
	sentinelPos = 0xFFFFFFFF

	// WorkSize is the required size, in bytes, of the compressor's working
	// tables: head[65536]*4 + prev[4096]*4.
	WorkSize = hashSize*4 + windowSize*4
)

// Token is one literal/match record. Offset == 0 and Length == 0 together
// mean "literal"; otherwise it is a match of Length pixels starting Offset
// pixels back from the current output position, followed by Next.
type Token struct {
	Offset uint32
	Length uint32
	Next   Pixel
}

// IsLiteral reports whether t encodes a single literal pixel (t.Next).
func (t Token) IsLiteral() bool {
	return t.Offset == 0 && t.Length == 0
}

// putToken writes t into dst[0:TokenSize] in little-endian byte order.
// dst must have at least TokenSize bytes.
func putToken(dst []byte, t Token) {
	binary.LittleEndian.PutUint32(dst[0:4], t.Offset)
	binary.LittleEndian.PutUint32(dst[4:8], t.Length)
	binary.LittleEndian.PutUint32(dst[8:12], t.Next)
}

// getToken reads one token from src[0:TokenSize]. src must have at least
// TokenSize bytes.
func getToken(src []byte) Token {
	return Token{
		Offset: binary.LittleEndian.Uint32(src[0:4]),
		Length: binary.LittleEndian.Uint32(src[4:8]),
		Next:   binary.LittleEndian.Uint32(src[8:12]),
	}
}

// rotl32 rotates v left by n bits (n in [0, 32)).
func rotl32(v uint32, n uint) uint32 {
	return (v << n) | (v >> (32 - n))
}

// hash combines two adjacent pixels into a 16-bit dictionary key. The
// second pixel's bits are rotated left 5 before being XORed with the
// first, giving better selectivity than hashing a single pixel.
func hash(p0, p1 Pixel) uint32 {
	return (p0 ^ rotl32(p1, 5)) & hashMask
}
