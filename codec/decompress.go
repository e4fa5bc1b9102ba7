// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (decompress.go)

package codec

// copyFunc copies length pixels from dst[outPos-offset:] forward into
// dst[outPos:]. Both backends implement this the same way for offset < 4
// (scalar, since source and destination genuinely overlap from the first
// pixel) and differ only for offset >= 4, where vectorCopy moves 4-pixel
// blocks at a time.
type copyFunc func(dst []Pixel, outPos int, offset, length uint32)

// decompress runs the token-driven reconstruction described in spec §4.3.
// It stops cleanly when fewer than TokenSize bytes remain; every complete
// token is consumed.
func decompress(src []byte, dst []Pixel, doCopy copyFunc) (int, error) {
	outPos := 0
	pos := 0

	for len(src)-pos >= TokenSize {
		tok := getToken(src[pos:])
		pos += TokenSize

		if tok.IsLiteral() {
			if outPos >= len(dst) {
				return 0, ErrCorruptStream
			}
			dst[outPos] = tok.Next
			outPos++
			continue
		}

		if tok.Offset == 0 {
			// Length > 0 with Offset == 0 is not a valid literal or match.
			return 0, ErrCorruptStream
		}
		if tok.Offset > uint32(outPos) {
			return 0, ErrCorruptStream
		}
		need := int(tok.Length) + 1
		if outPos+need > len(dst) {
			return 0, ErrCorruptStream
		}

		doCopy(dst, outPos, tok.Offset, tok.Length)
		outPos += int(tok.Length)

		dst[outPos] = tok.Next
		outPos++
	}

	return outPos, nil
}

// scalarCopy always copies pixel-by-pixel. This is correct regardless of
// offset, including the offset < length overlap case: by the time pixel k
// is read from dst[outPos-offset+k], that slot has already been written
// (either part of the original history, or by an earlier iteration of this
// same loop), which is exactly the run-length repetition spec §4.3 calls
// for.
func scalarCopy(dst []Pixel, outPos int, offset, length uint32) {
	srcStart := outPos - int(offset)
	for k := uint32(0); k < length; k++ {
		dst[outPos+int(k)] = dst[srcStart+int(k)]
	}
}

// vectorCopy copies in blocks of 4 pixels when offset >= 4 (distance >= 16
// bytes, so the first block cannot read unwritten data), falling back to
// scalarCopy's pixel-by-pixel semantics otherwise. Later blocks may
// legitimately re-read pixels written earlier in this same call; that is
// the intended run-length behaviour (spec §4.3).
func vectorCopy(dst []Pixel, outPos int, offset, length uint32) {
	if offset < 4 {
		scalarCopy(dst, outPos, offset, length)
		return
	}

	srcStart := outPos - int(offset)
	k := uint32(0)
	for k+4 <= length {
		dst[outPos+int(k)] = dst[srcStart+int(k)]
		dst[outPos+int(k)+1] = dst[srcStart+int(k)+1]
		dst[outPos+int(k)+2] = dst[srcStart+int(k)+2]
		dst[outPos+int(k)+3] = dst[srcStart+int(k)+3]
		k += 4
	}
	for ; k < length; k++ {
		dst[outPos+int(k)] = dst[srcStart+int(k)]
	}
}
