// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (compress.go, compress_1x_fast.go)

package codec

// compress runs the greedy hash-chain LZ77 parse described in spec §4.2.
// It is shared by both backends; extend is the only thing that differs
// between them.
//
// Degenerate modes (spec §4.2):
//   - len(src) == 0: writes 0 bytes, returns 0.
//   - work == nil: fallback literal mode, one token per pixel.
//   - dst cannot hold even one token: ErrOutputTooSmall.
func compress(src []Pixel, dst []byte, work *Work, extend extendFunc) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	if len(dst) < TokenSize {
		return 0, ErrOutputTooSmall
	}

	if work == nil {
		return compressLiteralFallback(src, dst)
	}
	work.reset()

	out := 0
	i := 0

	for i < len(src) {
		remaining := len(src) - i

		// The last pixel has no right neighbour to hash against, so it is
		// always emitted as a literal (spec §4.2 step 1).
		if remaining == 1 {
			if len(dst)-out < TokenSize {
				return 0, ErrOutputTooSmall
			}
			putToken(dst[out:], Token{Next: src[i]})
			out += TokenSize
			i++
			continue
		}

		maxMatch := remaining - 1
		if maxMatch > maxMatchLen {
			maxMatch = maxMatchLen
		}

		h := hash(src[i], src[i+1])

		dictStart := uint32(0)
		if i >= windowSize {
			dictStart = uint32(i - windowSize)
		}

		bestLen, bestOff := findBestMatch(src, i, h, dictStart, maxMatch, work, extend)

		if len(dst)-out < TokenSize {
			return 0, ErrOutputTooSmall
		}

		var tok Token
		if bestLen > 0 {
			tok = Token{Offset: bestOff, Length: uint32(bestLen), Next: src[i+bestLen]}
		} else {
			tok = Token{Next: src[i]}
		}
		putToken(dst[out:], tok)
		out += TokenSize

		// Hash-update range [i, i+bestLen]: insert every position whose
		// right neighbour still exists, so later matches can reach back
		// into the run and the match (spec §4.2 step 7).
		for k := 0; k <= bestLen; k++ {
			pos := i + k
			if pos+1 >= len(src) {
				break
			}
			hk := hash(src[pos], src[pos+1])
			work.insert(hk, uint32(pos))
		}

		i += bestLen + 1
	}

	return out, nil
}

// compressLiteralFallback emits one literal token per pixel. The stream is
// still legal; it simply achieves no compression (spec §4.2, "fallback
// literal mode").
func compressLiteralFallback(src []Pixel, dst []byte) (int, error) {
	out := 0
	for _, p := range src {
		if len(dst)-out < TokenSize {
			return 0, ErrOutputTooSmall
		}
		putToken(dst[out:], Token{Next: p})
		out += TokenSize
	}
	return out, nil
}
