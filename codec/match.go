// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (match.go)

package codec

// extendFunc compares src[i:] against src[candidate:] and returns how many
// leading pixels are equal, capped at maxMatch. Scalar and vector backends
// differ only in how this comparison is carried out; the result (and thus
// the emitted token stream) must be identical either way, since both stop
// at the first differing pixel.
type extendFunc func(src []Pixel, i, candidate, maxMatch int) int

// findBestMatch walks the hash chain for position i (already hashed into
// h) and returns the longest match found, preferring the most recently
// seen candidate on length ties (spec §4.2 step 5: "ties broken by first
// encountered, i.e. most recent position").
func findBestMatch(src []Pixel, i int, h uint32, dictStart uint32, maxMatch int, work *Work, extend extendFunc) (bestLen int, bestOff uint32) {
	candidate := work.head[h]
	left := maxCandidates

	for candidate != sentinelPos && candidate >= dictStart && left > 0 {
		curLen := extend(src, i, int(candidate), maxMatch)
		if curLen > bestLen {
			bestLen = curLen
			bestOff = uint32(i) - candidate
		}

		candidate = work.prev[candidate%windowSize]
		left--
	}

	return bestLen, bestOff
}

// scalarExtend compares pixels one at a time.
func scalarExtend(src []Pixel, i, candidate, maxMatch int) int {
	n := 0
	for n < maxMatch && src[i+n] == src[candidate+n] {
		n++
	}
	return n
}

// vectorExtend compares pixels in blocks of four (the Go equivalent of the
// SSE2 pcmpeqd/pmovmskb block used by the original assembly routine),
// falling back to scalar comparison for the remainder (spec §4.2
// "Comparison policy").
func vectorExtend(src []Pixel, i, candidate, maxMatch int) int {
	n := 0
	for n+4 <= maxMatch &&
		src[i+n] == src[candidate+n] &&
		src[i+n+1] == src[candidate+n+1] &&
		src[i+n+2] == src[candidate+n+2] &&
		src[i+n+3] == src[candidate+n+3] {
		n += 4
	}
	for n < maxMatch && src[i+n] == src[candidate+n] {
		n++
	}
	return n
}
