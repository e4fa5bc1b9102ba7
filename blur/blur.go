// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: original_source/CppLib/Blur.cpp (blur_region, blur_inplace)

// Package blur implements a disc-restricted box blur over a 24-bpp RGB
// buffer (spec §4.4). It is independent of the LZ77 codec and carries no
// compression semantics of its own.
package blur

import (
	"runtime"
	"sync"
)

// kernelHalfWidth is the fixed box-blur half-width: each output pixel
// averages a (2*kernelHalfWidth+1)^2 = 41x41 neighbourhood.
const kernelHalfWidth = 20

// Apply blurs every pixel of an RGB (24-bpp) pixels buffer that falls
// inside the disc of the given radius centred at (centerX, centerY),
// leaving pixels outside the disc untouched. Work is partitioned into row
// bands across min(threads, runtime.NumCPU()) goroutines; each goroutine
// reads from an immutable snapshot of the input and writes to pixels
// itself, which is what makes the row-band split safe (spec §4.4, §5).
func Apply(pixels []byte, width, height, centerX, centerY, radius, threads int) {
	if len(pixels) != width*height*3 || width <= 0 || height <= 0 || radius <= 0 {
		return
	}

	if threads < 1 {
		threads = 1
	}
	if hw := runtime.NumCPU(); threads > hw {
		threads = hw
	}

	snapshot := make([]byte, len(pixels))
	copy(snapshot, pixels)

	if threads <= 1 {
		blurRegion(snapshot, pixels, width, height, centerX, centerY, radius, 0, height)
		return
	}

	rowsPerThread := height / threads
	extra := height % threads

	var wg sync.WaitGroup
	y0 := 0
	for i := 0; i < threads; i++ {
		block := rowsPerThread
		if i < extra {
			block++
		}
		y1 := y0 + block

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			blurRegion(snapshot, pixels, width, height, centerX, centerY, radius, y0, y1)
		}(y0, y1)

		y0 = y1
	}
	wg.Wait()
}

// blurRegion blurs rows [y0, y1) of dst, reading only from src.
func blurRegion(src, dst []byte, width, height, centerX, centerY, radius, y0, y1 int) {
	xStart := max(0, centerX-radius)
	xEnd := min(width-1, centerX+radius)

	radiusSq := float64(radius) * float64(radius)

	for y := y0; y < y1; y++ {
		for x := xStart; x <= xEnd; x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			if dx*dx+dy*dy > radiusSq {
				continue
			}

			var rSum, gSum, bSum, count int

			for ky := -kernelHalfWidth; ky <= kernelHalfWidth; ky++ {
				ny := clamp(y+ky, 0, height-1)
				rowOff := ny * width * 3

				for kx := -kernelHalfWidth; kx <= kernelHalfWidth; kx++ {
					nx := clamp(x+kx, 0, width-1)
					off := rowOff + nx*3

					rSum += int(src[off])
					gSum += int(src[off+1])
					bSum += int(src[off+2])
					count++
				}
			}

			off := (y*width + x) * 3
			dst[off] = byte(rSum / count)
			dst[off+1] = byte(gSum / count)
			dst[off+2] = byte(bSum / count)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
