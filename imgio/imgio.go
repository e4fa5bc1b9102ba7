// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

// Package imgio implements the raster-format boundary spec.md treats as an
// external black box: LoadPixels decodes any of the accepted image
// extensions into a flat RGBA pixel buffer; SavePixelsAsBitmap re-encodes
// such a buffer as a 24-bit BMP (spec §1, §6).
package imgio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // self-registers with image.Decode
	_ "image/jpeg" // self-registers with image.Decode
	_ "image/png"  // self-registers with image.Decode
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/pxlz77/pxlz77/codec"
)

// Extensions lists the raster formats accepted as compression input
// (case-insensitive), per spec §6.
var Extensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true,
	".bmp": true, ".tiff": true, ".tif": true, ".gif": true,
}

// HasAcceptedExtension reports whether path's lowercased extension is one
// of Extensions.
func HasAcceptedExtension(path string) bool {
	return Extensions[strings.ToLower(filepath.Ext(path))]
}

// LoadPixels decodes the image at path and packs it into a flat RGBA pixel
// buffer: byte 0 is R, byte 1 is G, byte 2 is B, byte 3 is A, packed into
// one codec.Pixel per spec §3 ("surrounding pipeline uses a 4-byte
// ARGB / RGBA interpretation").
func LoadPixels(path string) (width, height int, pixels []codec.Pixel, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("imgio: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("imgio: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0, 0, nil, fmt.Errorf("imgio: %s has zero dimension", path)
	}

	pixels = make([]codec.Pixel, width*height)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			c := color.RGBA{R: byte(r >> 8), G: byte(g >> 8), B: byte(b >> 8), A: byte(a >> 8)}
			pixels[i] = uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
			i++
		}
	}

	return width, height, pixels, nil
}

// SavePixelsAsBitmap writes pixels (width x height, packed as in
// LoadPixels) to path as a 24-bit BMP. Decompressed output is always
// written as BMP regardless of the original source format (spec §6,
// "Output naming").
func SavePixelsAsBitmap(path string, width, height int, pixels []codec.Pixel) error {
	if len(pixels) != width*height {
		return fmt.Errorf("imgio: pixel count %d does not match %dx%d", len(pixels), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[i]
			img.SetRGBA(x, y, color.RGBA{
				R: byte(p),
				G: byte(p >> 8),
				B: byte(p >> 16),
				A: byte(p >> 24),
			})
			i++
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imgio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("imgio: encode %s: %w", path, err)
	}
	return w.Flush()
}

func init() {
	// golang.org/x/image/bmp and .../tiff, unlike the standard library's
	// image codecs, do not self-register; wire them into image.Decode's
	// sniffed-header dispatch explicitly.
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("tiff", "II*\x00", tiff.Decode, tiff.DecodeConfig)
	image.RegisterFormat("tiff", "MM\x00*", tiff.Decode, tiff.DecodeConfig)
}
