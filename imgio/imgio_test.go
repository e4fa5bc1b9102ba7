// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package imgio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: byte(x * 10), G: byte(y * 10), B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoadPixelsThenSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.png")
	writeTestPNG(t, src, 6, 4)

	w, h, pixels, err := LoadPixels(src)
	if err != nil {
		t.Fatalf("LoadPixels: %v", err)
	}
	if w != 6 || h != 4 {
		t.Fatalf("got %dx%d, want 6x4", w, h)
	}
	if len(pixels) != 24 {
		t.Fatalf("got %d pixels, want 24", len(pixels))
	}

	out := filepath.Join(dir, "a.bmp")
	if err := SavePixelsAsBitmap(out, w, h, pixels); err != nil {
		t.Fatalf("SavePixelsAsBitmap: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	decoded, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode written bmp: %v", err)
	}
	if decoded.Bounds().Dx() != w || decoded.Bounds().Dy() != h {
		t.Fatalf("decoded bounds %v, want %dx%d", decoded.Bounds(), w, h)
	}
}

func TestHasAcceptedExtension(t *testing.T) {
	cases := map[string]bool{
		"a.PNG": true, "a.jpg": true, "a.JPEG": true,
		"a.bmp": true, "a.tiff": true, "a.tif": true, "a.gif": true,
		"a.txt": false, "a": false,
	}
	for name, want := range cases {
		if got := HasAcceptedExtension(name); got != want {
			t.Fatalf("%s: got %v want %v", name, got, want)
		}
	}
}
