// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (table-driven test style)

package batch

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/pxlz77/pxlz77/codec"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Logf(format string, args ...any) {
	r.lines = append(r.lines, format)
}

func writePNG(t *testing.T, path string, w, h int, seed byte) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: byte(x + int(seed)),
				G: byte(y + int(seed)),
				B: seed,
				A: 255,
			})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// TestCompressThenDecompressDirectory covers spec §8 scenario 7: a
// directory batch round-trips to pixel-identical bitmaps and the progress
// callback fires exactly N+1 times in non-decreasing order.
func TestCompressThenDecompressDirectory(t *testing.T) {
	srcDir := t.TempDir()
	compressedDir := t.TempDir()
	decompressedDir := t.TempDir()

	const n = 5
	for i := 0; i < n; i++ {
		writePNG(t, filepath.Join(srcDir, imageName(i)), 5, 4, byte(i*7))
	}
	// A non-accepted file must be silently ignored.
	os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("ignore me"), 0o644)

	var percents []int
	progress := func(p int) { percents = append(percents, p) }
	log := &recordingLogger{}

	for _, backend := range []codec.Backend{codec.ScalarBackend{}, codec.VectorBackend{}} {
		percents = nil
		elapsed, err := StartCompression(context.Background(), srcDir, compressedDir, backend, 3, progress, log)
		if err != nil {
			t.Fatalf("StartCompression: %v", err)
		}
		if elapsed < 0 {
			t.Fatalf("negative elapsed time")
		}
		if len(percents) != n+1 {
			t.Fatalf("progress called %d times, want %d", len(percents), n+1)
		}
		assertNonDecreasing(t, percents)
		if percents[len(percents)-1] != 100 {
			t.Fatalf("final progress = %d, want 100", percents[len(percents)-1])
		}

		entries, err := os.ReadDir(compressedDir)
		if err != nil {
			t.Fatalf("read compressed dir: %v", err)
		}
		if len(entries) != n {
			t.Fatalf("got %d .lz77 files, want %d", len(entries), n)
		}

		percents = nil
		if _, err := StartDecompression(context.Background(), compressedDir, decompressedDir, backend, 3, progress, log); err != nil {
			t.Fatalf("StartDecompression: %v", err)
		}
		if len(percents) != n+1 {
			t.Fatalf("decompress progress called %d times, want %d", len(percents), n+1)
		}

		for i := 0; i < n; i++ {
			orig := filepath.Join(srcDir, imageName(i))
			stem := imageName(i)
			stem = stem[:len(stem)-len(filepath.Ext(stem))]
			got := filepath.Join(decompressedDir, stem+".bmp")

			wantW, wantH, wantPixels := decodePNG(t, orig)
			gotW, gotH, gotPixels := decodeBMP(t, got)

			if wantW != gotW || wantH != gotH {
				t.Fatalf("%s: dims %dx%d, want %dx%d", got, gotW, gotH, wantW, wantH)
			}
			for i := range wantPixels {
				if wantPixels[i] != gotPixels[i] {
					t.Fatalf("%s: pixel %d mismatch: got %#x want %#x", got, i, gotPixels[i], wantPixels[i])
				}
			}
		}
	}
}

func imageName(i int) string {
	return string(rune('a'+i)) + ".png"
}

func assertNonDecreasing(t *testing.T, xs []int) {
	t.Helper()
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			t.Fatalf("progress sequence decreased: %v", xs)
		}
	}
}

func decodePNG(t *testing.T, path string) (w, h int, pixels []uint32) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return packRGBA(img)
}

func decodeBMP(t *testing.T, path string) (w, h int, pixels []uint32) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return packRGBA(img)
}

func packRGBA(img image.Image) (w, h int, pixels []uint32) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	pixels = make([]uint32, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			pixels = append(pixels, uint32(byte(r>>8))|uint32(byte(g>>8))<<8|uint32(byte(bl>>8))<<16|uint32(byte(a>>8))<<24)
		}
	}
	return
}

// TestBackendsProduceIdenticalContainers covers spec §8 scenario 7's
// "both back-ends ... produce identical .lz77 files" clause.
func TestBackendsProduceIdenticalContainers(t *testing.T) {
	srcDir := t.TempDir()
	writePNG(t, filepath.Join(srcDir, "x.png"), 8, 6, 3)

	scalarDir := t.TempDir()
	vectorDir := t.TempDir()

	if _, err := StartCompression(context.Background(), srcDir, scalarDir, codec.ScalarBackend{}, 2, nil, NopLogger{}); err != nil {
		t.Fatalf("scalar compress: %v", err)
	}
	if _, err := StartCompression(context.Background(), srcDir, vectorDir, codec.VectorBackend{}, 2, nil, NopLogger{}); err != nil {
		t.Fatalf("vector compress: %v", err)
	}

	scalarBytes, err := os.ReadFile(filepath.Join(scalarDir, "x.lz77"))
	if err != nil {
		t.Fatalf("read scalar output: %v", err)
	}
	vectorBytes, err := os.ReadFile(filepath.Join(vectorDir, "x.lz77"))
	if err != nil {
		t.Fatalf("read vector output: %v", err)
	}
	if len(scalarBytes) != len(vectorBytes) {
		t.Fatalf("length differs: scalar=%d vector=%d", len(scalarBytes), len(vectorBytes))
	}
	for i := range scalarBytes {
		if scalarBytes[i] != vectorBytes[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

// TestUnloadableSourceIsSkippedNotFatal covers spec §7's ImageLoadFailed
// handling: a corrupt input does not abort the batch.
func TestUnloadableSourceIsSkippedNotFatal(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()

	writePNG(t, filepath.Join(srcDir, "good.png"), 4, 4, 1)
	os.WriteFile(filepath.Join(srcDir, "bad.png"), []byte("not a real png"), 0o644)

	log := &recordingLogger{}
	_, err := StartCompression(context.Background(), srcDir, outDir, codec.ScalarBackend{}, 2, nil, log)
	if err != nil {
		t.Fatalf("StartCompression: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "good.lz77")); err != nil {
		t.Fatalf("expected good.lz77 to be written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "bad.lz77")); err == nil {
		t.Fatalf("bad.lz77 should not have been written")
	}
}
