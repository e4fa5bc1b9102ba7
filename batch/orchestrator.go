// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (package-level entry-point shape);
// phase contract grounded on spec §4.6 and §5.

package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pxlz77/pxlz77/codec"
	"github.com/pxlz77/pxlz77/container"
	"github.com/pxlz77/pxlz77/imgio"
)

const containerExt = ".lz77"

// StartCompression enumerates sourceDir for accepted raster extensions,
// compresses each into a .lz77 container under outputDir, and returns the
// Phase-2 wall-clock duration (spec §4.6, §6).
func StartCompression(ctx context.Context, sourceDir, outputDir string, backend codec.Backend, numThreads int, progress ProgressFunc, log Logger) (time.Duration, error) {
	tasks, err := preloadCompress(sourceDir, outputDir, log)
	if err != nil {
		return 0, err
	}

	elapsed := runMeasuredPhase(tasks, numThreads, true, backend)

	postWriteCompress(tasks, log, progress)

	return elapsed, ctx.Err()
}

// StartDecompression enumerates sourceDir for .lz77 containers, decodes
// each back into a .bmp bitmap under outputDir, and returns the Phase-2
// wall-clock duration.
func StartDecompression(ctx context.Context, sourceDir, outputDir string, backend codec.Backend, numThreads int, progress ProgressFunc, log Logger) (time.Duration, error) {
	tasks, err := preloadDecompress(sourceDir, outputDir, log)
	if err != nil {
		return 0, err
	}

	elapsed := runMeasuredPhase(tasks, numThreads, false, backend)

	postWriteDecompress(tasks, log, progress)

	return elapsed, ctx.Err()
}

// preloadCompress is Phase 1 for compression: enumerate, decode, and
// pre-size every task's buffers (spec §4.6 Phase 1).
func preloadCompress(sourceDir, outputDir string, log Logger) ([]*Task, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("batch: read source dir: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: create output dir: %w", err)
	}

	var tasks []*Task
	for _, entry := range entries {
		if entry.IsDir() || !imgio.HasAcceptedExtension(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(sourceDir, entry.Name())
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		task := &Task{
			SourcePath: srcPath,
			OutputPath: filepath.Join(outputDir, stem+containerExt),
			State:      StatePending,
		}

		w, h, pixels, loadErr := imgio.LoadPixels(srcPath)
		if loadErr != nil {
			task.Err = fmt.Errorf("%w: %v", ErrImageLoadFailed, loadErr)
			log.Logf("preload failed for %s: %v", srcPath, task.Err)
			tasks = append(tasks, task)
			continue
		}

		task.Width, task.Height = w, h
		task.InputPixels = pixels
		task.OutTokens = make([]byte, len(pixels)*codec.TokenSize+64)
		task.Work = codec.NewWork()
		task.LoadOk = true
		task.State = StateLoaded

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// preloadDecompress is Phase 1 for decompression: read each container's
// header and payload fully into memory, then pre-size the reconstructed
// pixel buffer.
func preloadDecompress(sourceDir, outputDir string, log Logger) ([]*Task, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("batch: read source dir: %w", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: create output dir: %w", err)
	}

	var tasks []*Task
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != containerExt {
			continue
		}

		srcPath := filepath.Join(sourceDir, entry.Name())
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		task := &Task{
			SourcePath: srcPath,
			OutputPath: filepath.Join(outputDir, stem+".bmp"),
			State:      StatePending,
		}

		f, openErr := os.Open(srcPath)
		if openErr != nil {
			task.Err = fmt.Errorf("%w: %v", ErrImageLoadFailed, openErr)
			log.Logf("preload failed for %s: %v", srcPath, task.Err)
			tasks = append(tasks, task)
			continue
		}
		header, payload, readErr := container.Read(f)
		f.Close()
		if readErr != nil {
			task.Err = fmt.Errorf("%w: %v", ErrImageLoadFailed, readErr)
			log.Logf("preload failed for %s: %v", srcPath, task.Err)
			tasks = append(tasks, task)
			continue
		}

		task.Width, task.Height = int(header.Width), int(header.Height)
		task.InputTokens = payload
		task.OutPixels = make([]codec.Pixel, task.Width*task.Height)
		task.LoadOk = true
		task.State = StateLoaded

		tasks = append(tasks, task)
	}

	return tasks, nil
}

// runMeasuredPhase is Phase 2: a fixed-size pool of goroutines claims task
// indices via an atomic counter and runs the codec on each claimed task's
// pre-allocated buffers. It performs no I/O, logging, or allocation (spec
// §4.6 Phase 2, §5).
func runMeasuredPhase(tasks []*Task, numThreads int, compressing bool, backend codec.Backend) time.Duration {
	workers := numThreads
	if workers < 1 {
		workers = 1
	}

	var next atomic.Int64
	var wg sync.WaitGroup

	start := time.Now()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := next.Add(1) - 1
				if idx >= int64(len(tasks)) {
					return
				}
				runTask(tasks[idx], compressing, backend)
			}
		}()
	}
	wg.Wait()

	return time.Since(start)
}

// runTask executes one task's codec call, containing any panic as a
// ComputeException (spec §7).
func runTask(task *Task, compressing bool, backend codec.Backend) {
	if !task.LoadOk {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			task.Err = fmt.Errorf("%w: %v", ErrComputeException, r)
			task.State = StateException
			task.OutLen = 0
		}
	}()

	var n int
	var err error
	if compressing {
		n, err = backend.Compress(task.InputPixels, task.OutTokens, task.Work)
	} else {
		n, err = backend.Decompress(task.InputTokens, task.OutPixels)
	}

	task.OutLen = n
	if err != nil {
		task.Err = err
		task.State = StateException
		return
	}
	if n == 0 {
		task.State = StateEmpty
		return
	}
	task.State = StateComputed
}

// postWriteCompress is Phase 3 for compression: write each task's
// container in original order, logging and reporting progress as it goes
// (spec §4.6 Phase 3).
func postWriteCompress(tasks []*Task, log Logger, progress ProgressFunc) {
	total := len(tasks)
	for i, task := range tasks {
		switch {
		case !task.LoadOk:
			task.State = StateSkipped
			log.Logf("skipped %s: %v", task.SourcePath, task.Err)

		case task.State == StateException:
			task.State = StateSkipped
			log.Logf("skipped %s: %v", task.SourcePath, task.Err)

		default:
			header := container.Header{
				Width:   uint32(task.Width),
				Height:  uint32(task.Height),
				Payload: uint64(task.OutLen),
			}
			if err := writeContainer(task.OutputPath, header, task.OutTokens[:task.OutLen]); err != nil {
				task.State = StateSkipped
				task.Err = err
				log.Logf("write failed for %s: %v", task.OutputPath, err)
			} else {
				task.State = StateWritten
				log.Logf("compressed %s -> %s (%d bytes)", task.SourcePath, task.OutputPath, task.OutLen)
			}
		}

		reportProgress(progress, i+1, total)
	}

	log.Logf("compression batch complete: %d/%d written", countWritten(tasks), total)
	if progress != nil {
		progress(100)
	}
}

// postWriteDecompress is Phase 3 for decompression.
func postWriteDecompress(tasks []*Task, log Logger, progress ProgressFunc) {
	total := len(tasks)
	for i, task := range tasks {
		switch {
		case !task.LoadOk:
			task.State = StateSkipped
			log.Logf("skipped %s: %v", task.SourcePath, task.Err)

		case task.State == StateException:
			task.State = StateSkipped
			log.Logf("skipped %s: %v", task.SourcePath, task.Err)

		case task.OutLen != task.Width*task.Height:
			task.State = StateSkipped
			task.Err = ErrPixelCountMismatch
			log.Logf("skipped %s: %v (got %d, want %d)", task.SourcePath, task.Err, task.OutLen, task.Width*task.Height)

		default:
			if err := imgio.SavePixelsAsBitmap(task.OutputPath, task.Width, task.Height, task.OutPixels[:task.OutLen]); err != nil {
				task.State = StateSkipped
				task.Err = err
				log.Logf("write failed for %s: %v", task.OutputPath, err)
			} else {
				task.State = StateWritten
				log.Logf("decompressed %s -> %s", task.SourcePath, task.OutputPath)
			}
		}

		reportProgress(progress, i+1, total)
	}

	log.Logf("decompression batch complete: %d/%d written", countWritten(tasks), total)
	if progress != nil {
		progress(100)
	}
}

func writeContainer(path string, header container.Header, payload []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	if err := container.Write(f, header, payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func reportProgress(progress ProgressFunc, completed, total int) {
	if progress == nil || total == 0 {
		return
	}
	progress(completed * 100 / total)
}

func countWritten(tasks []*Task) int {
	n := 0
	for _, t := range tasks {
		if t.State == StateWritten {
			n++
		}
	}
	return n
}
