// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (errors.go conventions)

// Package batch implements the three-phase batch orchestrator: enumerate,
// pre-load, measured parallel compute, and serial post-write (spec §4.6).
package batch

import (
	"github.com/pxlz77/pxlz77/codec"
)

// TaskState is a task's position in the state machine spec §4.6 defines:
// PENDING -> LOADED -> (COMPUTED | EXCEPTION | EMPTY) -> (WRITTEN | SKIPPED).
type TaskState int

const (
	StatePending TaskState = iota
	StateLoaded
	StateComputed
	StateException
	StateEmpty
	StateWritten
	StateSkipped
)

func (s TaskState) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateLoaded:
		return "LOADED"
	case StateComputed:
		return "COMPUTED"
	case StateException:
		return "EXCEPTION"
	case StateEmpty:
		return "EMPTY"
	case StateWritten:
		return "WRITTEN"
	case StateSkipped:
		return "SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// Task owns every buffer consumed and produced by one codec invocation. It
// is created in Phase 1 and lives until Phase 3 completes; nothing on the
// hot path of Phase 2 allocates any of these buffers (spec §3
// "Lifecycles", §4.6).
type Task struct {
	// SourcePath is the input file this task was built from.
	SourcePath string
	// OutputPath is where Phase 3 will write this task's result.
	OutputPath string

	// Width and Height are the image's pixel dimensions (for compress:
	// decoded from the raster; for decompress: read from the container
	// header once it has been parsed).
	Width, Height int

	// InputPixels holds decoded pixels for a compress task.
	InputPixels []codec.Pixel
	// InputTokens holds the raw container payload for a decompress task.
	InputTokens []byte

	// OutTokens is the pre-sized destination for a compress task's token
	// stream (pixel_count*12 + 64 bytes, per spec §4.6 Phase 1).
	OutTokens []byte
	// OutPixels is the pre-sized, zero-filled destination for a
	// decompress task's reconstructed pixels (pixel_count pixels).
	OutPixels []codec.Pixel

	// Work is the compressor's private 272 KiB working-table region. Only
	// compress tasks need one.
	Work *codec.Work

	// LoadOk records whether Phase 1 successfully produced usable input
	// buffers for this task. A false value means Phase 2 skips the task
	// entirely.
	LoadOk bool

	// OutLen is the number of bytes (compress) or pixels (decompress)
	// Phase 2 actually produced.
	OutLen int
	// Err records any error raised while computing this task, including a
	// recovered panic (spec §7, ComputeException).
	Err error

	State TaskState
}
