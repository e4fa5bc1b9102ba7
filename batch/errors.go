// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package batch

import "errors"

// ErrImageLoadFailed marks a task whose raster decode failed or whose
// dimensions were zero (spec §7), and also a decompress task whose container
// could not be opened or read. It never aborts the batch; the task is
// simply marked !LoadOk and skipped in Phase 3.
var ErrImageLoadFailed = errors.New("batch: image load failed")

// ErrComputeException marks a task whose codec call panicked. The panic is
// recovered per task and never escapes the worker (spec §7,
// ComputeException).
var ErrComputeException = errors.New("batch: codec panicked")

// ErrPixelCountMismatch marks a decompress task whose decoded pixel count
// did not match the container's declared width*height (spec §4.6 Phase 3,
// "verifies outLen == pixel_count before writing").
var ErrPixelCountMismatch = errors.New("batch: decoded pixel count does not match container dimensions")
