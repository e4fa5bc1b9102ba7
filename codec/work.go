// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (sliding_window_pool.go)

package codec

// Work holds the compressor's per-call working memory: a hash-chain head
// table and a ring of "previous position" links, both threaded through the
// sliding window (spec §3, "Match-finder working tables"). Never share a
// Work value across concurrent Compress calls — the batch orchestrator
// gives every task its own Work, allocated once in the pre-load phase and
// reused (but never shared) for the lifetime of that task.
type Work struct {
	head [hashSize]uint32
	prev [windowSize]uint32
}

// NewWork allocates a new, ready-to-use Work region. This is the codec's
// only heap allocation; callers must perform it outside any measured
// compute window (spec §4.6 Phase 1, "pre-sized ... working-table
// buffer").
func NewWork() *Work {
	w := &Work{}
	w.reset()
	return w
}

// reset reinitialises head to the sentinel. prev does not need
// initialisation: every slot is overwritten before it is ever read.
func (w *Work) reset() {
	for i := range w.head {
		w.head[i] = sentinelPos
	}
}

// insert records position pos (with hash h) at the head of its chain.
func (w *Work) insert(h uint32, pos uint32) {
	slot := pos % windowSize
	w.prev[slot] = w.head[h]
	w.head[h] = pos
}
