// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chunkq

import "sync/atomic"

// Fixed is a bounded MPMC queue over a single fixed-size segment.
//
// Fixed never grows: once capacity values have been offered it stays
// saturated until Clear, even after takes, because segment cursors never
// wrap. It suits recycle buffers that are drained and reset in phases,
// or callers that want strictly flat memory. For steady mixed traffic
// use Dynamic, which recovers capacity by retiring drained chunks.
type Fixed struct {
	seg      atomic.Pointer[chunk] // Replaced wholesale by Clear
	capacity int
}

// NewFixed creates a single-segment queue holding up to capacity values.
// Panics if capacity is not positive.
func NewFixed(capacity int) *Fixed {
	if capacity < 1 {
		panic("chunkq: capacity must be positive")
	}
	q := &Fixed{capacity: capacity}
	q.seg.Store(newChunk(capacity))
	return q
}

// Offer stores v. Returns false when the segment is full.
func (q *Fixed) Offer(v int64) bool {
	return q.seg.Load().offer(v)
}

// TakeOrDefault removes and returns the oldest available value, or def
// when the queue is empty.
func (q *Fixed) TakeOrDefault(def int64) int64 {
	if v, ok := q.seg.Load().take(); ok {
		return v
	}
	return def
}

// Size is a racy estimate of the number of takeable values.
func (q *Fixed) Size() int {
	return q.seg.Load().size()
}

// AvailableSpace is a racy estimate of how many more values Offer can
// accept. Consumed slots stay occupied until Clear.
func (q *Fixed) AvailableSpace() int {
	return q.capacity - q.seg.Load().occupied()
}

// Clear installs a fresh empty segment, discarding unconsumed values.
// Not safe to race against Offer or TakeOrDefault.
func (q *Fixed) Clear() {
	q.seg.Store(newChunk(q.capacity))
}

// Cap returns the queue capacity.
func (q *Fixed) Cap() int {
	return q.capacity
}
