// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chunkq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Dynamic is a bounded MPMC queue built from a growing chain of
// fixed-size chunks.
//
// The chain starts as a single empty chunk. A producer that finds the
// newest chunk full links a fresh one (up to maxNumChunks); a consumer
// that finds the oldest chunk drained unlinks it. Retired chunks become
// unreachable and are reclaimed by the garbage collector.
//
// Ordering is chunk-local: within one chunk, values come out in the
// order their slots were claimed. Across a chunk rollover two racing
// producers may land in different chunks than their call order suggests,
// so global FIFO is only approximate.
//
// Memory: chunkSize slots per live chunk, at most maxNumChunks chunks.
type Dynamic struct {
	_         pad
	first     atomic.Pointer[chunk] // Oldest chunk; consumers drain here
	_         pad
	last      atomic.Pointer[chunk] // Newest chunk; producers write here
	_         pad
	numChunks atomix.Int32 // Chain length, in [1, maxNumChunks]
	chunkSize int
	maxChunks int
}

// NewDynamic creates a chunked queue holding up to chunkSize*maxNumChunks
// values. Panics if either parameter is not positive.
func NewDynamic(chunkSize, maxNumChunks int) *Dynamic {
	if chunkSize < 1 {
		panic("chunkq: chunkSize must be positive")
	}
	if maxNumChunks < 1 {
		panic("chunkq: maxNumChunks must be positive")
	}

	q := &Dynamic{
		chunkSize: chunkSize,
		maxChunks: maxNumChunks,
	}
	c := newChunk(chunkSize)
	q.first.Store(c)
	q.last.Store(c)
	q.numChunks.Store(1)
	return q
}

// Offer stores v, growing the chain if the newest chunk is full.
// Returns false only when the newest chunk is full and the chain is
// already at maxNumChunks (saturated). Saturation is a backpressure
// signal, not an error; the caller falls back to its non-recycled path.
func (q *Dynamic) Offer(v int64) bool {
	sw := spin.Wait{}
	for {
		tail := q.last.Load()
		if tail.offer(v) {
			return true
		}
		if int(q.numChunks.Load()) >= q.maxChunks {
			if q.last.Load() != tail || tail.next.Load() != nil {
				// Stale tail, or a growth is mid-publication.
				sw.Once()
				continue
			}
			return false
		}
		grown := newChunk(q.chunkSize)
		if tail.next.CompareAndSwap(nil, grown) {
			// Count the chunk before publishing it as last, so a racing
			// producer can never observe the new tail under-counted and
			// grow the chain past its bound.
			q.numChunks.Add(1)
			q.last.Store(grown)
			if grown.offer(v) {
				return true
			}
			// The fresh chunk filled before our store landed.
		}
		// Either we lost the growth race or the new chunk is already
		// full; some producer extended the chain, so re-read last.
		sw.Once()
	}
}

// TakeOrDefault removes and returns the oldest available value, or def
// when the queue is empty. def must be a sentinel outside the caller's
// value domain. Fully drained chunks are retired on the way.
func (q *Dynamic) TakeOrDefault(def int64) int64 {
	for {
		head := q.first.Load()
		next := head.next.Load()
		if v, ok := head.take(); ok {
			return v
		}
		if next == nil {
			return def
		}
		// head was full before next was linked and reads empty now, so
		// it is fully drained. Retire it; the CAS winner owns the
		// chain-length decrement.
		if q.first.CompareAndSwap(head, next) {
			q.numChunks.Add(-1)
		}
	}
}

// Size is a racy estimate of the number of takeable values: the oldest
// chunk's local size, the interior chunks at full chunkSize, and the
// newest chunk's local size. Never snapshot-consistent under concurrent
// mutation; exact only at quiescence.
func (q *Dynamic) Size() int {
	size := q.first.Load().size()
	if n := int(q.numChunks.Load()); n > 1 {
		size += (n - 2) * q.chunkSize
		size += q.last.Load().size()
	}
	return size
}

// AvailableSpace is a racy estimate of how many more values Offer can
// accept. Slots consumed from a live chunk stay occupied until the chunk
// retires, so this measures offer headroom, not Cap()-Size().
func (q *Dynamic) AvailableSpace() int {
	occupied := (int(q.numChunks.Load())-1)*q.chunkSize + q.last.Load().occupied()
	return q.Cap() - occupied
}

// Clear discards the whole chain and installs a single fresh chunk.
// Unconsumed values are lost. Not safe to race against Offer or
// TakeOrDefault; the caller must quiesce traffic first.
func (q *Dynamic) Clear() {
	c := newChunk(q.chunkSize)
	q.first.Store(c)
	q.last.Store(c)
	q.numChunks.Store(1)
}

// Cap returns the total capacity, chunkSize*maxNumChunks.
func (q *Dynamic) Cap() int {
	return q.chunkSize * q.maxChunks
}
