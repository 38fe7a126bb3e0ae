// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chunkq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// chunk is one fixed-capacity segment of a queue.
//
// Unlike a ring buffer, cursors never wrap: write and read advance
// monotonically in [0, capacity]. A chunk fills exactly once and drains
// exactly once; a drained chunk is retired by the chain manager, never
// reused.
//
// Producers claim a write index with a capacity-bounded CAS, then publish
// the slot with a release store on its commit sequence. A consumer that
// observes a claimed-but-unpublished slot spins until the claimant's store
// lands, so no reader ever sees an advanced-but-unwritten slot.
type chunk struct {
	_        pad
	write    atomix.Uint64 // Producers claim here; monotonic in [0, capacity]
	_        pad
	read     atomix.Uint64 // Consumers claim here; read <= write always
	_        pad
	next     atomic.Pointer[chunk] // Set at most once, by the growing producer
	slots    []chunkSlot
	capacity uint64
}

type chunkSlot struct {
	seq atomix.Uint64 // 0 = empty, 1 = value committed
	val int64
	_   padShort // Pad to cache line
}

func newChunk(capacity int) *chunk {
	return &chunk{
		slots:    make([]chunkSlot, capacity),
		capacity: uint64(capacity),
	}
}

// offer stores v into the next free slot.
// Returns false only when the chunk is full; the caller must obtain a
// new chunk.
func (c *chunk) offer(v int64) bool {
	sw := spin.Wait{}
	for {
		w := c.write.LoadAcquire()
		if w == c.capacity {
			return false
		}
		if c.write.CompareAndSwapAcqRel(w, w+1) {
			s := &c.slots[w]
			s.val = v
			s.seq.StoreRelease(1)
			return true
		}
		sw.Once()
	}
}

// take removes and returns the oldest committed value.
// Returns (0, false) when the chunk is locally empty. Exactly one
// consumer wins each slot.
func (c *chunk) take() (int64, bool) {
	sw := spin.Wait{}
	for {
		r := c.read.LoadAcquire()
		w := c.write.LoadAcquire()
		if r == w {
			return 0, false
		}
		s := &c.slots[r]
		if s.seq.LoadAcquire() == 0 {
			// Claimed but not yet committed; the producer is between
			// two instructions. Wait it out.
			sw.Once()
			continue
		}
		v := s.val
		if c.read.CompareAndSwapAcqRel(r, r+1) {
			return v, true
		}
		sw.Once()
	}
}

// size is a racy snapshot of the number of takeable values.
func (c *chunk) size() int {
	w := c.write.LoadRelaxed()
	r := c.read.LoadRelaxed()
	if r >= w {
		return 0
	}
	return int(w - r)
}

// occupied is a racy snapshot of the total values ever written.
// Consumed slots still count: cursors never wrap, so a slot once written
// is capacity spent until the chunk retires.
func (c *chunk) occupied() int {
	return int(c.write.LoadRelaxed())
}
