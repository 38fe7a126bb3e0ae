// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chunkq provides bounded lock-free queues of int64 tokens built
// from fixed-size array segments ("chunks").
//
// The package was built for identifier recycling inside storage engines:
// threads freeing entity ids offer them, threads allocating ids take one
// before minting a fresh value. Both sides are multi-way concurrent and
// nothing ever blocks.
//
// # Quick Start
//
// Direct constructors:
//
//	q := chunkq.NewDynamic(64, 200) // 64-slot chunks, at most 200 chunks
//	q := chunkq.NewFixed(1024)      // one flat 1024-slot segment
//
// Builder API selects the implementation from the chain bound:
//
//	q := chunkq.New(64).MaxChunks(200).Build() // → Dynamic
//	q := chunkq.New(1024).Build()              // → Fixed
//
// # Basic Usage
//
// Both implementations share the [Queue] interface:
//
//	// Offer (non-blocking)
//	if !q.Offer(id) {
//	    // Queue saturated - the value is not stored
//	}
//
//	// Take (non-blocking), with a sentinel outside the value domain
//	const noID = -1
//	if id := q.TakeOrDefault(noID); id != noID {
//	    // Got a recycled value
//	}
//
// Saturation and emptiness are routine outcomes reported through return
// values, never through errors: a full queue means "mint a fresh id
// instead", an empty queue means "nothing to recycle right now".
//
// # Dynamic vs Fixed
//
// [Dynamic] chains chunks together. Producers grow the chain lazily, one
// chunk at a time, up to maxNumChunks; consumers retire fully drained
// chunks from the front, handing them to the garbage collector and
// recovering their capacity. Total capacity is chunkSize*maxNumChunks.
//
// [Fixed] is a single segment with no growth. Segment cursors advance
// monotonically and never wrap, so consumed slots stay spent until
// [Queue.Clear]; use it for phase-drained recycle buffers.
//
// # Ordering
//
// Within one chunk, values come out in slot-claim order. Across a chunk
// rollover, two racing producers may land in different chunks than their
// call order suggests, and a fast consumer can observe the later value
// first. Global FIFO is therefore approximate; the intended clients only
// need eventual recycling, not total order.
//
// # Counting
//
// Size and AvailableSpace are racy estimates. Accurate counts in
// lock-free structures require cross-core synchronization that would
// defeat the point; both are exact only once mutation has ceased. Note
// that AvailableSpace measures offer headroom: slots consumed from a
// live chunk stay occupied until the chunk retires.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established through atomix acquire/release orderings on separate
// variables and reports false positives on these algorithms. Concurrent
// tests consult [RaceEnabled] and skip under the detector.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering and [code.hybscloud.com/spin] for CPU
// pause instructions in retry loops.
package chunkq
