// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chunkq

// Queue is the interface shared by the chunked queue implementations.
//
// All operations are non-blocking and resolve in a bounded number of
// steps. Routine outcomes are communicated through return values: Offer
// reports saturation with false, TakeOrDefault reports emptiness with
// the caller's sentinel. Neither condition is an error; both occur
// during normal operation.
//
// Size and AvailableSpace are racy estimates. Lock-free structures
// cannot produce consistent counts without cross-core synchronization,
// so treat both as hints while traffic is in flight and as exact values
// only once mutation has ceased.
//
// Example (identifier recycling):
//
//	q := chunkq.NewDynamic(64, 200)
//
//	// Thread freeing an id
//	if !q.Offer(id) {
//	    // Saturated; the id is simply not recycled.
//	}
//
//	// Thread seeking a reusable id before minting a new one
//	if id := q.TakeOrDefault(-1); id != -1 {
//	    reuse(id)
//	}
type Queue interface {
	// Offer adds v to the queue (non-blocking).
	// Returns true once v is stored; false when the queue is saturated.
	// Safe for multiple concurrent producers.
	Offer(v int64) bool

	// TakeOrDefault removes and returns the oldest available value
	// (non-blocking), or def when the queue is empty. def must lie
	// outside the valid value domain; zero and negative values may be
	// legitimate payload, so emptiness cannot be signaled in-band.
	// Safe for multiple concurrent consumers.
	TakeOrDefault(def int64) int64

	// Size estimates the number of takeable values. Racy under
	// concurrent mutation.
	Size() int

	// AvailableSpace estimates how many more values Offer can accept.
	// Racy under concurrent mutation.
	AvailableSpace() int

	// Clear discards all values and restores full capacity.
	// The caller must ensure no Offer or TakeOrDefault is in flight.
	Clear()

	// Cap returns the total capacity.
	Cap() int
}
