// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package idalloc provides a lock-free identifier allocator backed by a
// chunkq free list.
//
// Freed ids are offered to the free list; Acquire drains the free list
// before minting fresh ids from a monotonic counter. Recycling is
// best-effort: when the free list is saturated a released id is simply
// abandoned, which wastes id space but never blocks or fails the caller.
//
// Example:
//
//	a := idalloc.New(chunkq.NewDynamic(64, 200))
//
//	id := a.Acquire()
//	// ... use id ...
//	a.Release(id)
package idalloc

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/chunkq"
)

// NoID is the sentinel for "no identifier". It lies outside the valid id
// domain: every allocated id is non-negative.
const NoID int64 = -1

// Allocator hands out non-negative int64 identifiers, recycling released
// ids through a free list before minting new ones.
//
// Safe for concurrent use by multiple goroutines.
type Allocator struct {
	free chunkq.Queue
	next atomix.Int64 // Next fresh id to mint
}

// New creates an Allocator recycling through the given free list.
// Panics if free is nil.
func New(free chunkq.Queue) *Allocator {
	if free == nil {
		panic("idalloc: free list must not be nil")
	}
	return &Allocator{free: free}
}

// Acquire returns a reusable id from the free list, or mints a fresh one
// when nothing is available to recycle. Never blocks.
func (a *Allocator) Acquire() int64 {
	if id := a.free.TakeOrDefault(NoID); id != NoID {
		return id
	}
	return a.next.Add(1) - 1
}

// Release returns id to the free list for future Acquire calls.
// Returns false when the free list is saturated; the id is then
// abandoned. Panics if id is negative, since negative values collide
// with the NoID sentinel.
func (a *Allocator) Release(id int64) bool {
	if id < 0 {
		panic("idalloc: id must be non-negative")
	}
	return a.free.Offer(id)
}

// Minted returns the number of fresh ids minted so far. Recycled ids do
// not count. Racy while Acquire calls are in flight.
func (a *Allocator) Minted() int64 {
	return a.next.Load()
}
