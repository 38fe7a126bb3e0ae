// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chunkq

// Options configures queue creation.
type Options struct {
	chunkSize    int
	maxNumChunks int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Flat 256-slot recycle buffer
//	q := chunkq.New(256).Build()
//
//	// Growing chain: 64-slot chunks, at most 200 chunks
//	q := chunkq.New(64).MaxChunks(200).Build()
type Builder struct {
	opts Options
}

// New creates a queue builder with the given chunk size.
// Panics if chunkSize is not positive.
func New(chunkSize int) *Builder {
	if chunkSize < 1 {
		panic("chunkq: chunkSize must be positive")
	}
	return &Builder{opts: Options{chunkSize: chunkSize, maxNumChunks: 1}}
}

// MaxChunks bounds the chain length. The default is 1, which selects the
// single-segment implementation. Panics if n is not positive.
func (b *Builder) MaxChunks(n int) *Builder {
	if n < 1 {
		panic("chunkq: maxNumChunks must be positive")
	}
	b.opts.maxNumChunks = n
	return b
}

// Build creates a Queue.
//
// Selection:
//
//	MaxChunks == 1 → Fixed (single segment, no growth)
//	MaxChunks >= 2 → Dynamic (growing chunk chain)
func (b *Builder) Build() Queue {
	if b.opts.maxNumChunks == 1 {
		return NewFixed(b.opts.chunkSize)
	}
	return NewDynamic(b.opts.chunkSize, b.opts.maxNumChunks)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
