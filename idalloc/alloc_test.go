// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idalloc_test

import (
	"fmt"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/chunkq"
	"code.hybscloud.com/chunkq/idalloc"
)

// ExampleAllocator demonstrates recycle-before-mint allocation.
func ExampleAllocator() {
	a := idalloc.New(chunkq.NewDynamic(64, 200))

	first := a.Acquire()  // minted: 0
	second := a.Acquire() // minted: 1
	a.Release(first)

	fmt.Println(first, second)
	fmt.Println(a.Acquire()) // recycled, not minted
	fmt.Println(a.Minted())

	// Output:
	// 0 1
	// 0
	// 2
}

// TestAcquireMintsSequentially mints 0,1,2,... when nothing is released.
func TestAcquireMintsSequentially(t *testing.T) {
	a := idalloc.New(chunkq.NewDynamic(4, 2))

	for want := int64(0); want < 3; want++ {
		if got := a.Acquire(); got != want {
			t.Fatalf("Acquire: got %d, want %d", got, want)
		}
	}
	if got := a.Minted(); got != 3 {
		t.Fatalf("Minted: got %d, want 3", got)
	}
}

// TestRecycleBeforeMint drains the free list before minting fresh ids.
func TestRecycleBeforeMint(t *testing.T) {
	a := idalloc.New(chunkq.NewDynamic(4, 2))

	a.Acquire() // 0
	a.Acquire() // 1
	a.Acquire() // 2

	if !a.Release(1) {
		t.Fatal("Release(1): got false, want true")
	}
	if got := a.Acquire(); got != 1 {
		t.Fatalf("Acquire after Release: got %d, want 1 (recycled)", got)
	}
	if got := a.Minted(); got != 3 {
		t.Fatalf("Minted: got %d, want 3 (recycling mints nothing)", got)
	}
}

// TestReleaseSaturation abandons ids once the free list is full.
func TestReleaseSaturation(t *testing.T) {
	a := idalloc.New(chunkq.NewFixed(2))

	if !a.Release(0) || !a.Release(1) {
		t.Fatal("Release into free space: got false, want true")
	}
	if a.Release(2) {
		t.Fatal("Release into saturated free list: got true, want false")
	}
}

// TestAllocatorValidation rejects nil free lists and negative ids.
func TestAllocatorValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(nil): expected panic")
		}
	}()
	idalloc.New(nil)
}

func TestReleaseNegativePanics(t *testing.T) {
	a := idalloc.New(chunkq.NewFixed(2))
	defer func() {
		if recover() == nil {
			t.Fatal("Release(-1): expected panic")
		}
	}()
	a.Release(-1)
}

// TestConcurrentUniqueness checks that no id is ever held by two
// goroutines at once across acquire/release churn.
func TestConcurrentUniqueness(t *testing.T) {
	if chunkq.RaceEnabled {
		t.Skip("skip: concurrent test relies on atomix memory ordering")
	}

	const (
		workers = 8
		rounds  = 2000
	)
	a := idalloc.New(chunkq.NewDynamic(16, 64))

	// Upper bound on mintable ids: every round mints at most one.
	held := make([]atomix.Int32, workers*rounds)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				id := a.Acquire()
				if id < 0 || id >= int64(len(held)) {
					t.Errorf("id out of range: %d", id)
					return
				}
				if held[id].Add(1) != 1 {
					t.Errorf("id %d held by two owners", id)
					return
				}
				held[id].Add(-1)
				a.Release(id)
			}
		}()
	}
	wg.Wait()

	if got := a.Minted(); got > workers*rounds {
		t.Fatalf("Minted: got %d, want <= %d", got, workers*rounds)
	}
}
