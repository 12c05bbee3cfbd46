// Copyright 2026 The rtqueue Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build rtq_debug

// This file deliberately lives in package rtq, not rtq_test: checking I1/I2
// and counting per-operation work requires the unexported node/suspension
// layout, which the public API has no reason to expose. It only compiles
// in under the rtq_debug tag, same as checkInvariants itself.
package rtq

import (
	"math/rand"
	"testing"
)

// TestInvariantsHoldThroughRandomSequence drives a long random sequence of
// PushBack/PopFront calls against a single evolving version and checks I1
// and I2 after every single operation.
func TestInvariantsHoldThroughRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	q := Empty[int]()
	checkInvariants(q)

	size := 0
	for i := 0; i < 20000; i++ {
		if size == 0 || rng.Intn(2) == 0 {
			q = q.PushBack(i)
			size++
		} else {
			var ok bool
			q, _, ok = q.PopFront()
			if !ok {
				t.Fatalf("step %d: unexpected empty pop, size=%d", i, size)
			}
			size--
		}
		checkInvariants(q)
	}
}

// TestBoundedPerOperationWork is P6: over a long run from empty, no single
// PushBack or PopFront call ever forces more than one suspension or
// allocates more than a small constant number of nodes, independent of how
// many elements or historical versions exist.
func TestBoundedPerOperationWork(t *testing.T) {
	const (
		maxAllocsPerOp = 3
		maxForcesPerOp = 1
	)

	rng := rand.New(rand.NewSource(2))
	q := Empty[int]()
	size := 0

	for i := 0; i < 50000; i++ {
		resetOpCounters()

		if size == 0 || rng.Intn(2) == 0 {
			q = q.PushBack(i)
			size++
		} else {
			var ok bool
			q, _, ok = q.PopFront()
			if !ok {
				t.Fatalf("step %d: unexpected empty pop, size=%d", i, size)
			}
			size--
		}

		allocs, forces := opCounters()
		if allocs > maxAllocsPerOp {
			t.Fatalf("step %d: %d allocations, want <= %d", i, allocs, maxAllocsPerOp)
		}
		if forces > maxForcesPerOp {
			t.Fatalf("step %d: %d force steps, want <= %d", i, forces, maxForcesPerOp)
		}
	}
}

// TestBoundedWorkAcrossManyLiveVersions is the real-time-vs-amortised
// crux: repeatedly re-operating on an *old* version many times must cost
// the same O(1) per call as operating on the current version, instead of
// re-triggering the same expensive rebuild each time (which is what an
// amortised banker's queue would do).
func TestBoundedWorkAcrossManyLiveVersions(t *testing.T) {
	const maxForcesPerOp = 1

	q := Empty[int]()
	for i := 0; i < 64; i++ {
		q = q.PushBack(i)
	}
	for i := 0; i < 32; i++ {
		q, _, _ = q.PopFront()
	}

	// q now has a pending schedule. Operate on it repeatedly from many
	// independent "historical" references without ever advancing past it.
	for i := 0; i < 10000; i++ {
		resetOpCounters()
		old := q // independent handle to the same version every time
		_, _, ok := old.PopFront()
		if !ok {
			t.Fatalf("iteration %d: unexpected empty pop", i)
		}
		_, forces := opCounters()
		if forces > maxForcesPerOp {
			t.Fatalf("iteration %d: %d force steps operating on a historical version, want <= %d", i, forces, maxForcesPerOp)
		}
	}
}
