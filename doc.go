// Copyright 2026 The rtqueue Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rtq provides a fully persistent FIFO queue with worst-case
// constant-time operations per observed version.
//
// "Fully persistent" means every update returns a new logical queue and
// leaves every previously observed queue unchanged and still usable. Any
// historical version remains a first-class queue supporting the same
// operations at the same cost, no matter how many times it is reused.
//
// # Why not the amortised banker's queue
//
// A textbook banker's queue gives O(1) *amortised* operations by lazily
// reversing the rear list into the front stream only when the front runs
// dry, and relying on memoisation to make sure that expensive reversal is
// only ever paid for once. That argument depends on each suspension being
// forced at most once across the lifetime of the program. Under full
// persistence it is not: an old version can be operated on again and
// again, forcing the same expensive reversal repeatedly and collapsing the
// amortised bound back to linear.
//
// This package instead implements the real-time queue of Okasaki and
// Hood–Melville: the rear-to-front reversal is sliced into constant-size
// increments ("forcing a suspension") that every ordinary operation pays
// down by exactly one step, via a schedule pointer threaded through the
// queue handle. No single call ever does more than a bounded amount of
// work, regardless of how many live versions share the underlying nodes.
//
// # Quick start
//
//	q := rtq.Empty[int]()
//	q = q.PushBack(1)
//	q = q.PushBack(2)
//
//	for v := range q.All() {
//	    fmt.Println(v) // 1, 2
//	}
//
// # Persistence in practice
//
// Every PushBack and PopFront returns a brand new handle. The receiver is
// never mutated from the caller's point of view — branching from the same
// version produces independent queues:
//
//	a := rtq.Empty[int]().PushBack(1).PushBack(2)
//	b := a.PushBack(3).PushBack(4)
//	c := a.PushBack(5).PushBack(6)
//
//	// a, b, and c are all independently usable:
//	//   a -> [1 2]
//	//   b -> [1 2 3 4]
//	//   c -> [1 2 5 6]
//
// # Element type
//
// The queue duplicates element values during rebuilds (a small, bounded
// number of times per element across its lifetime in the structure), so T
// should be cheap to copy — a small struct, a pointer, or an integer. Wrap
// expensive payloads behind a shared handle (e.g. a pointer or an interface
// backed by one) before storing them.
//
// # Thread safety
//
// rtq.Queue[T] is not safe for concurrent use by multiple goroutines on
// the same version: PopFront and PushBack memoise forced suspensions into
// shared node fields without synchronisation. Versions derived from one
// another (e.g. a and a derivative of a) share nodes, and an operation on
// either one can force a suspension on a node the other also reaches, so
// such versions must not be used from different goroutines at the same
// time without external synchronisation either.
//
// # Errors
//
// PopFront on an empty queue is ordinary control flow, not a failure: it
// reports itself with Go's comma-ok idiom rather than an error value (see
// [Queue.PopFront]). The two internal consistency checks named in the
// design notes (an imbalanced lazy merge, a dangling suspension) are
// unreachable given the package's own invariants; if one of them ever
// fires, it panics with a diagnostic rather than returning an error,
// because it signals a bug in this package rather than a caller mistake.
package rtq
