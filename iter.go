// Copyright 2026 The rtqueue Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtq

import "iter"

// All returns an iterator over q's elements in FIFO order. It is the
// package's "iter(Q)" convenience, derived as repeated [Queue.PopFront]
// on a handle copy, and does not mutate q — q remains usable (and
// unchanged) after, and during, iteration.
//
//	for v := range q.All() {
//	    fmt.Println(v)
//	}
func (q Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := q
		for {
			rest, v, ok := cur.PopFront()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
			cur = rest
		}
	}
}

// Collect drains a copy of q into a slice, in FIFO order. It is a small
// test/debugging convenience built on [Queue.All]; it does not mutate q.
func (q Queue[T]) Collect() []T {
	out := make([]T, 0)
	for v := range q.All() {
		out = append(out, v)
	}
	return out
}
