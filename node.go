// Copyright 2026 The rtqueue Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtq

// node is one cell of the singly-linked stream shared by every queue
// version that reaches it. next and susp are interior-mutable, but only in
// one disciplined way: force may rewrite them exactly once, from a Dirty
// suspension naming pending rebuild work to a Clean suspension plus a
// materialised next link. That rewrite is a memoisation of a pure function
// of fields fixed when the node was created, so it is invisible to every
// observer holding a reference to the node.
type node[T any] struct {
	value T
	next  *node[T]
	susp  *suspension[T]
}

// suspension records a not-yet-materialised tail as a Dirty merge step. A
// nil *suspension on a node means Clean: next is already final. c is the
// not-yet-reversed remainder of the rear list being merged in; d is the
// reversed-so-far accumulator (possibly nil).
type suspension[T any] struct {
	c *node[T]
	d *node[T]
}

// createLazy constructs the unforced merge representing x ++ reverse(y).
//
// If x is nil the merge is just y. Otherwise y must be non-nil: x and y
// are kept in lockstep by the queue's length invariant (I1), so x non-nil
// with y nil can only mean that invariant has been broken by a bug.
func createLazy[T any](x, y *node[T]) *node[T] {
	if x == nil {
		return y
	}
	if y == nil {
		panic(errCreateLazyImbalance)
	}
	debugOnAlloc()
	return &node[T]{
		value: x.value,
		next:  x.next, // placeholder, overwritten once this node's suspension is forced
		susp:  &suspension[T]{c: y},
	}
}

// force advances n's suspension by exactly one step of rebuild work: the
// head of c is moved onto the accumulator d, the front node after n is
// copied to carry the rest of the merge, and the result is memoised into
// n.next. Forcing a Clean node is a no-op, and
// forcing the same Dirty node twice is only ever observed once, since the
// first call already clears the suspension.
//
// force allocates at most two nodes and touches a fixed number of fields,
// regardless of how much of the merge remains — that bound is what makes
// every public operation real-time rather than merely amortised.
func force[T any](n *node[T]) {
	s := n.susp
	if s == nil {
		return
	}
	n.susp = nil
	debugOnForce()

	c := s.c
	d := s.d

	debugOnAlloc()
	inner := &node[T]{value: c.value, next: d}

	cNext := c.next
	if cNext == nil {
		panic(errForceImbalance)
	}

	debugOnAlloc()
	if m := n.next; m != nil {
		n.next = &node[T]{
			value: m.value,
			next:  m.next,
			susp:  &suspension[T]{c: cNext, d: inner},
		}
	} else {
		n.next = &node[T]{value: cNext.value, next: inner}
	}
}
