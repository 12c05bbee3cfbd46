// Copyright 2026 The rtqueue Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rtq

// Only two failure modes exist in this package, and neither is part of its
// public contract:
//
//   - PopFront on an empty queue: a normal, expected control-flow result,
//     reported via comma-ok (see [Queue.PopFront]), not a panic or error.
//   - Invariant violation ("imbalance"): createLazy receiving a nil second
//     argument opposite a non-nil first, or force finding a dangling
//     suspension whose c.next is nil. Both are unreachable as long as the
//     length invariant (I1) holds, which every exported operation
//     preserves by construction. If one fires, it is this package's bug,
//     not the caller's, so it panics with a diagnostic rather than
//     returning a recoverable error.
const (
	errCreateLazyImbalance = "rtq: create_lazy: imbalance"
	errForceImbalance      = "rtq: force: imbalance"
)
