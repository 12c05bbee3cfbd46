// Copyright 2026 The rtqueue Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !rtq_debug

package rtq

// DebugEnabled is false when the package is built without the rtq_debug
// build tag (the default). checkInvariants compiles away to nothing, same
// as the invariant walk is too expensive to run on every operation of a
// production build.
const DebugEnabled = false

func debugOnAlloc() {}
func debugOnForce() {}
func resetOpCounters() {}
func opCounters() (allocs, forces int) { return 0, 0 }

func checkInvariants[T any](Queue[T]) {}
