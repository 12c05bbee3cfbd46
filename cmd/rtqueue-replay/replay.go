// Copyright 2026 The rtqueue Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command rtqueue-replay is a reference harness for the competitive
// programming replay format the core queue package is exercised against.
// It is a convenience over [rtq.Queue], not part of its contract: the core
// package never imports this command, and this command's own shape is not
// specified by the package — only its observable behavior against the
// documented replay format is (see package rtq's design notes).
//
// Input is one header line "n ty" followed by n operation lines:
//
//	1 v t   push t onto version v, producing a new version
//	2 v     pop the front of version v, producing a new version
//
// Versions are numbered from 0 (the initial empty queue); operation i
// produces version i+1. When ty == 1 ("adaptive"), v and t (and the pop's
// v) are XORed with the rolling hash accumulated so far, forcing a reader
// to process operations in order rather than in parallel. The program
// prints the final rolling hash (h := h*31 + popped_value, wrapping at
// 2^32) over every popped value, in pop order.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	rtq "github.com/rtqueue-go/rtqueue"
)

func parseLine(sc *bufio.Scanner) ([]uint32, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	fields := strings.Fields(sc.Text())
	out := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("rtqueue-replay: parsing %q: %w", f, err)
		}
		out[i] = uint32(v)
	}
	return out, nil
}

// run replays the operations read from r onto a growing array of queue
// versions, writes the final rolling hash to w, and — if dump is true —
// follows it with every version's contents in FIFO order.
func run(r io.Reader, w io.Writer, dump bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	header, err := parseLine(sc)
	if err != nil {
		return err
	}
	if len(header) != 2 {
		return fmt.Errorf("rtqueue-replay: header must have 2 fields, got %d", len(header))
	}
	n, ty := header[0], header[1]

	versions := make([]rtq.Queue[uint32], 1, n+1)
	versions[0] = rtq.Empty[uint32]()

	var hash uint32
	for i := uint32(0); i < n; i++ {
		action, err := parseLine(sc)
		if err != nil {
			return err
		}

		h := uint32(0)
		if ty == 1 {
			h = hash
		}

		switch {
		case len(action) == 3 && action[0] == 1:
			v := action[1] ^ h
			t := action[2] ^ h
			if int(v) >= len(versions) {
				return fmt.Errorf("rtqueue-replay: push references unknown version %d", v)
			}
			versions = append(versions, versions[v].PushBack(t))

		case len(action) == 2 && action[0] == 2:
			v := action[1] ^ h
			if int(v) >= len(versions) {
				return fmt.Errorf("rtqueue-replay: pop references unknown version %d", v)
			}
			rest, val, ok := versions[v].PopFront()
			if !ok {
				return fmt.Errorf("rtqueue-replay: pop from empty queue (version %d)", v)
			}
			versions = append(versions, rest)
			hash = hash*31 + val

		default:
			return fmt.Errorf("rtqueue-replay: malformed operation %v", action)
		}
	}

	if _, err := fmt.Fprintln(w, hash); err != nil {
		return err
	}
	if dump {
		for i, q := range versions {
			if _, err := fmt.Fprintf(w, "%d %v\n", i, q.Collect()); err != nil {
				return err
			}
		}
	}
	return nil
}
