// Copyright 2026 The rtqueue Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	dump := flag.Bool("dump", false, "also print every version's contents after the rolling hash")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *dump); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
