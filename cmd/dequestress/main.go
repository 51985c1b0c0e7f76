// Command dequestress exercises the segmented deque against a reference model
// and inspects its directory growth.
//
// Usage:
//
//	dequestress run --ops 100000 --seed 7 --chunk-size 16 --recycle
//	dequestress growth --chunk-size 4 --pushes 200 --front
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
