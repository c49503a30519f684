// Command tourbench solves small Euclidean TSP instances exactly or
// greedily and writes the resulting tour next to the input file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tourbench:", err)
		os.Exit(1)
	}
}
