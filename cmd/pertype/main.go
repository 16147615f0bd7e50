// Command pertype validates and decodes documents against descriptor
// schemas from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pertype:", err)
		os.Exit(1)
	}
}
