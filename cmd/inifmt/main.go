// Command inifmt formats, checks, queries and edits INI files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "inifmt: %v\n", err)
		os.Exit(1)
	}
}
