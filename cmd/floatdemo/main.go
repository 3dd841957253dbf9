// Command floatdemo runs a terminal form built from floating-label fields.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/floatlabel/cmd/floatdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
