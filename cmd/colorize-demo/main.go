package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/colorize/pkg/colorize"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorize.Red(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
