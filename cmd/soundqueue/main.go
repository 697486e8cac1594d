// Command soundqueue is a small demo shell around the queue engine: it
// loads configuration, optionally seeds a song catalog, and launches an
// interactive terminal view of the queue.
package main

import (
	"fmt"
	"os"

	"github.com/rina-voss/soundqueue/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
