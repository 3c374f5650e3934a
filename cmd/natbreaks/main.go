// Command natbreaks computes class breaks for numeric data.
//
//	natbreaks jenks --sample -k 3
//	natbreaks quantile -k 7 --file data.txt
//	natbreaks equal -k 4 10 20 30 40 50
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/classbreaks/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cli.Version = version
	cli.GitCommit = commit

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
