// Command perft runs the standard move-generation suite and writes a
// node-count report alongside an HTML chart of the results.
package main

import (
	"fmt"
	"os"

	"kuroshio.dev/shogi/internal/perft"
)

func main() {
	fmt.Printf("perft: running suite of %d cases\n", len(perft.Suite))

	results, err := perft.Bench(perft.Suite)
	if err != nil {
		fmt.Printf("error running suite: %v\n", err)
		os.Exit(1)
	}

	perft.Print(os.Stdout, results)

	reportFile, err := os.Create("perft-report.html")
	if err != nil {
		fmt.Printf("error creating report file: %v\n", err)
		os.Exit(1)
	}
	defer reportFile.Close()

	if err := perft.Report(reportFile, results); err != nil {
		fmt.Printf("error rendering report: %v\n", err)
		os.Exit(1)
	}
}
