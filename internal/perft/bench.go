package perft

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"kuroshio.dev/shogi/pkg/shogi/csa"
	"kuroshio.dev/shogi/pkg/shogi/position"
)

// Result is a single suite case's outcome: the total leaf count at the
// case's depth, and the per-root-move breakdown keyed by CSA move
// string so it prints stably without depending on move.Move's memory
// layout.
type Result struct {
	Case  Case
	Nodes int64
	Moves map[string]int64
}

// Bench walks every case in the suite, printing a progress bar to
// standard output as it goes.
func Bench(cases []Case) ([]Result, error) {
	bar := progressbar.NewOptions(
		len(cases),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("case"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		p, err := position.ParseSFEN(c.Sfen)
		if err != nil {
			return nil, fmt.Errorf("perft: case %s: %w", c.Name, err)
		}

		divide := p.PerftDivide(c.Depth)

		var nodes int64
		moves := make(map[string]int64, len(divide))
		for m, n := range divide {
			s, err := csa.Encode(m)
			if err != nil {
				s = m.String()
			}
			moves[s] = n
			nodes += n
		}

		results = append(results, Result{Case: c, Nodes: nodes, Moves: moves})
		_ = bar.Add(1)
	}
	_ = bar.Close()

	return results, nil
}

// Print writes a short human-readable summary of bench results.
func Print(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%-16s depth=%d nodes=%d\n", r.Case.Name, r.Case.Depth, r.Nodes)
	}
}
