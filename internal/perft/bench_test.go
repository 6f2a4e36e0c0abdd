package perft_test

import (
	"testing"

	"kuroshio.dev/shogi/internal/perft"
)

func TestBenchBreakdownSumsToTotal(t *testing.T) {
	results, err := perft.Bench(perft.Suite)
	if err != nil {
		t.Fatalf("bench error: %v", err)
	}

	if len(results) != len(perft.Suite) {
		t.Fatalf("got %d results, want %d", len(results), len(perft.Suite))
	}

	for _, r := range results {
		var sum int64
		for _, n := range r.Moves {
			sum += n
		}
		if sum != r.Nodes {
			t.Errorf("case %s: per-move breakdown sums to %d, want %d", r.Case.Name, sum, r.Nodes)
		}
	}
}
