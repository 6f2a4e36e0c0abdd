package position_test

import (
	"testing"

	"kuroshio.dev/shogi/pkg/shogi/position"
)

func TestPerftStartPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  int64
	}{
		{1, 30},
		{2, 900},
	}

	for _, tt := range tests {
		p, err := position.ParseSFEN(position.StartSFEN)
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}

		if got := p.Perft(tt.depth); got != tt.want {
			t.Errorf("perft(%d): got %d, want %d", tt.depth, got, tt.want)
		}
	}
}
