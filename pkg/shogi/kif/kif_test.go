package kif_test

import (
	"strings"
	"testing"

	"kuroshio.dev/shogi/pkg/shogi/kif"
)

const fixture = `Event: Friendly
Sente: Alice
Gote: Bob
Result: Sente wins

1. 7g7f
2. 3c3d
3. 8h2b+
`

func TestReadParsesTagsAndMoves(t *testing.T) {
	games, err := kif.Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("got %d games, want 1", len(games))
	}

	g := games[0]
	if g.Tag("Sente") != "Alice" {
		t.Errorf("got Sente=%q, want Alice", g.Tag("Sente"))
	}
	want := []string{"7g7f", "3c3d", "8h2b+"}
	if len(g.Moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(g.Moves), len(want))
	}
	for i, m := range want {
		if g.Moves[i] != m {
			t.Errorf("move %d: got %q, want %q", i, g.Moves[i], m)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	games, err := kif.Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	var sb strings.Builder
	if err := kif.Write(&sb, games); err != nil {
		t.Fatalf("write error: %v", err)
	}

	roundTripped, err := kif.Read(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("re-read error: %v", err)
	}
	if len(roundTripped) != 1 || len(roundTripped[0].Moves) != 3 {
		t.Fatalf("round trip lost data: %+v", roundTripped)
	}
}
