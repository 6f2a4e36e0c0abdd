package position_test

import (
	"testing"

	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/position"
)

func mustMove(t *testing.T, p *position.Position, usi string) move.Move {
	t.Helper()
	m, err := move.NewFromUSI(usi, p.PieceOn)
	if err != nil {
		t.Fatalf("parse move %q: %v", usi, err)
	}
	return m
}

func TestSeeGEUndefendedCapture(t *testing.T) {
	p, err := position.ParseSFEN("4k4/9/9/9/4p4/4P4/9/9/4K4 b - 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m := mustMove(t, p, "5f5e")
	if !p.SeeGE(m, 0) {
		t.Error("capturing an undefended pawn should meet a zero threshold")
	}
	if !p.SeeGE(m, 50) {
		t.Error("capturing an undefended pawn should meet a below-value threshold")
	}
}

func TestSeeGEQuietMoveBelowThreshold(t *testing.T) {
	p, err := position.ParseSFEN("4k4/9/9/9/4p4/4P4/9/9/4K4 b - 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m := mustMove(t, p, "5i4i")
	if p.SeeGE(m, 1) {
		t.Error("a non-capturing move should never meet a positive material threshold")
	}
}
