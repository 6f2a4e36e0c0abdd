package position_test

import (
	"testing"

	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/position"
)

func legalMoves(t *testing.T, p *position.Position) []move.Move {
	t.Helper()
	var buf [position.MaxMoves]position.ExtMove
	ext := p.GenerateMoves(position.Legal, buf[:0])
	moves := make([]move.Move, len(ext))
	for i, em := range ext {
		moves[i] = em.Move
	}
	return moves
}

func containsMove(moves []move.Move, usi string) bool {
	for _, m := range moves {
		if m.USI() == usi {
			return true
		}
	}
	return false
}

func TestLegalMoveCountStartPosition(t *testing.T) {
	p, err := position.ParseSFEN(position.StartSFEN)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	moves := legalMoves(t, p)
	if len(moves) != 30 {
		t.Errorf("wrong legal move count: got %d, want 30", len(moves))
	}
}

func TestBishopDropRoundTrip(t *testing.T) {
	p, err := position.ParseSFEN("4k4/9/9/9/9/9/9/9/4K4 b Bb 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	mBlack, err := move.NewFromUSI("B*5g", p.PieceOn)
	if err != nil {
		t.Fatalf("parse move: %v", err)
	}
	if !p.PseudoLegal(mBlack, false) || !p.IsLegal(mBlack) {
		t.Fatalf("B*5g should be legal")
	}
	p.DoMove(mBlack, p.GivesCheck(mBlack))

	mWhite, err := move.NewFromUSI("B*5c", p.PieceOn)
	if err != nil {
		t.Fatalf("parse move: %v", err)
	}
	if !p.PseudoLegal(mWhite, false) || !p.IsLegal(mWhite) {
		t.Fatalf("B*5c should be legal")
	}
	p.DoMove(mWhite, p.GivesCheck(mWhite))

	got := p.SFEN()
	want := "4k4/9/4b4/9/9/9/4B4/9/4K4 b - 3"
	if got != want {
		t.Errorf("wrong position after both drops\nwant %s\ngot  %s", want, got)
	}

	p.UndoMove(mWhite)
	p.UndoMove(mBlack)
	if p.SFEN() != "4k4/9/9/9/9/9/9/9/4K4 b Bb 1" {
		t.Errorf("undo did not restore original position, got %s", p.SFEN())
	}
}

func TestDropPawnMateNeverGenerated(t *testing.T) {
	p, err := position.ParseSFEN("kl7/1n7/K8/9/9/9/9/9/9 b P 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	moves := legalMoves(t, p)
	if containsMove(moves, "P*9b") {
		t.Errorf("P*9b is an illegal drop-pawn-mate and must not be generated")
	}
}

func TestMateIn1SimpleGoldDrop(t *testing.T) {
	p, err := position.ParseSFEN("8k/9/8P/9/9/9/9/9/8K b G 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m := p.MateIn1()
	if m == move.Null {
		t.Fatal("expected a mating move, got none")
	}
	if got := m.USI(); got != "G*1b" {
		t.Errorf("wrong mating move: got %s, want G*1b", got)
	}
}

func TestMateIn1WithPinnedDefender(t *testing.T) {
	p, err := position.ParseSFEN("6Rbk/9/8P/9/9/9/9/9/8K b G 1")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m := p.MateIn1()
	if m == move.Null {
		t.Fatal("expected a mating move, got none")
	}
	if got := m.USI(); got != "G*1b" {
		t.Errorf("wrong mating move: got %s, want G*1b (rook pins the bishop)", got)
	}
}
