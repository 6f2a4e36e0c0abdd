package position_test

import (
	"testing"

	"kuroshio.dev/shogi/pkg/shogi/position"
)

func TestIsRepetitionNoneBelowWindow(t *testing.T) {
	p, err := position.ParseSFEN(position.StartSFEN)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if got := p.IsRepetition(); got != position.RepetitionNone {
		t.Errorf("fresh position: got %v, want RepetitionNone", got)
	}
}

func TestIsRepetitionDrawViaNullMoves(t *testing.T) {
	p, err := position.ParseSFEN(position.StartSFEN)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	for i := 0; i < 4; i++ {
		p.DoNullMove()
	}

	if got := p.IsRepetition(); got != position.RepetitionDraw {
		t.Errorf("got %v, want RepetitionDraw", got)
	}
}
