package board_viewer_test

import (
	"strings"
	"testing"

	"kuroshio.dev/shogi/internal/board_viewer"
	"kuroshio.dev/shogi/pkg/shogi/position"
)

func TestRenderColorContainsEscapesAndNineRows(t *testing.T) {
	p, err := position.ParseSFEN(position.StartSFEN)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	out := board_viewer.RenderColor(p)

	if !strings.Contains(out, "\x1b[") {
		t.Error("expected ANSI escape codes in colorized output")
	}
	if strings.Count(out, "\n") != 9 {
		t.Errorf("expected 9 board rows, got %d newlines", strings.Count(out, "\n"))
	}
}
