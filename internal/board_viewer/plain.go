// Package board_viewer renders a Position to a terminal in three
// escalating fidelities: a colorized plain-text grid for a pipe-safe
// `d` companion, an interactive termbox cell grid, and a termui table
// widget, the same tiering the teacher's own debug tooling offers.
package board_viewer

import (
	"strings"

	"github.com/mitchellh/colorstring"

	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/position"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// RenderColor renders the board as a colorized grid: black pieces in
// cyan, white pieces in red, matching the sente/gote highlight colors
// the interactive viewers below also use.
func RenderColor(p *position.Position) string {
	var sb strings.Builder

	for r := square.RankA; r <= square.RankI; r++ {
		for f := square.File9; f >= square.File1; f-- {
			pc := p.PieceOn(square.New(f, r))
			sb.WriteString(colorize(pc))
		}
		sb.WriteByte('\n')
	}

	return colorstring.Color(sb.String())
}

func colorize(pc piece.Piece) string {
	glyph := pc.String()
	switch {
	case pc == piece.Empty:
		return glyph + " "
	case pc.Color() == piece.Black:
		return "[cyan]" + glyph + "[reset] "
	default:
		return "[red]" + glyph + "[reset] "
	}
}
