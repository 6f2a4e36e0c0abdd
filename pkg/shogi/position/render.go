package position

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// boardString renders the board as a 9x9 grid with hands below it. Piece
// glyphs are padded with go-runewidth so that the board stays aligned
// even when a future renderer swaps in full-width CJK kanji glyphs,
// which occupy two terminal columns instead of one.
func boardString(p *Position) string {
	var sb strings.Builder

	for r := square.RankA; r <= square.RankI; r++ {
		for f := square.File9; f >= square.File1; f-- {
			pc := p.PieceOn(square.New(f, r))
			sb.WriteString(runewidth.FillRight(pc.String(), 2))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("Black hand: " + p.Hand(piece.Black).String(piece.Black) + "\n")
	sb.WriteString("White hand: " + p.Hand(piece.White).String(piece.White) + "\n")

	return sb.String()
}
