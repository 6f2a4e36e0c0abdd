package board_viewer

import (
	"github.com/nsf/termbox-go"

	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/position"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// RunTermbox draws the board as a raw termbox cell grid and blocks
// until 'q' or Esc is pressed.
func RunTermbox(p *position.Position) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	draw(p)

loop:
	for {
		switch ev := termbox.PollEvent(); {
		case ev.Type == termbox.EventKey && (ev.Key == termbox.KeyEsc || ev.Ch == 'q'):
			break loop
		case ev.Type == termbox.EventResize:
			draw(p)
		}
	}

	return nil
}

func draw(p *position.Position) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for r := square.RankA; r <= square.RankI; r++ {
		for f := square.File9; f >= square.File1; f-- {
			pc := p.PieceOn(square.New(f, r))
			x := 2 * int(square.File9-f)
			y := int(r)

			fg := termbox.ColorDefault
			switch {
			case pc == piece.Empty:
			case pc.Color() == piece.Black:
				fg = termbox.ColorCyan
			default:
				fg = termbox.ColorRed
			}

			glyph := pc.String()
			for i, ch := range glyph {
				termbox.SetCell(x+i, y, ch, fg, termbox.ColorDefault)
			}
		}
	}

	termbox.Flush()
}
