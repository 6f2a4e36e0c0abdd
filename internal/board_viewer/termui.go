package board_viewer

import (
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"kuroshio.dev/shogi/pkg/shogi/piece"
	"kuroshio.dev/shogi/pkg/shogi/position"
	"kuroshio.dev/shogi/pkg/shogi/square"
)

// RunTermui draws the board as a termui table widget alongside both
// hands, and blocks until 'q' or Ctrl-C is pressed.
func RunTermui(p *position.Position) error {
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	table := widgets.NewTable()
	table.Title = "Position"
	table.Rows = boardRows(p)
	table.SetRect(0, 0, 30, 13)
	table.RowSeparator = false

	hands := widgets.NewParagraph()
	hands.Title = "Hands"
	hands.Text = "Black: " + p.Hand(piece.Black).String(piece.Black) +
		"\nWhite: " + p.Hand(piece.White).String(piece.White)
	hands.SetRect(0, 13, 30, 17)

	ui.Render(table, hands)

	for e := range ui.PollEvents() {
		if e.ID == "q" || e.ID == "<C-c>" {
			break
		}
	}

	return nil
}

func boardRows(p *position.Position) [][]string {
	rows := make([][]string, 0, square.NRank)
	for r := square.RankA; r <= square.RankI; r++ {
		row := make([]string, 0, square.NFile)
		for f := square.File9; f >= square.File1; f-- {
			row = append(row, p.PieceOn(square.New(f, r)).String())
		}
		rows = append(rows, row)
	}
	return rows
}
