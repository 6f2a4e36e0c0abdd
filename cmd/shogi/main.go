// Command shogi is a small demo binary that prints the starting
// position's board diagram and a depth-2 perft count, independent of the
// USI REPL built by the root main.go. Passing -termui or -termbox opens
// an interactive full-screen viewer instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"kuroshio.dev/shogi/internal/board_viewer"
	"kuroshio.dev/shogi/pkg/shogi/position"
)

func main() {
	termui := flag.Bool("termui", false, "open an interactive termui board viewer")
	termbox := flag.Bool("termbox", false, "open an interactive termbox board viewer")
	sfen := flag.String("sfen", position.StartSFEN, "sfen of the position to display")
	flag.Parse()

	p, err := position.ParseSFEN(*sfen)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	switch {
	case *termui:
		err = board_viewer.RunTermui(p)
	case *termbox:
		err = board_viewer.RunTermbox(p)
	default:
		fmt.Println(p)
		fmt.Println("perft(2):", p.Perft(2))
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
