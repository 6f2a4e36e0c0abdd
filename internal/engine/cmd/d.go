package cmd

import (
	"errors"

	"kuroshio.dev/shogi/internal/board_viewer"
	"kuroshio.dev/shogi/internal/engine/context"
	"kuroshio.dev/shogi/pkg/shogi/position"
	usicmd "kuroshio.dev/shogi/pkg/usi/cmd"
	"kuroshio.dev/shogi/pkg/usi/flag"
)

// NewD builds the custom "d" command, which prints the current position
// as ascii art along with its SFEN string and repetition/entering-king
// status. Passing the "ui" flag additionally prints a colorized grid
// via internal/board_viewer, for terminals that support ANSI color.
func NewD(engine *context.Engine) usicmd.Command {
	schema := flag.NewSchema()
	schema.Button("ui")

	return usicmd.Command{
		Name: "d",
		Run: func(interaction usicmd.Interaction) error {
			if engine.Position == nil {
				return errors.New("d: no position set")
			}

			p := engine.Position
			interaction.Reply(p.String())
			interaction.Replyf("Sfen: %s", p.SFEN())
			interaction.Replyf("Key: %016x", uint64(p.Key()))

			if rep := p.IsRepetition(); rep != position.RepetitionNone {
				interaction.Replyf("Repetition: %v", rep)
			}
			if p.IsEnteringKingWin() {
				interaction.Reply("Entering king: declaration available")
			}

			if interaction.Values["ui"].Set {
				interaction.Reply(board_viewer.RenderColor(p))
			}

			return nil
		},
		Flags: schema,
	}
}
