package cmd

import (
	"kuroshio.dev/shogi/internal/engine/context"
	"kuroshio.dev/shogi/pkg/shogi/position"
	usicmd "kuroshio.dev/shogi/pkg/usi/cmd"
)

// NewUsiNewGame builds the "usinewgame" command: the GUI is telling the
// engine the next position/go pair starts a new game.
func NewUsiNewGame(engine *context.Engine) usicmd.Command {
	return usicmd.Command{
		Name: "usinewgame",
		Run: func(usicmd.Interaction) error {
			p, err := position.ParseSFEN(position.StartSFEN)
			if err != nil {
				return err
			}
			engine.Position = p
			return nil
		},
	}
}
