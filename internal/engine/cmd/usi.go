package cmd

import (
	"kuroshio.dev/shogi/internal/build"
	"kuroshio.dev/shogi/internal/engine/context"
	usicmd "kuroshio.dev/shogi/pkg/usi/cmd"
)

// NewUsi builds the "usi" command: the first command a GUI sends, asking
// the engine to identify itself and declare its options.
func NewUsi(engine *context.Engine) usicmd.Command {
	return usicmd.Command{
		Name: "usi",
		Run: func(interaction usicmd.Interaction) error {
			interaction.Replyf("id name Shogi %s", build.Version)
			interaction.Reply("id author kuroshio")
			interaction.Reply(engine.OptionSchema.String())
			interaction.Reply("usiok")
			return nil
		},
	}
}
