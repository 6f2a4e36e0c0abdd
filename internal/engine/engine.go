// Package engine wires a Shogi position to the USI command set.
package engine

import (
	"kuroshio.dev/shogi/internal/engine/cmd"
	"kuroshio.dev/shogi/internal/engine/context"
	"kuroshio.dev/shogi/internal/engine/options"
	"kuroshio.dev/shogi/pkg/shogi/position"
	"kuroshio.dev/shogi/pkg/usi"
	"kuroshio.dev/shogi/pkg/usi/option"
)

// NewClient builds a ready-to-run usi.Client wired to a fresh starting
// position and this engine's command set.
func NewClient() (usi.Client, error) {
	client := usi.NewClient()

	p, err := position.ParseSFEN(position.StartSFEN)
	if err != nil {
		return client, err
	}

	engine := &context.Engine{
		Client:       client,
		Position:     p,
		OptionSchema: option.NewSchema(),
	}

	engine.OptionSchema.AddOption("Hash", options.NewHash(engine))
	engine.OptionSchema.AddOption("Threads", options.NewThreads(engine))
	if err := engine.OptionSchema.SetDefaults(); err != nil {
		return client, err
	}

	client.AddCommand(cmd.NewUsi(engine))
	client.AddCommand(cmd.NewUsiNewGame(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewD(engine))

	return client, nil
}
