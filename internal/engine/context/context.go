// Package context holds the engine state shared across USI commands.
package context

import (
	"kuroshio.dev/shogi/pkg/shogi/position"
	"kuroshio.dev/shogi/pkg/usi"
	"kuroshio.dev/shogi/pkg/usi/option"
)

// Engine is the context shared among a running engine's USI commands.
type Engine struct {
	// Client is the engine's usi client.
	Client usi.Client

	// Position is the board currently set up by the last "position"
	// command.
	Position *position.Position

	// OptionSchema holds the setoption-configurable engine options.
	OptionSchema option.Schema
	Options      Options
}

// Options holds the current values of the USI options this engine
// supports. There is no search or transposition table in this engine, so
// Hash and Threads are accepted for USI protocol compliance but do not
// back a real resource.
type Options struct {
	Hash    int
	Threads int
}
