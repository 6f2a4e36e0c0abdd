package options

import (
	"kuroshio.dev/shogi/internal/engine/context"
	"kuroshio.dev/shogi/pkg/usi/option"
)

// NewHash declares the USI option Hash, type spin. This engine carries no
// transposition table (search is out of scope), so the value is stored
// but otherwise unused; the option still has to exist for USI protocol
// compliance with GUIs that always send it.
func NewHash(engine *context.Engine) option.Option {
	return &option.Spin{
		Default: 16,
		Min:     1,
		Max:     33554432,
		Storage: func(hash int) error {
			engine.Options.Hash = hash
			return nil
		},
	}
}
