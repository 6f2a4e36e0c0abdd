package options

import (
	"kuroshio.dev/shogi/internal/engine/context"
	"kuroshio.dev/shogi/pkg/usi/option"
)

// NewThreads declares the USI option Threads, type spin. Fixed at 1:
// there is no multi-threaded search to parallelize over.
func NewThreads(engine *context.Engine) option.Option {
	return &option.Spin{
		Default: 1,
		Min:     1, Max: 1,
		Storage: func(threads int) error {
			engine.Options.Threads = threads
			return nil
		},
	}
}
