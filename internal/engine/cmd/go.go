package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"kuroshio.dev/shogi/internal/engine/context"
	usicmd "kuroshio.dev/shogi/pkg/usi/cmd"
)

// infoWrapWidth is the terminal width "info string" lines wrap at, so a
// long diagnostic doesn't run off the side of a narrow USI frontend
// console.
const infoWrapWidth = 72

// NewGo builds the "go" command. A full search, its time management, and
// its thread pool are out of scope; the only move-finding capability this
// engine offers is the 1-ply mate solver, so "go" reports a mate if
// Position.MateIn1 finds one and otherwise declines to move.
func NewGo(engine *context.Engine) usicmd.Command {
	return usicmd.Command{
		Name: "go",
		Run: func(interaction usicmd.Interaction) error {
			if engine.Position == nil {
				return errors.New("go: no position set")
			}

			interaction.Reply(infoString(
				"searching for a mate in one, since no iterative-deepening search is built"))

			if m := engine.Position.MateIn1(); m.IsNormal() {
				interaction.Replyf("bestmove %s", m.USI())
				return nil
			}

			interaction.Reply("bestmove resign")
			return nil
		},
	}
}

func infoString(s string) string {
	wrapped := wordwrap.WrapString(s, infoWrapWidth)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = fmt.Sprintf("info string %s", line)
	}
	return strings.Join(lines, "\n")
}

// NewStop builds the "stop" command. There is no asynchronous search to
// interrupt, so this always reports that nothing is in progress.
func NewStop(engine *context.Engine) usicmd.Command {
	return usicmd.Command{
		Name: "stop",
		Run: func(usicmd.Interaction) error {
			return errors.New("stop: no search in progress")
		},
	}
}
