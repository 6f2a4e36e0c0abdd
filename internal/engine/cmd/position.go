package cmd

import (
	"errors"
	"strings"

	"kuroshio.dev/shogi/internal/engine/context"
	"kuroshio.dev/shogi/pkg/shogi/move"
	"kuroshio.dev/shogi/pkg/shogi/position"
	usicmd "kuroshio.dev/shogi/pkg/usi/cmd"
	"kuroshio.dev/shogi/pkg/usi/flag"
)

// NewPosition builds the "position [sfen <sfenstring> | startpos] moves
// <move>..." command.
func NewPosition(engine *context.Engine) usicmd.Command {
	schema := flag.NewSchema()

	// an SFEN carries four space-separated fields; see parsePositionFlags.
	schema.Array("sfen", 4)
	schema.Button("startpos")
	schema.Variadic("moves")

	return usicmd.Command{
		Name: "position",
		Run: func(interaction usicmd.Interaction) error {
			p, err := parsePositionFlags(interaction.Values)
			if err != nil {
				return err
			}

			engine.Position = p
			return nil
		},
		Flags: schema,
	}
}

func parsePositionFlags(values flag.Values) (*position.Position, error) {
	var p *position.Position

	switch {
	case values["startpos"].Set && values["sfen"].Set:
		return nil, errors.New("position: both startpos and sfen flags found")

	case values["startpos"].Set:
		pos, err := position.ParseSFEN(position.StartSFEN)
		if err != nil {
			return nil, err
		}
		p = pos

	case values["sfen"].Set:
		fields := values["sfen"].Value.([]string)
		pos, err := position.ParseSFEN(strings.Join(fields, " "))
		if err != nil {
			return nil, err
		}
		p = pos

	default:
		return nil, errors.New("position: no startpos or sfen option")
	}

	if values["moves"].Set {
		for _, s := range values["moves"].Value.([]string) {
			m, err := move.NewFromUSI(s, p.PieceOn)
			if err != nil {
				return nil, err
			}
			if !p.PseudoLegal(m, false) || !p.IsLegal(m) {
				return nil, errors.New("position: illegal move " + s)
			}
			p.DoMove(m, p.GivesCheck(m))
		}
	}

	return p, nil
}
