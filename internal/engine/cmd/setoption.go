package cmd

import (
	"errors"

	"kuroshio.dev/shogi/internal/engine/context"
	usicmd "kuroshio.dev/shogi/pkg/usi/cmd"
	"kuroshio.dev/shogi/pkg/usi/flag"
)

// NewSetOption builds the "setoption name <id> [value <x>]" command.
func NewSetOption(engine *context.Engine) usicmd.Command {
	schema := flag.NewSchema()
	schema.Single("name")
	schema.Variadic("value")

	return usicmd.Command{
		Name: "setoption",
		Run: func(interaction usicmd.Interaction) error {
			name, value, err := parseSetOptionFlags(interaction.Values)
			if err != nil {
				return err
			}
			return engine.OptionSchema.SetOption(name, value)
		},
		Flags: schema,
	}
}

func parseSetOptionFlags(values flag.Values) (string, []string, error) {
	if !values["name"].Set {
		return "", nil, errors.New("setoption: name flag not found")
	}

	name := values["name"].Value.(string)

	value := []string{}
	if values["value"].Set {
		value = values["value"].Value.([]string)
	}

	return name, value, nil
}
