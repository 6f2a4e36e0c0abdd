package cmd

import (
	"fmt"
	"io"

	"kuroshio.dev/shogi/pkg/usi/flag"
)

// NewSchema initializes a new command schema.
func NewSchema(replyWriter io.Writer) Schema {
	return Schema{
		replyWriter: replyWriter,
		commands:    make(map[string]Command),
	}
}

// Schema contains a command schema for a client.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add adds the given command to the Schema.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command represents the schema of a GUI-to-engine USI command.
type Command struct {
	// Name is used as a token to identify which command this is.
	Name string

	// Parallel is carried on the schema but not read: the client runs
	// every command, "go" included, to completion before reading the
	// next line.
	Parallel bool

	// Run is the work function for the command.
	Run func(Interaction) error

	// Flags is the flag schema parsed from the command's arguments
	// before Run is called.
	Flags flag.Schema
}

// RunWith parses args against the command's flag schema and runs it.
func (c Command) RunWith(args []string, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}

	return c.Run(Interaction{
		stdout:  schema.replyWriter,
		Command: c,

		Values: values,
	})
}

// Interaction encapsulates information about a Command sent to the
// engine by the GUI.
type Interaction struct {
	stdout io.Writer

	Command // parent Command

	// Values holds the values provided for the command's flags.
	Values flag.Values
}

// Reply writes a line to the GUI, like fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a line to the GUI, like fmt.Printf with a newline
// terminator appended.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
