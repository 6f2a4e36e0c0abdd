// Package usi implements a generic command-schema/flag-parsing REPL
// frontend for the USI (Universal Shogi Interface) protocol, the Shogi
// analogue of UCI.
package usi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"kuroshio.dev/shogi/pkg/usi/cmd"
)

// errQuit is returned by the quit command to stop the repl.
var errQuit = errors.New("client: quit")

// NewClient creates a new usi.Client listening on stdin, with the
// default isready and quit commands added.
func NewClient() Client {
	client := Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	client.commands = cmd.NewSchema(client.stdout)

	client.AddCommand(cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction) error {
			i.Reply("readyok")
			return nil
		},
	})
	client.AddCommand(cmd.Command{
		Name: "quit",
		Run: func(cmd.Interaction) error {
			return errQuit
		},
	})

	return client
}

// Client represents a USI client.
type Client struct {
	stdin  io.Reader // GUI to engine commands
	stdout io.Writer // engine to GUI commands

	commands cmd.Schema
}

// AddCommand adds the given command to the client's schema.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs a repl listening for USI commands on the client's stdin.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		prompt, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		args := strings.Fields(prompt)
		if len(args) == 0 {
			continue
		}

		switch err := c.Run(args...); err {
		case nil:
			// no error: continue repl
		case errQuit:
			return nil
		default:
			c.Println(err)
		}
	}
}

// Run finds a command whose name matches the first element of args and
// runs it with the remaining args, returning any error it reports.
func (c *Client) Run(args ...string) error {
	name, args := args[0], args[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	return command.RunWith(args, c.commands)
}

// Print acts as fmt.Print on the client's stdout.
func (c *Client) Print(a ...any) (int, error) {
	return fmt.Fprint(c.stdout, a...)
}

// Printf acts as fmt.Printf on the client's stdout.
func (c *Client) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(c.stdout, format, a...)
}

// Println acts as fmt.Println on the client's stdout.
func (c *Client) Println(a ...any) (int, error) {
	return fmt.Fprintln(c.stdout, a...)
}
