// Package option implements functionality for declaring and applying USI
// setoption-style engine options.
package option

import (
	"fmt"
	"strconv"
	"strings"
)

// NewSchema returns a new option schema.
func NewSchema() Schema {
	return Schema{
		options: make(map[string]Option),
	}
}

// Schema represents the schema of the options supported by a USI client.
type Schema struct {
	options map[string]Option
}

// AddOption adds an option with the given name to the schema.
func (schema *Schema) AddOption(name string, option Option) {
	schema.options[name] = option
}

// SetDefaults sets the default values for all the options in the schema.
func (schema *Schema) SetDefaults() error {
	for _, option := range schema.options {
		if err := option.Initialize(); err != nil {
			return err
		}
	}

	return nil
}

// SetOption sets the given option to the given value.
func (schema *Schema) SetOption(name string, value []string) error {
	option, found := schema.options[name]
	if !found {
		return fmt.Errorf("set option: %q is not a valid option", name)
	}

	return option.Store(value)
}

// String converts the schema into the "option name ... type ..." lines
// that must be printed in response to the "usi" command.
func (s *Schema) String() string {
	var str string

	for name, option := range s.options {
		str += fmt.Sprintf("option name %s type %s\n", name, option.Type())
	}

	return str
}

// Option is the interface implemented by every option type.
type Option interface {
	Type() string

	Store(value []string) error
	Initialize() error
}

// Check is a USI option of type check: a checkbox, true or false.
type Check struct {
	Default bool
	Storage func(bool) error
}

var _ Option = (*Check)(nil)

func (option *Check) Type() string {
	return fmt.Sprintf("check default %v", option.Default)
}

func (option *Check) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("option check: expected %d values, received %d values", 1, len(value))
	}

	boolean, err := strconv.ParseBool(value[0])
	if err != nil {
		return err
	}

	return option.Storage(boolean)
}

func (option *Check) Initialize() error {
	return option.Storage(option.Default)
}

// Spin is a USI option of type spin: an integer in [Min, Max].
type Spin struct {
	Default  int
	Max, Min int
	Storage  func(int) error
}

var _ Option = (*Spin)(nil)

func (option *Spin) Type() string {
	return fmt.Sprintf("spin default %v min %d max %d", option.Default, option.Min, option.Max)
}

func (option *Spin) Store(value []string) error {
	if len(value) != 1 {
		return fmt.Errorf("option spin: expected %d values, received %d values", 1, len(value))
	}

	integer, err := strconv.Atoi(value[0])
	if err != nil {
		return err
	}

	if integer < option.Min || integer > option.Max {
		return fmt.Errorf("option spin: value out of bounds [%d, %d]", option.Min, option.Max)
	}

	return option.Storage(integer)
}

func (option *Spin) Initialize() error {
	return option.Storage(option.Default)
}

// Button is a USI option of type button: pressing it pings the engine.
type Button struct {
	Ping func() error
}

var _ Option = (*Button)(nil)

func (option *Button) Type() string {
	return "button"
}

func (option *Button) Store(value []string) error {
	if len(value) > 0 {
		return fmt.Errorf("option button: expected %d values, received %d values", 0, len(value))
	}

	return option.Ping()
}

func (option *Button) Initialize() error {
	return nil
}

// String is a USI option of type string.
type String struct {
	Default string
	Storage func(string) error
}

var _ Option = (*String)(nil)

func (option *String) Type() string {
	return fmt.Sprintf("string default %s", option.Default)
}

func (option *String) Store(value []string) error {
	return option.Storage(strings.Join(value, " "))
}

func (option *String) Initialize() error {
	return option.Storage(option.Default)
}
