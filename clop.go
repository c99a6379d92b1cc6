// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package clop provides support for GNU-style command-line processing.
//
// Options are declared by binding a variable to a short flag like "-a", a long flag like
// "--alphabet", or both:
//
//	Single - a flag which takes a value, given as "-c blue", "--color blue" or "--color=blue"
//	Boolean - a flag which takes no value and toggles its variable away from its default
//
// Boolean short flags may be bundled ("-abc" toggles -a, -b and -c). Everything after "--" is
// treated as a positional argument. Parse returns the positional arguments; PrintHelp renders
// a description of every option wrapped to the terminal width.
package clop

import (
	"os"

	"github.com/napalu/clop/completion"
	"github.com/napalu/clop/errs"
	"github.com/napalu/clop/internal/parse"
)

// Parser holds the registered options and the result of the last parse
type Parser struct {
	registry              *registry
	tracker               *tracker
	interpretDoubleHyphen bool
	hyphenArgError        bool
	terminal              Terminal
	renderer              Renderer
}

// NewParser returns a parser which treats "--" as the end of options and rejects unknown
// '-' prefixed arguments.
func NewParser() *Parser {
	p := &Parser{
		registry:              newRegistry(),
		tracker:               newTracker(),
		interpretDoubleHyphen: true,
		hyphenArgError:        true,
	}
	p.renderer = NewRenderer(p)

	return p
}

// Add binds variable, which must be a pointer to a supported type, to a short flag ("-x"), a
// long flag ("--xyz") or both. An empty flag is omitted. The variable's current value is
// recorded as its default. Errors are of kind errs.ErrConfig.
func (p *Parser) Add(variable any, shortFlag, longFlag, description string) error {
	_, err := p.registry.addVariable(variable, shortFlag, longFlag, description)
	return err
}

// AddFlag binds variable to a single flag which may be short or long
func (p *Parser) AddFlag(variable any, flag, description string) error {
	short, long, err := classify(flag)
	if err != nil {
		return err
	}

	return p.Add(variable, short, long, description)
}

// AddValue binds a caller-defined Value. The Value itself identifies the option.
func (p *Parser) AddValue(value Value, shortFlag, longFlag, description string) error {
	_, err := p.registry.addValue(value, shortFlag, longFlag, description)
	return err
}

// Bind is the typed form of Parser.Add
func Bind[T Bindable](p *Parser, variable *T, shortFlag, longFlag, description string) error {
	if variable == nil {
		return errs.ErrConfig.Wrap(errs.ErrBindNil)
	}

	return p.Add(variable, shortFlag, longFlag, description)
}

// Lookup returns the option registered under flag. Only exact matches are found.
func (p *Parser) Lookup(flag string) (*Option, bool) {
	return p.registry.lookup(flag)
}

// Options returns the registered options in registration order
func (p *Parser) Options() []*Option {
	return p.registry.list()
}

// Parse processes args (the program's arguments without the program name) and returns the
// positional arguments. Bound variables are updated as their flags are encountered; on error
// the variables set so far keep their new values.
func (p *Parser) Parse(args []string) ([]string, error) {
	return p.parse(parse.NewState(args))
}

// ParseString splits argString using shell quoting rules and calls Parse
func (p *Parser) ParseString(argString string) ([]string, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, errs.ErrParseString.Wrap(err)
	}

	return p.Parse(args)
}

// ParseEnv parses the content of the environment variable name as if it were a command line.
// An unset variable parses as no arguments.
func (p *Parser) ParseEnv(name string) ([]string, error) {
	return p.ParseString(os.Getenv(name))
}

// SetDoubleHyphen controls whether "--" ends option processing (default true). When false
// "--" is handled like any other argument.
func (p *Parser) SetDoubleHyphen(interpret bool) {
	p.interpretDoubleHyphen = interpret
}

// DoubleHyphen reports whether "--" ends option processing
func (p *Parser) DoubleHyphen() bool {
	return p.interpretDoubleHyphen
}

// SetHyphenArgError controls whether an unrecognized argument starting with '-' is an error
// (default true). When false such arguments are returned as positional arguments, which is
// useful for negative numbers.
func (p *Parser) SetHyphenArgError(strict bool) {
	p.hyphenArgError = strict
}

// HyphenArgError reports whether unrecognized '-' prefixed arguments are errors
func (p *Parser) HyphenArgError() bool {
	return p.hyphenArgError
}

// SetTerminal replaces the terminal probe used by PrintHelp
func (p *Parser) SetTerminal(terminal Terminal) {
	p.terminal = terminal
}

// SetRenderer replaces the renderer used by PrintHelp
func (p *Parser) SetRenderer(renderer Renderer) {
	if renderer == nil {
		renderer = NewRenderer(p)
	}
	p.renderer = renderer
}

// IsSet reports whether the option bound to variable was set during the last parse
func (p *Parser) IsSet(variable any) bool {
	option, found := p.registry.byVariable(variable)
	return found && p.tracker.isSet(option.handle)
}

// IsFlagSet reports whether the option registered under flag was set during the last parse,
// by this or any other of its flags. Unknown flags are never set.
func (p *Parser) IsFlagSet(flag string) bool {
	option, found := p.registry.lookup(flag)
	return found && p.tracker.isSet(option.handle)
}

// IsHandleSet reports whether the option identified by h was set during the last parse
func (p *Parser) IsHandleSet(h Handle) bool {
	return p.tracker.isSet(h)
}

// SetBy returns the flag which set the option registered under flag during the last parse
func (p *Parser) SetBy(flag string) (string, bool) {
	option, found := p.registry.lookup(flag)
	if !found {
		return "", false
	}

	return p.tracker.flag(option.handle)
}

// Assignments returns the options set during the last parse in the order they were set
func (p *Parser) Assignments() []Assignment {
	assignments := make([]Assignment, 0, p.registry.len())
	p.tracker.each(func(h Handle, flag string) {
		if option, found := p.registry.get(h); found {
			assignments = append(assignments, Assignment{Flag: flag, Option: option})
		}
	})

	return assignments
}

// GetCompletionData returns the flags and their descriptions for shell completion
func (p *Parser) GetCompletionData() completion.CompletionData {
	data := completion.CompletionData{
		Descriptions: map[string]string{},
		ValueFlags:   map[string]bool{},
	}
	for _, option := range p.registry.list() {
		for _, flag := range option.flags {
			data.Flags = append(data.Flags, flag)
			data.Descriptions[flag] = option.description
			if option.RequiresValue() {
				data.ValueFlags[flag] = true
			}
		}
	}

	return data
}

// GenerateCompletion returns a completion script for shell ("bash" or "fish")
func (p *Parser) GenerateCompletion(shell, programName string) (string, error) {
	return completion.Generate(shell, programName, p.GetCompletionData())
}
