package clop

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/clop/errs"
	"github.com/napalu/clop/internal/parse"
)

func (p *Parser) parse(state parse.State) ([]string, error) {
	p.tracker.reset()

	positional := make([]string, 0, state.Len())
	for {
		arg, ok := state.Next()
		if !ok {
			break
		}

		if p.interpretDoubleHyphen && arg == "--" {
			positional = append(positional, state.Drain()...)
			break
		}

		processed, err := p.processArg(state, arg)
		if err != nil {
			return nil, err
		}
		if processed {
			continue
		}

		if p.hyphenArgError && strings.HasPrefix(arg, "-") {
			return nil, errs.ErrUnknownOption.WithArgs("%q", arg)
		}
		positional = append(positional, arg)
	}

	return positional, nil
}

// processArg returns true when arg was consumed as a flag, a bundle of flags or a flag=value pair
func (p *Parser) processArg(state parse.State, arg string) (bool, error) {
	if expanded, ok := p.expandBundle(arg); ok {
		state.PushFront(expanded...)
		return true, nil
	}

	if option, found := p.registry.lookup(arg); found {
		if !option.RequiresValue() {
			return true, p.assign(option, arg, "")
		}

		value, ok := state.Next()
		if !ok {
			return false, errs.ErrMissingValue.WithArgs("option %s, flag %s requires a value", option, arg)
		}

		return true, p.assign(option, arg, value)
	}

	if option, flag, value, found := p.inlineValue(arg); found {
		return true, p.assign(option, flag, value)
	}

	return false, nil
}

// expandBundle splits "-abc" into "-a", "-b", "-c" when each of them is a registered flag
func (p *Parser) expandBundle(arg string) ([]string, bool) {
	if utf8.RuneCountInString(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return nil, false
	}

	expanded := make([]string, 0, len(arg)-1)
	for _, r := range arg[1:] {
		flag := "-" + string(r)
		if !p.registry.has(flag) {
			return nil, false
		}
		expanded = append(expanded, flag)
	}

	return expanded, true
}

// inlineValue matches "flag=value" where flag is a registered value-requiring flag and value
// is not empty
func (p *Parser) inlineValue(arg string) (*Option, string, string, bool) {
	for i := 2; i < len(arg)-1; i++ {
		if arg[i] != '=' {
			continue
		}
		option, found := p.registry.lookup(arg[:i])
		if found && option.RequiresValue() {
			return option, arg[:i], arg[i+1:], true
		}
	}

	return nil, "", "", false
}

func (p *Parser) assign(option *Option, flag, value string) error {
	if previous, found := p.tracker.flag(option.handle); found {
		return errs.ErrDoubleAssignment.WithArgs("option %s set with %s and %s", option, previous, flag)
	}
	p.tracker.record(option.handle, flag)

	var err error
	if option.RequiresValue() {
		err = option.Assign(value)
	} else {
		err = option.Toggle()
	}
	if err != nil {
		return errs.ErrValueCoercion.WithArgs("option %s, flag %s, value %q", option, flag, value).Wrap(err)
	}

	return nil
}
