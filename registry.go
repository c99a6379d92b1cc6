package clop

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/clop/errs"
	"github.com/napalu/clop/util"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// registry owns the options in registration order and the flag and variable indexes
type registry struct {
	options   *orderedmap.OrderedMap[Handle, *Option]
	flags     map[string]Handle
	variables map[any]Handle
}

func newRegistry() *registry {
	return &registry{
		options:   orderedmap.New[Handle, *Option](),
		flags:     map[string]Handle{},
		variables: map[any]Handle{},
	}
}

// IsShortFlag reports whether flag has the shape -X where X is a single non-hyphen character
func IsShortFlag(flag string) bool {
	if !strings.HasPrefix(flag, "-") {
		return false
	}
	r, size := utf8.DecodeRuneInString(flag[1:])
	return size > 0 && r != '-' && len(flag) == 1+size
}

// IsLongFlag reports whether flag has the shape --X... without an embedded '='
func IsLongFlag(flag string) bool {
	return len(flag) >= 3 && strings.HasPrefix(flag, "--") && !strings.Contains(flag, "=")
}

func (r *registry) add(variable any, value capability, short, long, description string) (*Option, error) {
	if short == "" && long == "" {
		return nil, errs.ErrConfig.Wrap(errs.ErrNoFlag.WithArgs("%q", description))
	}
	if short != "" && !IsShortFlag(short) {
		return nil, errs.ErrConfig.Wrap(errs.ErrIllegalShortFlag.WithArgs("%q", short))
	}
	if long != "" && !IsLongFlag(long) {
		return nil, errs.ErrConfig.Wrap(errs.ErrIllegalLongFlag.WithArgs("%q", long))
	}

	id, err := util.Identity(variable)
	if err != nil {
		return nil, errs.ErrConfig.Wrap(errs.ErrUnsupportedType.Wrap(err))
	}

	option := &Option{
		handle:       Handle(r.options.Len()),
		description:  description,
		metavar:      value.metavar(),
		defaultValue: value.String(),
		value:        value,
	}
	if short != "" {
		option.flags = append(option.flags, short)
	}
	if long != "" {
		option.flags = append(option.flags, long)
	}

	if h, found := r.variables[id]; found {
		existing, _ := r.options.Get(h)
		return nil, errs.ErrConfig.WithArgs("options %s and %s", existing, option).Wrap(errs.ErrVariableExists)
	}
	for _, flag := range option.flags {
		if h, found := r.flags[flag]; found {
			existing, _ := r.options.Get(h)
			return nil, errs.ErrConfig.WithArgs("options %s and %s", existing, option).
				Wrap(errs.ErrFlagExists.WithArgs("%s", flag))
		}
	}

	r.options.Set(option.handle, option)
	r.variables[id] = option.handle
	for _, flag := range option.flags {
		r.flags[flag] = option.handle
	}

	return option, nil
}

func (r *registry) addVariable(variable any, short, long, description string) (*Option, error) {
	value, err := newBoundValue(variable)
	if err != nil {
		return nil, errs.ErrConfig.WithArgs("%s %s", short, long).Wrap(err)
	}

	return r.add(variable, value, short, long, description)
}

func (r *registry) addValue(v Value, short, long, description string) (*Option, error) {
	if v == nil {
		return nil, errs.ErrConfig.Wrap(errs.ErrBindNil)
	}

	return r.add(v, &customValue{v: v}, short, long, description)
}

func (r *registry) lookup(flag string) (*Option, bool) {
	h, found := r.flags[flag]
	if !found {
		return nil, false
	}

	return r.options.Get(h)
}

func (r *registry) has(flag string) bool {
	_, found := r.flags[flag]
	return found
}

func (r *registry) byVariable(variable any) (*Option, bool) {
	id, err := util.Identity(variable)
	if err != nil {
		return nil, false
	}
	h, found := r.variables[id]
	if !found {
		return nil, false
	}

	return r.options.Get(h)
}

func (r *registry) get(h Handle) (*Option, bool) {
	return r.options.Get(h)
}

func (r *registry) list() []*Option {
	options := make([]*Option, 0, r.options.Len())
	for pair := r.options.Oldest(); pair != nil; pair = pair.Next() {
		options = append(options, pair.Value)
	}

	return options
}

func (r *registry) len() int {
	return r.options.Len()
}

// classify splits a single flag into its short or long slot
func classify(flag string) (short, long string, err error) {
	switch {
	case flag == "":
		return "", "", errs.ErrConfig.Wrap(errs.ErrNoFlag)
	case IsShortFlag(flag):
		return flag, "", nil
	case IsLongFlag(flag):
		return "", flag, nil
	}

	return "", "", errs.ErrConfig.Wrap(errs.ErrIllegalFlag.WithArgs("%q", flag))
}
