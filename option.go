package clop

import (
	"reflect"
	"strings"

	"github.com/napalu/clop/errs"
	"github.com/napalu/clop/internal/util"
)

// Handle identifies a registered Option. Handles are issued in registration order.
type Handle int

// Value is implemented by caller-defined types which parse their own textual value.
// Options bound to a Value always require a value.
type Value interface {
	Set(text string) error
	String() string
}

// Metavarer may be implemented by a Value to name its type in help output
type Metavarer interface {
	Metavar() string
}

// capability is the type-specific behavior behind an Option
type capability interface {
	requiresValue() bool
	assign(text string) error
	toggle() error
	String() string
	metavar() string
}

// Option is one declared flag set bound to one variable
type Option struct {
	handle       Handle
	flags        []string
	metavar      string
	description  string
	defaultValue string
	value        capability
}

// Handle returns the option's identity
func (o *Option) Handle() Handle {
	return o.handle
}

// Flags returns the option's flags, short flag first
func (o *Option) Flags() []string {
	flags := make([]string, len(o.flags))
	copy(flags, o.flags)

	return flags
}

// Metavar returns the human-readable type name of the option's value ("" for booleans)
func (o *Option) Metavar() string {
	return o.metavar
}

// Description returns the option's help text
func (o *Option) Description() string {
	return o.description
}

// DefaultValue returns the bound variable's value at registration time
func (o *Option) DefaultValue() string {
	return o.defaultValue
}

// CurrentValue returns the bound variable's current value
func (o *Option) CurrentValue() string {
	return o.value.String()
}

// RequiresValue is false only for boolean options
func (o *Option) RequiresValue() bool {
	return o.value.requiresValue()
}

// Assign parses text into the bound variable
func (o *Option) Assign(text string) error {
	return o.value.assign(text)
}

// Toggle sets a boolean option to the negation of its default
func (o *Option) Toggle() error {
	return o.value.toggle()
}

// String describes the option as flags:metavar[=default]
func (o *Option) String() string {
	s := strings.Join(o.flags, ",") + ":" + o.metavar
	if o.RequiresValue() {
		s += "=" + o.defaultValue
	}

	return s
}

// boundValue is the capability of variables of a built-in type
type boundValue struct {
	data     any
	isBool   bool
	fallback bool
}

func newBoundValue(data any) (*boundValue, error) {
	if err := util.CanConvert(data); err != nil {
		return nil, err
	}

	b := &boundValue{data: data, isBool: util.IsBool(data)}
	if b.isBool {
		b.fallback = reflect.ValueOf(data).Elem().Bool()
	}

	return b, nil
}

func (b *boundValue) requiresValue() bool {
	return !b.isBool
}

func (b *boundValue) assign(text string) error {
	return util.ConvertString(text, b.data)
}

func (b *boundValue) toggle() error {
	if !b.isBool {
		return errs.ErrNotToggleable.WithArgs("%s", util.Metavar(b.data))
	}
	// negation of the registered default, never of the current value
	reflect.ValueOf(b.data).Elem().SetBool(!b.fallback)

	return nil
}

func (b *boundValue) String() string {
	return util.FormatValue(b.data)
}

func (b *boundValue) metavar() string {
	return util.Metavar(b.data)
}

// customValue is the capability of caller-defined Value types
type customValue struct {
	v Value
}

func (c *customValue) requiresValue() bool {
	return true
}

func (c *customValue) assign(text string) error {
	return c.v.Set(text)
}

func (c *customValue) toggle() error {
	return errs.ErrNotToggleable.WithArgs("%T", c.v)
}

func (c *customValue) String() string {
	return c.v.String()
}

func (c *customValue) metavar() string {
	if m, ok := c.v.(Metavarer); ok {
		return m.Metavar()
	}

	return "value"
}
