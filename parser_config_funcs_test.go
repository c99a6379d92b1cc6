package clop

import (
	"errors"
	"testing"

	"github.com/napalu/clop/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParserWith(t *testing.T) {
	var (
		color   = "red"
		age     = -1
		help    bool
		timeout uint
		items   listValue
	)

	p, err := NewParserWith(
		WithOption(&color, "-c", "--color", "your favorite color"),
		WithFlag(&age, "-a", "your age"),
		WithOption(&help, "-h", "--help", "print help description and exit"),
		WithBind(&timeout, "-t", "--timeout", "timeout in seconds"),
		WithValue(&items, "-i", "", "items"),
		WithHyphenArgError(false),
		WithDoubleHyphen(false),
	)
	require.NoError(t, err)
	require.Len(t, p.Options(), 5)
	assert.False(t, p.HyphenArgError())
	assert.False(t, p.DoubleHyphen())

	args, err := p.Parse([]string{"--color=blue", "-a", "42", "-h", "-t", "30", "-i", "x", "-5", "--"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-5", "--"}, args)
	assert.Equal(t, "blue", color)
	assert.Equal(t, 42, age)
	assert.True(t, help)
	assert.Equal(t, uint(30), timeout)
	assert.Equal(t, listValue{"x"}, items)
}

func TestNewParserWithError(t *testing.T) {
	var a, b bool

	p, err := NewParserWith(
		WithOption(&a, "-a", "", "a"),
		WithOption(&b, "-a", "", "b"),
	)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, errs.ErrConfig))
	assert.True(t, errors.Is(err, errs.ErrFlagExists))

	p, err = NewParserWith(WithFlag(&a, "a", "bad flag"))
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, errs.ErrIllegalFlag))
}

func TestWithTerminalAndRenderer(t *testing.T) {
	terminal := &MockTerminal{IsTerminalResult: false}
	var verbose bool

	p, err := NewParserWith(
		WithOption(&verbose, "-v", "", "be verbose"),
		WithTerminal(terminal),
	)
	require.NoError(t, err)
	assert.Equal(t, terminal, p.terminal)

	renderer := upperRenderer{NewRenderer(p)}
	p, err = NewParserWith(WithRenderer(renderer))
	require.NoError(t, err)
	assert.Equal(t, renderer, p.renderer)
}
