package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Next(t *testing.T) {
	s := NewState([]string{"a", "b"})
	assert.Equal(t, 2, s.Len())

	arg, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", arg)

	arg, ok = s.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", arg)

	_, ok = s.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestState_PushFrontKeepsOrder(t *testing.T) {
	s := NewState([]string{"rest"})
	s.PushFront("-a", "-b", "-c")

	assert.Equal(t, []string{"-a", "-b", "-c", "rest"}, s.Drain())
	assert.Equal(t, 0, s.Len())
}

func TestState_DrainEmpty(t *testing.T) {
	s := NewState(nil)
	assert.Equal(t, []string{}, s.Drain())
}

func TestSplit(t *testing.T) {
	args, err := Split(`-n "John Smith" --color=blue 'a b'`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"-n", "John Smith", "--color=blue", "a b"}, args)

	_, err = Split(`"unterminated`)
	assert.Error(t, err)
}
