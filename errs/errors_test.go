package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_WithArgs(t *testing.T) {
	err := ErrUnknownOption.WithArgs("%q", "-z")

	assert.Equal(t, `unknown option: "-z"`, err.Error())
	assert.True(t, errors.Is(err, ErrUnknownOption))
	assert.False(t, errors.Is(err, ErrConfig))
	assert.Equal(t, []interface{}{"-z"}, err.Args())
}

func TestError_Wrap(t *testing.T) {
	cause := ErrFlagExists.WithArgs("%s", "-a")
	err := ErrConfig.WithArgs("option %s", "-a,--apple").Wrap(cause)

	assert.True(t, errors.Is(err, ErrConfig))
	assert.True(t, errors.Is(err, ErrFlagExists), "cause should be reachable through Unwrap")
	assert.Equal(t, "configuration error: option -a,--apple: flag already assigned: -a", err.Error())
}

func TestError_Sentinel(t *testing.T) {
	assert.Equal(t, "missing value", ErrMissingValue.Error())
	assert.True(t, errors.Is(ErrMissingValue, ErrMissingValue))
	assert.Nil(t, ErrMissingValue.Unwrap())

	var target *Error
	assert.True(t, errors.As(ErrDoubleAssignment.WithArgs("x"), &target))
	assert.True(t, target.Is(ErrDoubleAssignment))
}
