package util

import (
	"errors"
	"testing"
	"time"

	"github.com/napalu/clop/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level int

type name string

func TestUtil_ConvertString(t *testing.T) {
	var (
		s   string
		i   int
		i8  int8
		u   uint
		f   float64
		c   complex128
		d   time.Duration
		b   bool
		lvl level
		n   name
	)

	tests := []struct {
		name  string
		value string
		data  any
		want  any
	}{
		{name: "string", value: "two words", data: &s, want: "two words"},
		{name: "int", value: "-42", data: &i, want: -42},
		{name: "int8", value: "127", data: &i8, want: int8(127)},
		{name: "uint", value: "7", data: &u, want: uint(7)},
		{name: "float", value: "3.25", data: &f, want: 3.25},
		{name: "complex", value: "1+2i", data: &c, want: complex(1, 2)},
		{name: "duration", value: "1m30s", data: &d, want: 90 * time.Second},
		{name: "bool", value: "true", data: &b, want: true},
		{name: "named int", value: "3", data: &lvl, want: level(3)},
		{name: "named string", value: "bob", data: &n, want: name("bob")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, ConvertString(tt.value, tt.data))
			switch p := tt.data.(type) {
			case *string:
				assert.Equal(t, tt.want, *p)
			case *int:
				assert.Equal(t, tt.want, *p)
			case *int8:
				assert.Equal(t, tt.want, *p)
			case *uint:
				assert.Equal(t, tt.want, *p)
			case *float64:
				assert.Equal(t, tt.want, *p)
			case *complex128:
				assert.Equal(t, tt.want, *p)
			case *time.Duration:
				assert.Equal(t, tt.want, *p)
			case *bool:
				assert.Equal(t, tt.want, *p)
			case *level:
				assert.Equal(t, tt.want, *p)
			case *name:
				assert.Equal(t, tt.want, *p)
			}
		})
	}
}

func TestUtil_ConvertStringTime(t *testing.T) {
	var ts time.Time
	require.NoError(t, ConvertString("2024-03-01", &ts))
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.March, ts.Month())
	assert.Equal(t, 1, ts.Day())

	assert.Error(t, ConvertString("not a date", &ts))
}

func TestUtil_ConvertStringErrors(t *testing.T) {
	var (
		i  int
		i8 int8
		u  uint
		f  float32
	)

	assert.Error(t, ConvertString("abc", &i))
	assert.Error(t, ConvertString("128", &i8), "overflow should be rejected")
	assert.Error(t, ConvertString("-1", &u), "negative natural should be rejected")
	assert.Error(t, ConvertString("x", &f))

	err := ConvertString("1", i)
	assert.True(t, errors.Is(err, errs.ErrNotPointer))

	var m map[string]string
	err = ConvertString("1", &m)
	assert.True(t, errors.Is(err, errs.ErrUnsupportedType))
}

func TestUtil_CanConvert(t *testing.T) {
	var (
		s  string
		ts time.Time
		ch chan int
		sl []string
	)

	assert.NoError(t, CanConvert(&s))
	assert.NoError(t, CanConvert(&ts))
	assert.True(t, errors.Is(CanConvert(nil), errs.ErrBindNil))
	assert.True(t, errors.Is(CanConvert((*string)(nil)), errs.ErrBindNil))
	assert.True(t, errors.Is(CanConvert(s), errs.ErrNotPointer))
	assert.True(t, errors.Is(CanConvert(&ch), errs.ErrUnsupportedType))
	assert.True(t, errors.Is(CanConvert(&sl), errs.ErrUnsupportedType))
}

func TestUtil_Metavar(t *testing.T) {
	var (
		s  string
		i  int64
		u  uint16
		f  float32
		b  bool
		c  complex64
		d  time.Duration
		ts time.Time
	)

	assert.Equal(t, "string", Metavar(&s))
	assert.Equal(t, "integer", Metavar(&i))
	assert.Equal(t, "natural", Metavar(&u))
	assert.Equal(t, "real", Metavar(&f))
	assert.Equal(t, "", Metavar(&b))
	assert.Equal(t, "complex", Metavar(&c))
	assert.Equal(t, "duration", Metavar(&d))
	assert.Equal(t, "time", Metavar(&ts))
	assert.Equal(t, "value", Metavar(nil))
}

func TestUtil_FormatValue(t *testing.T) {
	s := "def"
	i := 211
	b := true
	d := 2 * time.Second
	f := 3.14

	assert.Equal(t, `"def"`, FormatValue(&s))
	assert.Equal(t, "211", FormatValue(&i))
	assert.Equal(t, "true", FormatValue(&b))
	assert.Equal(t, "2s", FormatValue(&d))
	assert.Equal(t, "3.14", FormatValue(&f))
	assert.Equal(t, "<nil>", FormatValue(nil))
	assert.True(t, IsBool(&b))
	assert.False(t, IsBool(&i))
}
