package util

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/clop/errs"
	"github.com/pkg/errors"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// ConvertString parses value and stores the result in the variable data points to.
// data must have been accepted by CanConvert.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
		return nil
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return errors.Wrapf(err, "%q is not a valid time", value)
		}
		*t = val
		return nil
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "%q is not a valid duration", value)
		}
		*t = val
		return nil
	}

	v, err := target(data)
	if err != nil {
		return err
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "%q is not a valid boolean", value)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "%q is not a valid %s", value, Metavar(data))
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(value, 10, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "%q is not a valid %s", value, Metavar(data))
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "%q is not a valid %s", value, Metavar(data))
		}
		v.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(value, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "%q is not a valid complex number", value)
		}
		v.SetComplex(c)
	default:
		return errs.ErrUnsupportedType.WithArgs("%T", data)
	}

	return nil
}

// CanConvert checks that data is a non-nil pointer to a type ConvertString supports
func CanConvert(data any) error {
	v, err := target(data)
	if err != nil {
		return err
	}
	if v.Type() == timeType || v.Type() == durationType {
		return nil
	}

	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return nil
	}

	return errs.ErrUnsupportedType.WithArgs("%T", data)
}

// IsBool reports whether data points to a boolean variable
func IsBool(data any) bool {
	v, err := target(data)
	return err == nil && v.Kind() == reflect.Bool
}

// Metavar returns the human-readable name of the type data points to
func Metavar(data any) string {
	v, err := target(data)
	if err != nil {
		return "value"
	}

	switch v.Type() {
	case timeType:
		return "time"
	case durationType:
		return "duration"
	}

	switch v.Kind() {
	case reflect.Bool:
		return ""
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "natural"
	case reflect.Float32, reflect.Float64:
		return "real"
	case reflect.Complex64, reflect.Complex128:
		return "complex"
	}

	return "value"
}

// FormatValue renders the current value of the variable data points to. Strings are quoted.
func FormatValue(data any) string {
	v, err := target(data)
	if err != nil {
		return "<nil>"
	}

	switch val := v.Interface().(type) {
	case time.Time:
		return val.Format(time.RFC3339)
	case time.Duration:
		return val.String()
	}

	if v.Kind() == reflect.String {
		return `"` + v.String() + `"`
	}

	return fmt.Sprint(v.Interface())
}

func target(data any) (reflect.Value, error) {
	if data == nil {
		return reflect.Value{}, errs.ErrBindNil
	}
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Ptr {
		return reflect.Value{}, errs.ErrNotPointer.WithArgs("%T", data)
	}
	if v.IsNil() {
		return reflect.Value{}, errs.ErrBindNil.WithArgs("%T", data)
	}

	return v.Elem(), nil
}
