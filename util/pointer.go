package util

import (
	"fmt"
	"reflect"
)

// Identity returns the value under which a bound variable is tracked. v must be a non-nil
// pointer, or a comparable value, so that it can serve as a map key.
func Identity(v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("nil variable")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, fmt.Errorf("nil pointer encountered")
		}
		return v, nil
	case reflect.Map, reflect.Slice, reflect.Func:
		if rv.IsNil() {
			return nil, fmt.Errorf("nil %s encountered", rv.Kind())
		}
		// not comparable: identify by address
		return rv.Pointer(), nil
	}

	if !rv.Comparable() {
		return nil, fmt.Errorf("%T cannot be used as a variable identity", v)
	}

	return v, nil
}
