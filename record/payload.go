package record

import (
	"fmt"
	"reflect"
)

// ToSlice normalizes an arbitrary payload into a sequence.
//
// A nil value (including typed nil pointers, maps and slices) becomes an
// empty sequence. A []any is returned unchanged. Other slices and arrays are
// copied element by element, except []byte, which is treated as one value.
// Anything else is wrapped as a single element. ToSlice never panics; should
// reflection fail, the result is a single placeholder string.
func ToSlice(v any) (out []any) {
	defer func() {
		if r := recover(); r != nil {
			out = []any{fmt.Sprintf("[unconvertible payload: %v]", r)}
		}
	}()

	switch vv := v.(type) {
	case nil:
		return []any{}
	case []any:
		return vv
	case []byte:
		if vv == nil {
			return []any{}
		}

		return []any{vv}
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return []any{}
		}
	case reflect.Slice:
		if rv.IsNil() {
			return []any{}
		}

		return elements(rv)
	case reflect.Array:
		return elements(rv)
	}

	return []any{v}
}

func elements(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}
