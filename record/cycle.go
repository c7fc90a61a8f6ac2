package record

import (
	"errors"
	"reflect"
)

// ErrCyclicPayload indicates a payload that refers back to itself.
var ErrCyclicPayload = errors.New("payload contains a reference cycle")

type visit struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type walker struct {
	active map[visit]struct{}
}

// CheckAcyclic returns [ErrCyclicPayload] if v reaches itself through
// pointers, maps or slices. Shared but acyclic references are allowed.
// Unexported struct fields are skipped, matching what the JSON encoder sees.
func CheckAcyclic(v any) error {
	w := walker{active: make(map[visit]struct{})}

	return w.walk(reflect.ValueOf(v))
}

func (w *walker) walk(v reflect.Value) error {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return w.walk(v.Elem())

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}

		return w.enter(visit{typ: v.Type(), ptr: v.Pointer()}, func() error {
			return w.walk(v.Elem())
		})

	case reflect.Map:
		if v.IsNil() {
			return nil
		}

		return w.enter(visit{typ: v.Type(), ptr: v.Pointer()}, func() error {
			iter := v.MapRange()
			for iter.Next() {
				err := w.walk(iter.Value())
				if err != nil {
					return err
				}
			}

			return nil
		})

	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return nil
		}

		return w.enter(visit{typ: v.Type(), ptr: v.Pointer(), len: v.Len()}, func() error {
			return w.each(v)
		})

	case reflect.Array:
		return w.each(v)

	case reflect.Struct:
		t := v.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() && !f.Anonymous {
				continue
			}

			err := w.walk(v.Field(i))
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *walker) each(v reflect.Value) error {
	for i := range v.Len() {
		err := w.walk(v.Index(i))
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enter(key visit, fn func() error) error {
	if _, ok := w.active[key]; ok {
		return ErrCyclicPayload
	}

	w.active[key] = struct{}{}
	defer delete(w.active, key)

	return fn()
}
