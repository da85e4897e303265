package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[string]any{}

type enum[T comparable] struct {
	toEnum map[string]T
	values []T
}

// New registers value as a member of the enum type T. Registration happens in
// package init blocks, before any concurrent access.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	t := v.Type()
	e, ok := enumManager[t.Name()].(*enum[T])
	if !ok {
		e = &enum[T]{toEnum: make(map[string]T)}
		enumManager[t.Name()] = e
	}

	e.toEnum[v.String()] = value
	e.values = append(e.values, value)
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(*enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// All returns every registered member of T in registration order.
func All[T comparable]() []T {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return nil
	}

	return e.(*enum[T]).values
}
