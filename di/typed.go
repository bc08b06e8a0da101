package di

import (
	"fmt"
	"reflect"
)

// GetAs resolves name and returns it typed as T.
//
// It returns the resolution error as-is, or WrongTypeDependencyError if the
// value is not a T. A nil value is accepted for nilable T (pointers,
// interfaces, maps, slices, funcs, channels).
func GetAs[T any](inj *Injector, name string) (T, error) {
	var zero T
	raw, err := inj.GetDependency(name)
	if err != nil {
		return zero, err
	}
	v, ok := as[T](raw)
	if !ok {
		return zero, WrongTypeDependencyError{Name: name, Want: typeName[T](), Got: dynamicTypeName(raw)}
	}
	return v, nil
}

// MustGetAs is GetAs that panics on error. Useful in tests and in composition
// roots where a failure is a wiring bug.
func MustGetAs[T any](inj *Injector, name string) T {
	v, err := GetAs[T](inj, name)
	if err != nil {
		panic(fmt.Errorf("di: MustGetAs: %w", err))
	}
	return v
}

// Func0 adapts a typed function with no arguments.
func Func0[R any](fn func() (R, error)) Func {
	return func(args ...any) (any, error) {
		if len(args) != 0 {
			return nil, ArgumentCountError{Want: 0, Got: len(args)}
		}
		return fn()
	}
}

// Func1 adapts a typed function of one argument.
func Func1[A, R any](fn func(A) (R, error)) Func {
	return func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, ArgumentCountError{Want: 1, Got: len(args)}
		}
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		return fn(a)
	}
}

// Func2 adapts a typed function of two arguments.
func Func2[A, B, R any](fn func(A, B) (R, error)) Func {
	return func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, ArgumentCountError{Want: 2, Got: len(args)}
		}
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := arg[B](args, 1)
		if err != nil {
			return nil, err
		}
		return fn(a, b)
	}
}

// Func3 adapts a typed function of three arguments.
func Func3[A, B, C, R any](fn func(A, B, C) (R, error)) Func {
	return func(args ...any) (any, error) {
		if len(args) != 3 {
			return nil, ArgumentCountError{Want: 3, Got: len(args)}
		}
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := arg[B](args, 1)
		if err != nil {
			return nil, err
		}
		c, err := arg[C](args, 2)
		if err != nil {
			return nil, err
		}
		return fn(a, b, c)
	}
}

func arg[T any](args []any, i int) (T, error) {
	v, ok := as[T](args[i])
	if !ok {
		return v, ArgumentTypeError{Index: i, Want: typeName[T](), Got: dynamicTypeName(args[i])}
	}
	return v, nil
}

func as[T any](raw any) (T, bool) {
	if v, ok := raw.(T); ok {
		return v, true
	}
	var zero T
	if raw == nil && nilable(reflect.TypeFor[T]()) {
		return zero, true
	}
	return zero, false
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func dynamicTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
