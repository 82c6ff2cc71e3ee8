// Package hamlet provides "to be, or not to be" style test specifications.
//
//	must_be, wont_be := hamlet.Specifications(t)
//	must_be.Equal(42, answer)
//	wont_be.Nil(err)
package hamlet

import (
	"reflect"
	"strings"
	"testing"
)

type Hamlet struct {
	t     testing.TB
	truth bool
}

func Specifications(t testing.TB) (Hamlet, Hamlet) {
	return Hamlet{t, true}, Hamlet{t, false}
}

func (it Hamlet) verb() string {
	if it.truth {
		return "must be"
	}
	return "wont be"
}

func (it Hamlet) check(outcome bool, format string, details ...interface{}) {
	it.t.Helper()
	if outcome != it.truth {
		it.t.Fatalf(it.verb()+" "+format, details...)
	}
}

func (it Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	it.check(reflect.DeepEqual(expected, actual), "equal: expected %#v, actual %#v", expected, actual)
}

func (it Hamlet) True(actual bool) {
	it.t.Helper()
	it.check(actual, "true")
}

func (it Hamlet) Nil(actual interface{}) {
	it.t.Helper()
	it.check(isNil(actual), "nil: got %#v", actual)
}

func (it Hamlet) Text(expected string, actual interface{ String() string }) {
	it.t.Helper()
	it.check(expected == actual.String(), "text: expected %q, actual %q", expected, actual.String())
}

func (it Hamlet) Contain(fragment, actual string) {
	it.t.Helper()
	it.check(strings.Contains(actual, fragment), "containing %q in %q", fragment, actual)
}

func (it Hamlet) Length(expected int, actual interface{}) {
	it.t.Helper()
	value := reflect.ValueOf(actual)
	switch value.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		it.check(value.Len() == expected, "length %d: actual %d", expected, value.Len())
	default:
		it.t.Fatalf("cannot take length of %T", actual)
	}
}

func (it Hamlet) Panic(todo func()) {
	it.t.Helper()
	panicked := func() (result bool) {
		defer func() {
			if recover() != nil {
				result = true
			}
		}()
		todo()
		return false
	}()
	it.check(panicked, "panicking")
}

func isNil(actual interface{}) bool {
	if actual == nil {
		return true
	}
	value := reflect.ValueOf(actual)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return value.IsNil()
	}
	return false
}
