/*
Package assert holds the few assertions shared by the tests. Every helper
stops the test on the first failure.
*/
package assert

import (
	"reflect"

	"github.com/iov-one/claimable/errors"
)

// Tester is the part of testing.TB the assertions need.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if value is not nil. Typed nil pointers, maps, slices
// and interfaces count as nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of wrapped errors.
		t.Fatalf("want nil, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Equal fails the test if want and got are not deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails the test if fn returns without panicking.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// IsErr fails the test unless got is of the want kind. Registered errors
// are compared with their Is method, anything else by identity.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

// FieldError fails the test unless err holds exactly one error for the
// field and that error is of the want kind. A nil want asserts the field
// has no error at all.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()
	errs := errors.FieldErrors(err, field)
	switch {
	case want == nil && len(errs) == 0:
		return
	case want == nil:
		t.Fatalf("field %q: want no error, got %q", field, errs)
	case len(errs) == 0:
		t.Fatalf("field %q: want %q, got no error", field, want)
	case len(errs) > 1:
		t.Fatalf("field %q: want one error, got %d: %q", field, len(errs), errs)
	case !want.Is(errs[0]):
		t.Fatalf("field %q: want %q, got %q", field, want, errs[0])
	}
}
