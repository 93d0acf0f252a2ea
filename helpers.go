package claimable

import (
	"reflect"

	"github.com/iov-one/claimable/errors"
)

// copyMsg sets the value of msg into destination. Destination must be a
// pointer to a value of the same type as the message (or the type the
// message pointer points to).
func copyMsg(destination interface{}, msg Msg) error {
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrapf(errors.ErrHuman, "destination must be a non nil pointer, got %T", destination)
	}

	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if !src.Type().AssignableTo(dest.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dest.Elem().Set(src)
	return nil
}
