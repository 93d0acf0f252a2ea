package errors

import "fmt"

// Field attaches a field name to err. Nested fields use dot notation and
// list elements their index, for example TimeBound.Kind or Claimants.2.
// A nil err gives nil.
func Field(name string, err error, description string) error {
	if isNilErr(err) {
		return nil
	}
	return &fieldError{parent: err, field: name, desc: description}
}

// AppendField appends the field error, if any, to errs.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

func (err *fieldError) Cause() error {
	return err.parent
}

// FieldErrors collects the errors attached to the named field anywhere in
// err, looking through multi errors and wrapped errors.
func FieldErrors(err error, name string) []error {
	for !isNilErr(err) {
		switch e := err.(type) {
		case *fieldError:
			if e.field == name {
				return []error{e}
			}
		case unpacker:
			var res []error
			for _, inner := range e.Unpack() {
				res = append(res, FieldErrors(inner, name)...)
			}
			return res
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}
