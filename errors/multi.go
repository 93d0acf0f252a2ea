package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors or only nil values are given, nil is returned.
// If only one non nil error is given, it is returned unchanged.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
			continue
		}
		res = append(res, e)
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is a default implementation of a multi error.
// It is flat: appending a multi error to another one merges them.
type multiErr []error

func (me multiErr) Error() string {
	points := make([]string, len(me))
	for i, err := range me {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf(
		"%d errors occurred:\n\t%s\n",
		len(me), strings.Join(points, "\n\t"))
}

// Unpack returns all errors grouped by this multi error.
func (me multiErr) Unpack() []error {
	return me
}

var _ unpacker = multiErr(nil)
