package helpers

import (
	"strings"

	"github.com/ztrue/tracerr"
)

// Error carries one or more traced errors by value. The zero value (NilError)
// means "no error" so it can be returned without allocation on the happy path.
type Error struct {
	errs []tracerr.Error
}

var NilError = Error{nil}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

func (e Error) IsNil() bool {
	return IsNil(e)
}

func (e Error) HasError() bool {
	return !IsNil(e)
}

func (e Error) Error() string {
	lines := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "; ")
}

// String includes the stack traces, unlike Error.
func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += tracerr.Sprint(err) + "\n"
	}
	return result
}

func (e Error) Unwrap() []error {
	return MapSlice(e.errs, func(err tracerr.Error) error {
		return err
	})
}

func (e Error) First() tracerr.Error {
	if e.errs == nil {
		return nil
	}
	return e.errs[0]
}

func (e Error) NumErrors() int {
	return len(FilterSlice(e.errs, func(err tracerr.Error) bool {
		return err != nil
	}))
}

func Wrap(err error) Error {
	if err == nil {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func WrapReturn[T any](x T, err error) (T, Error) {
	return x, Wrap(err)
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	}
	if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Errorf(format, args...)}}
}
