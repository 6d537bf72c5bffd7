package logic

import (
	"errors"
	"fmt"
)

var (
	ErrType               = errors.New("invalid argument type")
	ErrArity              = errors.New("wrong number of arguments")
	ErrNonConformable     = errors.New("non-conformable arrays")
	ErrTimeSeriesMismatch = errors.New("non-conformable time series")
	ErrMissingValue       = errors.New("missing value where TRUE/FALSE needed")
	ErrRecycling          = errors.New("longer object length is not a multiple of shorter object length")
	ErrInvalidOp          = errors.New("invalid operator")
)

// OpError reports a failed logical operation.
type OpError struct {
	Op  Op
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op Op, sentinel error, format string, args ...any) error {
	err := sentinel
	if format != "" {
		err = fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
	}
	return &OpError{
		Op:  op,
		Err: err,
	}
}
