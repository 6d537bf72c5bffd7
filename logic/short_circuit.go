package logic

import (
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
)

// Evaluate evaluates an operand expression in the caller's context.
type Evaluate[E any] func(expr E) (*vectors.Vector, error)

type scState uint8

const (
	scStart scState = iota
	scFirstEvaluated
	scSecondEvaluated
	scDone
)

// ShortCircuit evaluates `first && second` or `first || second`.
// second is passed to eval only when the value of first does not decide the result.
func ShortCircuit[E any](op Op, first, second E, eval Evaluate[E]) (ret tribool.Bool, err error) {
	var decisive tribool.Bool
	switch op {
	case OpAndElse:
		decisive = tribool.False
	case OpOrElse:
		decisive = tribool.True
	default:
		return tribool.Missing, opError(op, ErrInvalidOp, "not a short-circuit operator")
	}

	state := scStart
	for state != scDone {
		switch state {

		case scStart:
			ret, err = scalarOperand(op, first, eval)
			if err != nil {
				return tribool.Missing, err
			}
			state = scFirstEvaluated

		case scFirstEvaluated:
			if ret == decisive {
				state = scDone
				continue
			}
			ret, err = scalarOperand(op, second, eval)
			if err != nil {
				return tribool.Missing, err
			}
			state = scSecondEvaluated

		case scSecondEvaluated:
			state = scDone

		}
	}

	return ret, nil
}

func AndElse[E any](first, second E, eval Evaluate[E]) (tribool.Bool, error) {
	return ShortCircuit(OpAndElse, first, second, eval)
}

func OrElse[E any](first, second E, eval Evaluate[E]) (tribool.Bool, error) {
	return ShortCircuit(OpOrElse, first, second, eval)
}

func scalarOperand[E any](op Op, expr E, eval Evaluate[E]) (tribool.Bool, error) {
	v, err := eval(expr)
	if err != nil {
		return tribool.Missing, err
	}
	if !vectors.IsNumeric(v) {
		return tribool.Missing, opError(op, ErrType, "binary operator applied to %s", v.Kind())
	}
	b := vectors.AsScalarLogical(v)
	if b == tribool.Missing {
		return tribool.Missing, opError(op, ErrMissingValue, "")
	}
	return b, nil
}
