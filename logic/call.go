package logic

import (
	"github.com/reusee/tailogic/vectors"
)

// Call invokes an operator on already evaluated arguments, checking arity.
// Short-circuit operators need unevaluated operands and cannot be called here.
func Call(op Op, args ...*vectors.Vector) (ret Result, err error) {
	switch op {

	case OpNot:
		if len(args) != 1 {
			return ret, opError(op, ErrArity, "unary operator requires one argument, got %d", len(args))
		}
		ret.Value, err = Not(args[0])
		return

	case OpAnd, OpOr:
		if len(args) != 2 {
			return ret, opError(op, ErrArity, "binary operations require two arguments, got %d", len(args))
		}
		return Binary(op, args[0], args[1])

	case OpAll, OpAny:
		b, err := Reduce(op, args, false)
		if err != nil {
			return ret, err
		}
		ret.Value = vectors.NewLogical(b)
		return ret, nil

	case OpAndElse, OpOrElse:
		return ret, opError(op, ErrArity, "operands must be unevaluated expressions")

	}

	return ret, opError(op, ErrInvalidOp, "")
}
