package logic

import (
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
)

// Binary applies element-wise & or | to x and y, recycling the shorter operand.
func Binary(op Op, x, y *vectors.Vector) (ret Result, err error) {
	var fn func(a, b tribool.Bool) tribool.Bool
	switch op {
	case OpAnd:
		fn = tribool.And
	case OpOr:
		fn = tribool.Or
	default:
		return ret, opError(op, ErrInvalidOp, "not an element-wise binary operator")
	}

	if !vectors.IsNumeric(x) || !vectors.IsNumeric(y) {
		return ret, opError(op, ErrType,
			"operations are possible only for numeric or logical types, got %s and %s", x.Kind(), y.Kind())
	}

	n, mismatch := RecycledLength(x.Len(), y.Len())
	attrs, err := reconcile(op, x, y, n)
	if err != nil {
		return ret, err
	}
	if mismatch {
		ret.Warnings = append(ret.Warnings, Warning{
			Op:      op,
			Longer:  max(x.Len(), y.Len()),
			Shorter: min(x.Len(), y.Len()),
		})
	}

	xs, err := vectors.AsLogical(x)
	if err != nil {
		return ret, opError(op, ErrType, "%v", err)
	}
	ys, err := vectors.AsLogical(y)
	if err != nil {
		return ret, opError(op, ErrType, "%v", err)
	}

	ret.Value = vectors.NewLogical(recycle(xs, ys, fn)...).WithAttrs(attrs)
	return ret, nil
}

func And(x, y *vectors.Vector) (Result, error) {
	return Binary(OpAnd, x, y)
}

func Or(x, y *vectors.Vector) (Result, error) {
	return Binary(OpOr, x, y)
}
