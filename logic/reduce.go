package logic

import (
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
)

// tally records which truth values a reduction has observed.
type tally struct {
	haveTrue    bool
	haveFalse   bool
	haveMissing bool
}

func (t tally) scan(values []tribool.Bool) tally {
	for _, v := range values {
		switch v {
		case tribool.True:
			t.haveTrue = true
		case tribool.False:
			t.haveFalse = true
		default:
			t.haveMissing = true
		}
	}
	return t
}

func (t tally) all() tribool.Bool {
	switch {
	case t.haveFalse:
		return tribool.False
	case t.haveMissing:
		return tribool.Missing
	}
	return tribool.True
}

func (t tally) any() tribool.Bool {
	switch {
	case t.haveTrue:
		return tribool.True
	case t.haveMissing:
		return tribool.Missing
	}
	return tribool.False
}

// Reduce folds every element of every operand into one value with all or any.
// NULL operands are skipped. When dropMissing is set, missing elements are ignored.
func Reduce(op Op, operands []*vectors.Vector, dropMissing bool) (tribool.Bool, error) {
	if op != OpAll && op != OpAny {
		return tribool.Missing, opError(op, ErrInvalidOp, "not a reduction")
	}

	var t tally
	for i, operand := range operands {
		if vectors.IsNull(operand) {
			continue
		}
		if !vectors.IsLogicalCoercible(operand) {
			return tribool.Missing, opError(op, ErrType, "argument %d is %s", i+1, operand.Kind())
		}
		values, err := vectors.AsLogical(operand)
		if err != nil {
			return tribool.Missing, opError(op, ErrType, "%v", err)
		}
		t = t.scan(values)
	}
	if dropMissing {
		t.haveMissing = false
	}

	if op == OpAll {
		return t.all(), nil
	}
	return t.any(), nil
}

func All(dropMissing bool, operands ...*vectors.Vector) (tribool.Bool, error) {
	return Reduce(OpAll, operands, dropMissing)
}

func Any(dropMissing bool, operands ...*vectors.Vector) (tribool.Bool, error) {
	return Reduce(OpAny, operands, dropMissing)
}
