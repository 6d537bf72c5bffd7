package starlarks

import (
	"fmt"

	"github.com/reusee/tailogic/logic"
	"github.com/reusee/tailogic/vectors"
	"go.starlark.net/starlark"
)

// Builtins returns the logical operators as starlark builtins.
// Recycling warnings are passed to onWarning. dropMissing is the na_rm
// default of all and any.
func Builtins(onWarning func(logic.Warning), dropMissing bool) starlark.StringDict {
	return starlark.StringDict{
		"land": operator(logic.OpAnd, onWarning),
		"lor":  operator(logic.OpOr, onWarning),
		"lnot": operator(logic.OpNot, onWarning),
		"all":  reduction(logic.OpAll, dropMissing),
		"any":  reduction(logic.OpAny, dropMissing),
	}
}

func convertArgs(args starlark.Tuple) ([]*vectors.Vector, error) {
	ret := make([]*vectors.Vector, 0, len(args))
	for i, arg := range args {
		v, err := FromValue(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func operator(op logic.Op, onWarning func(logic.Warning)) *starlark.Builtin {
	name := map[logic.Op]string{
		logic.OpAnd: "land",
		logic.OpOr:  "lor",
		logic.OpNot: "lnot",
	}[op]
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", name)
		}
		operands, err := convertArgs(args)
		if err != nil {
			return nil, err
		}
		res, err := logic.Call(op, operands...)
		if err != nil {
			return nil, err
		}
		if onWarning != nil {
			for _, w := range res.Warnings {
				onWarning(w)
			}
		}
		return ToValue(res.Value), nil
	})
}

func reduction(op logic.Op, defaultDropMissing bool) *starlark.Builtin {
	name := op.String()
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		dropMissing := defaultDropMissing
		if err := starlark.UnpackArgs(name, nil, kwargs, "na_rm?", &dropMissing); err != nil {
			return nil, err
		}
		operands, err := convertArgs(args)
		if err != nil {
			return nil, err
		}
		b, err := logic.Reduce(op, operands, dropMissing)
		if err != nil {
			return nil, err
		}
		return boolValue(b), nil
	})
}
