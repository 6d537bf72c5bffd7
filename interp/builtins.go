package interp

import (
	"fmt"
	"math"
	"slices"

	"github.com/reusee/tailogic/logic"
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
)

var builtins = map[string]Func{
	"c":        builtinC,
	"logical":  builtinLogical,
	"integer":  builtinInteger,
	"double":   builtinDouble,
	"array":    builtinArray,
	"dimnames": builtinDimNames,
	"names":    builtinNames,
	"ts":       builtinTs,
	"length":   builtinLength,
	"dim":      builtinDim,
	"all":      reduction(logic.OpAll),
	"any":      reduction(logic.OpAny),
	"land":     operator(logic.OpAnd),
	"lor":      operator(logic.OpOr),
	"lnot":     operator(logic.OpNot),
	"is_na":    builtinIsNA,
}

func checkArgs(name string, args []*vectors.Vector, kwargs map[string]*vectors.Vector, minArgs, maxArgs int, keywords ...string) error {
	if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
		return fmt.Errorf("%w: %s: %d arguments passed", ErrArgument, name, len(args))
	}
	for key := range kwargs {
		if !slices.Contains(keywords, key) {
			return fmt.Errorf("%w: %s: unused argument %s", ErrArgument, name, key)
		}
	}
	return nil
}

func scalarInt(name string, v *vectors.Vector) (int, error) {
	ints, err := vectors.AsInts(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrArgument, name, err)
	}
	if len(ints) == 0 || ints[0] == vectors.NAInteger {
		return 0, fmt.Errorf("%w: %s: invalid value", ErrArgument, name)
	}
	return ints[0], nil
}

func scalarDouble(name string, v *vectors.Vector) (float64, error) {
	doubles, err := vectors.AsDoubles(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrArgument, name, err)
	}
	if len(doubles) == 0 {
		return 0, fmt.Errorf("%w: %s: invalid value", ErrArgument, name)
	}
	return doubles[0], nil
}

func length(name string, args []*vectors.Vector) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := scalarInt(name, args[0])
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s: invalid 'length' argument", ErrArgument, name)
	}
	return n, nil
}

func builtinC(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("c", args, kwargs, 0, -1); err != nil {
		return nil, err
	}
	return vectors.Combine(args...), nil
}

func builtinLogical(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("logical", args, kwargs, 0, 1); err != nil {
		return nil, err
	}
	n, err := length("logical", args)
	if err != nil {
		return nil, err
	}
	return vectors.NewLogical(make([]tribool.Bool, n)...), nil
}

func builtinInteger(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("integer", args, kwargs, 0, 1); err != nil {
		return nil, err
	}
	n, err := length("integer", args)
	if err != nil {
		return nil, err
	}
	return vectors.NewInteger(make([]int, n)...), nil
}

func builtinDouble(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("double", args, kwargs, 0, 1); err != nil {
		return nil, err
	}
	n, err := length("double", args)
	if err != nil {
		return nil, err
	}
	return vectors.NewDouble(make([]float64, n)...), nil
}

// array(data, dim) recycles data to fill the given extents.
func builtinArray(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("array", args, kwargs, 1, 2, "dim"); err != nil {
		return nil, err
	}
	data := args[0]
	if vectors.IsNull(data) {
		data = vectors.NewLogical(tribool.Missing)
	}
	dimArg := kwargs["dim"]
	if len(args) == 2 {
		if dimArg != nil {
			return nil, fmt.Errorf("%w: array: dim given twice", ErrArgument)
		}
		dimArg = args[1]
	}
	dim := []int{data.Len()}
	if dimArg != nil {
		var err error
		dim, err = vectors.AsInts(dimArg)
		if err != nil {
			return nil, fmt.Errorf("%w: array: %v", ErrArgument, err)
		}
	}
	n := 1
	for _, d := range dim {
		if d <= 0 || d > math.MaxInt32/n {
			return nil, fmt.Errorf("%w: array: invalid dim %v", ErrArgument, dim)
		}
		n *= d
	}
	ret, err := vectors.Recycle(data, n).WithDim(dim...)
	if err != nil {
		return nil, fmt.Errorf("%w: array: %v", ErrArgument, err)
	}
	return ret, nil
}

// dimnames(x, names...) takes one character vector or NULL per dimension.
func builtinDimNames(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("dimnames", args, kwargs, 1, -1); err != nil {
		return nil, err
	}
	names := make([][]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		switch {
		case vectors.IsNull(arg):
			names = append(names, nil)
		case arg.Kind() == vectors.KindCharacter:
			names = append(names, arg.Strings())
		default:
			return nil, fmt.Errorf("%w: dimnames: names must be character", ErrArgument)
		}
	}
	ret, err := args[0].WithDimNames(names...)
	if err != nil {
		return nil, fmt.Errorf("%w: dimnames: %v", ErrArgument, err)
	}
	return ret, nil
}

// names(x) returns the element names of x; names(x, nm) sets them.
func builtinNames(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("names", args, kwargs, 1, 2); err != nil {
		return nil, err
	}
	x := args[0]
	if len(args) == 1 {
		if names := x.Names(); names != nil {
			return vectors.NewCharacter(names...), nil
		}
		return vectors.Null(), nil
	}
	nm := args[1]
	if vectors.IsNull(nm) {
		attrs := x.Attrs()
		attrs.Names = nil
		return x.WithAttrs(attrs), nil
	}
	if nm.Kind() != vectors.KindCharacter {
		return nil, fmt.Errorf("%w: names: names must be character", ErrArgument)
	}
	ret, err := x.WithNames(nm.Strings()...)
	if err != nil {
		return nil, fmt.Errorf("%w: names: %v", ErrArgument, err)
	}
	return ret, nil
}

// ts(data, start=1, frequency=1) marks data as a regular time series.
func builtinTs(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("ts", args, kwargs, 1, 1, "start", "frequency"); err != nil {
		return nil, err
	}
	data := args[0]
	if data.Len() == 0 {
		return nil, fmt.Errorf("%w: ts: 'ts' object must have one or more observations", ErrArgument)
	}
	start, frequency := 1.0, 1.0
	var err error
	if v, ok := kwargs["start"]; ok {
		if start, err = scalarDouble("ts", v); err != nil {
			return nil, err
		}
	}
	if v, ok := kwargs["frequency"]; ok {
		if frequency, err = scalarDouble("ts", v); err != nil {
			return nil, err
		}
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("%w: ts: frequency must be positive", ErrArgument)
	}
	ret, err := data.WithTsp(vectors.Tsp{
		Start:     start,
		End:       start + float64(data.Len()-1)/frequency,
		Frequency: frequency,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ts: %v", ErrArgument, err)
	}
	return ret, nil
}

func builtinLength(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("length", args, kwargs, 1, 1); err != nil {
		return nil, err
	}
	return vectors.NewInteger(args[0].Len()), nil
}

func builtinDim(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("dim", args, kwargs, 1, 1); err != nil {
		return nil, err
	}
	dim := args[0].Dim()
	if dim == nil {
		return vectors.Null(), nil
	}
	return vectors.NewInteger(dim...), nil
}

func reduction(op logic.Op) Func {
	return func(env *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
		if err := checkArgs(op.String(), args, kwargs, 0, -1, "na_rm"); err != nil {
			return nil, err
		}
		dropMissing := env.options.DropMissing
		if v, ok := kwargs["na_rm"]; ok {
			switch vectors.AsScalarLogical(v) {
			case tribool.True:
				dropMissing = true
			case tribool.False:
				dropMissing = false
			default:
				return nil, fmt.Errorf("%w: %s: invalid 'na_rm' argument", ErrArgument, op)
			}
		}
		b, err := logic.Reduce(op, args, dropMissing)
		if err != nil {
			return nil, err
		}
		return vectors.NewLogical(b), nil
	}
}

func operator(op logic.Op) Func {
	return func(env *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
		if err := checkArgs(op.String(), args, kwargs, 0, -1); err != nil {
			return nil, err
		}
		res, err := logic.Call(op, args...)
		if err != nil {
			return nil, err
		}
		return env.handleResult(res)
	}
}

func builtinIsNA(_ *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error) {
	if err := checkArgs("is_na", args, kwargs, 1, 1); err != nil {
		return nil, err
	}
	x := args[0]
	mask := vectors.MissingMask(x)
	values := make([]tribool.Bool, len(mask))
	for i, missing := range mask {
		values[i] = tribool.Of(missing)
	}
	attrs := x.Attrs()
	return vectors.NewLogical(values...).WithAttrs(vectors.Attrs{
		Dim:      attrs.Dim,
		DimNames: attrs.DimNames,
		Names:    attrs.Names,
	}), nil
}
