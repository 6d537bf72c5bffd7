package starlarks

import (
	"fmt"

	"github.com/reusee/tailogic/logic"
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
	"go.starlark.net/starlark"
)

// FromValue converts a starlark value to a vector.
// None is NA, iterables are concatenated like c().
func FromValue(v starlark.Value) (*vectors.Vector, error) {
	switch v := v.(type) {

	case starlark.NoneType:
		return vectors.NewLogical(tribool.Missing), nil

	case starlark.Bool:
		return vectors.NewLogical(tribool.Of(bool(v))), nil

	case starlark.Int:
		if n, err := starlark.AsInt32(v); err == nil && n != vectors.NAInteger {
			return vectors.NewInteger(n), nil
		}
		return vectors.NewDouble(float64(v.Float())), nil

	case starlark.Float:
		return vectors.NewDouble(float64(v)), nil

	case starlark.String:
		return vectors.NewCharacter(string(v)), nil

	}

	iter := starlark.Iterate(v)
	if iter == nil {
		return nil, fmt.Errorf("%w: cannot convert %s", logic.ErrType, v.Type())
	}
	defer iter.Done()
	var elems []*vectors.Vector
	var elem starlark.Value
	for iter.Next(&elem) {
		e, err := FromValue(elem)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	if len(elems) == 0 {
		return vectors.NewLogical(), nil
	}
	return vectors.Combine(elems...), nil
}

// ToValue converts v to a starlark value.
// Length-one vectors become scalars, others become lists. NA is None.
func ToValue(v *vectors.Vector) starlark.Value {
	if vectors.IsNull(v) {
		return starlark.None
	}
	missing := vectors.MissingMask(v)
	elems := make([]starlark.Value, v.Len())
	for i := range elems {
		if missing[i] {
			elems[i] = starlark.None
			continue
		}
		switch v.Kind() {
		case vectors.KindLogical:
			elems[i] = starlark.Bool(v.Logicals()[i] == tribool.True)
		case vectors.KindInteger:
			elems[i] = starlark.MakeInt(v.Integers()[i])
		case vectors.KindDouble:
			elems[i] = starlark.Float(v.Doubles()[i])
		case vectors.KindComplex:
			elems[i] = starlark.String(fmt.Sprint(v.Complexes()[i]))
		case vectors.KindCharacter:
			elems[i] = starlark.String(v.Strings()[i])
		}
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return starlark.NewList(elems)
}

func boolValue(b tribool.Bool) starlark.Value {
	switch b {
	case tribool.True:
		return starlark.True
	case tribool.False:
		return starlark.False
	}
	return starlark.None
}
