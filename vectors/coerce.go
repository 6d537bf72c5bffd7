package vectors

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
	"strings"

	"github.com/reusee/tailogic/tribool"
)

// AsLogical converts a logical, integer, double or complex vector to tri-state
// values. Each representation maps its own missing marker to tribool.Missing and
// any other nonzero value to tribool.True.
func AsLogical(v *Vector) ([]tribool.Bool, error) {
	switch v.kind {
	case KindNull:
		return nil, nil
	case KindLogical:
		return v.logicals, nil
	case KindInteger:
		ret := make([]tribool.Bool, len(v.integers))
		for i, x := range v.integers {
			ret[i] = intToLogical(x)
		}
		return ret, nil
	case KindDouble:
		ret := make([]tribool.Bool, len(v.doubles))
		for i, x := range v.doubles {
			ret[i] = doubleToLogical(x)
		}
		return ret, nil
	case KindComplex:
		ret := make([]tribool.Bool, len(v.complexes))
		for i, x := range v.complexes {
			ret[i] = complexToLogical(x)
		}
		return ret, nil
	}
	return nil, fmt.Errorf("cannot coerce %s to logical", v.kind)
}

// AsScalarLogical returns the first element of v as a tri-state value.
// Empty vectors are missing. Character values accept the usual spellings of
// true and false.
func AsScalarLogical(v *Vector) tribool.Bool {
	if v.Len() == 0 {
		return tribool.Missing
	}
	switch v.kind {
	case KindLogical:
		return v.logicals[0]
	case KindInteger:
		return intToLogical(v.integers[0])
	case KindDouble:
		return doubleToLogical(v.doubles[0])
	case KindComplex:
		return complexToLogical(v.complexes[0])
	case KindCharacter:
		return stringToLogical(v.strings[0])
	}
	return tribool.Missing
}

func intToLogical(x int) tribool.Bool {
	if x == NAInteger {
		return tribool.Missing
	}
	return tribool.Of(x != 0)
}

func doubleToLogical(x float64) tribool.Bool {
	if math.IsNaN(x) {
		return tribool.Missing
	}
	return tribool.Of(x != 0)
}

func complexToLogical(x complex128) tribool.Bool {
	if cmplx.IsNaN(x) {
		return tribool.Missing
	}
	return tribool.Of(x != 0)
}

func stringToLogical(s string) tribool.Bool {
	switch strings.TrimSpace(s) {
	case "TRUE", "true", "True", "T":
		return tribool.True
	case "FALSE", "false", "False", "F":
		return tribool.False
	}
	return tribool.Missing
}

// AsInts converts an integer or double vector to Go ints, rejecting missing values.
// The returned slice is always freshly allocated.
func AsInts(v *Vector) ([]int, error) {
	switch v.kind {
	case KindInteger:
		for _, x := range v.integers {
			if x == NAInteger {
				return nil, fmt.Errorf("missing value in integer vector")
			}
		}
		return slices.Clone(v.integers), nil
	case KindDouble:
		ret := make([]int, len(v.doubles))
		for i, x := range v.doubles {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("non-finite value in integer context")
			}
			ret[i] = int(x)
		}
		return ret, nil
	case KindLogical:
		ret := make([]int, len(v.logicals))
		for i, x := range v.logicals {
			if x == tribool.Missing {
				return nil, fmt.Errorf("missing value in integer vector")
			}
			ret[i] = int(x)
		}
		return ret, nil
	}
	return nil, fmt.Errorf("cannot coerce %s to integer", v.kind)
}

// AsDoubles converts a logical, integer or double vector to float64, missing
// values becoming NaN. The returned slice is always freshly allocated.
func AsDoubles(v *Vector) ([]float64, error) {
	switch v.kind {
	case KindDouble:
		return slices.Clone(v.doubles), nil
	case KindInteger:
		ret := make([]float64, len(v.integers))
		for i, x := range v.integers {
			if x == NAInteger {
				ret[i] = NADouble
			} else {
				ret[i] = float64(x)
			}
		}
		return ret, nil
	case KindLogical:
		ret := make([]float64, len(v.logicals))
		for i, x := range v.logicals {
			if x == tribool.Missing {
				ret[i] = NADouble
			} else {
				ret[i] = float64(x)
			}
		}
		return ret, nil
	}
	return nil, fmt.Errorf("cannot coerce %s to double", v.kind)
}
