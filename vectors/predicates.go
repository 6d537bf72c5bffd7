package vectors

import (
	"math"
	"math/cmplx"
	"slices"

	"github.com/reusee/tailogic/tribool"
)

// IsNumeric reports whether v is logical, integer or double.
// Complex vectors are not numeric for logical operators.
func IsNumeric(v *Vector) bool {
	switch v.kind {
	case KindLogical, KindInteger, KindDouble:
		return true
	}
	return false
}

func IsLogical(v *Vector) bool {
	return v.kind == KindLogical
}

// IsLogicalCoercible reports whether v can be coerced to logical by AsLogical.
func IsLogicalCoercible(v *Vector) bool {
	switch v.kind {
	case KindLogical, KindInteger, KindDouble, KindComplex:
		return true
	}
	return false
}

func IsNull(v *Vector) bool {
	return v.kind == KindNull
}

func IsArray(v *Vector) bool {
	return len(v.attrs.Dim) > 0
}

func IsTimeSeries(v *Vector) bool {
	return v.attrs.Tsp != nil
}

// Conformable reports whether two arrays have identical shapes.
func Conformable(x, y *Vector) bool {
	return slices.Equal(x.attrs.Dim, y.attrs.Dim)
}

// TimeConformable reports whether two time series share sampling parameters.
func TimeConformable(x, y *Vector) bool {
	if x.attrs.Tsp == nil || y.attrs.Tsp == nil {
		return false
	}
	return *x.attrs.Tsp == *y.attrs.Tsp
}

// MissingMask reports, per element, whether the element is NA.
func MissingMask(v *Vector) []bool {
	ret := make([]bool, v.Len())
	for i := range ret {
		switch v.kind {
		case KindLogical:
			ret[i] = v.logicals[i] == tribool.Missing
		case KindInteger:
			ret[i] = v.integers[i] == NAInteger
		case KindDouble:
			ret[i] = math.IsNaN(v.doubles[i])
		case KindComplex:
			ret[i] = cmplx.IsNaN(v.complexes[i])
		case KindCharacter:
			ret[i] = v.strings[i] == NAString
		}
	}
	return ret
}
