package vectors

import (
	"fmt"
	"math"
	"slices"

	"github.com/reusee/tailogic/tribool"
)

const (
	NAInteger = math.MinInt32
	NAString  = "\x00NA\x00"
)

// NADouble is the double missing marker. Any NaN is treated as missing.
var NADouble = math.NaN()

// Vector is an immutable typed sequence with structural metadata.
// Exactly one payload slice, selected by Kind, is populated.
type Vector struct {
	kind      Kind
	logicals  []tribool.Bool
	integers  []int
	doubles   []float64
	complexes []complex128
	strings   []string
	attrs     Attrs
}

var null = &Vector{kind: KindNull}

// Null returns the empty "no values" vector.
func Null() *Vector {
	return null
}

func NewLogical(values ...tribool.Bool) *Vector {
	return &Vector{
		kind:     KindLogical,
		logicals: slices.Clone(values),
	}
}

func NewInteger(values ...int) *Vector {
	return &Vector{
		kind:     KindInteger,
		integers: slices.Clone(values),
	}
}

func NewDouble(values ...float64) *Vector {
	return &Vector{
		kind:    KindDouble,
		doubles: slices.Clone(values),
	}
}

func NewComplex(values ...complex128) *Vector {
	return &Vector{
		kind:      KindComplex,
		complexes: slices.Clone(values),
	}
}

func NewCharacter(values ...string) *Vector {
	return &Vector{
		kind:    KindCharacter,
		strings: slices.Clone(values),
	}
}

func (v *Vector) Kind() Kind {
	return v.kind
}

func (v *Vector) Len() int {
	switch v.kind {
	case KindLogical:
		return len(v.logicals)
	case KindInteger:
		return len(v.integers)
	case KindDouble:
		return len(v.doubles)
	case KindComplex:
		return len(v.complexes)
	case KindCharacter:
		return len(v.strings)
	}
	return 0
}

// Attrs returns a copy of the metadata.
func (v *Vector) Attrs() Attrs {
	return v.attrs.Clone()
}

func (v *Vector) Dim() []int {
	return slices.Clone(v.attrs.Dim)
}

func (v *Vector) Names() []string {
	return slices.Clone(v.attrs.Names)
}

func (v *Vector) Tsp() *Tsp {
	if v.attrs.Tsp == nil {
		return nil
	}
	tsp := *v.attrs.Tsp
	return &tsp
}

// The accessors below return the payload for the matching kind and nil otherwise.
// Callers must not modify the returned slices.

func (v *Vector) Logicals() []tribool.Bool {
	return v.logicals
}

func (v *Vector) Integers() []int {
	return v.integers
}

func (v *Vector) Doubles() []float64 {
	return v.doubles
}

func (v *Vector) Complexes() []complex128 {
	return v.complexes
}

func (v *Vector) Strings() []string {
	return v.strings
}

func (v *Vector) shallow() *Vector {
	ret := *v
	ret.attrs = v.attrs.Clone()
	return &ret
}

// WithAttrs returns a copy of v carrying attrs.
// Consistency between attrs and the payload is not checked.
func (v *Vector) WithAttrs(attrs Attrs) *Vector {
	if v.kind == KindNull {
		return v
	}
	ret := v.shallow()
	ret.attrs = attrs.Clone()
	return ret
}

// WithDim returns an array-shaped copy of v. Element names are dropped.
func (v *Vector) WithDim(dim ...int) (*Vector, error) {
	if v.kind == KindNull {
		return nil, fmt.Errorf("cannot set dim on NULL")
	}
	if len(dim) == 0 {
		ret := v.shallow()
		ret.attrs.Dim = nil
		ret.attrs.DimNames = nil
		return ret, nil
	}
	product := 1
	for _, n := range dim {
		// extents and their product stay within the integer range
		if n <= 0 || n > math.MaxInt32/product {
			return nil, fmt.Errorf("invalid dim: %v", dim)
		}
		product *= n
	}
	if product != v.Len() {
		return nil, fmt.Errorf("dims [product %d] do not match the length of object [%d]", product, v.Len())
	}
	ret := v.shallow()
	ret.attrs.Dim = slices.Clone(dim)
	ret.attrs.DimNames = nil
	ret.attrs.Names = nil
	return ret, nil
}

// WithDimNames sets per-dimension names. A nil entry leaves that dimension unnamed.
func (v *Vector) WithDimNames(names ...[]string) (*Vector, error) {
	if v.attrs.Dim == nil {
		return nil, fmt.Errorf("dimnames applied to non-array")
	}
	if len(names) != len(v.attrs.Dim) {
		return nil, fmt.Errorf("length of dimnames [%d] must match that of dims [%d]", len(names), len(v.attrs.Dim))
	}
	for i, n := range names {
		if n != nil && len(n) != v.attrs.Dim[i] {
			return nil, fmt.Errorf("length of dimnames [%d] not equal to array extent", i+1)
		}
	}
	ret := v.shallow()
	ret.attrs.DimNames = Attrs{DimNames: names}.Clone().DimNames
	return ret, nil
}

func (v *Vector) WithNames(names ...string) (*Vector, error) {
	if v.attrs.Dim != nil {
		return nil, fmt.Errorf("names applied to array")
	}
	if len(names) != v.Len() {
		return nil, fmt.Errorf("names attribute [%d] must be the same length as the vector [%d]", len(names), v.Len())
	}
	ret := v.shallow()
	ret.attrs.Names = slices.Clone(names)
	return ret, nil
}

// WithTsp marks v as a regular time series with class "ts".
func (v *Vector) WithTsp(tsp Tsp) (*Vector, error) {
	if tsp.Frequency <= 0 {
		return nil, fmt.Errorf("invalid time series frequency: %v", tsp.Frequency)
	}
	n := math.Round((tsp.End-tsp.Start)*tsp.Frequency) + 1
	if n != float64(v.Len()) {
		return nil, fmt.Errorf("invalid time series parameters specified")
	}
	ret := v.shallow()
	ret.attrs.Tsp = &tsp
	if !slices.Contains(ret.attrs.Class, "ts") {
		ret.attrs.Class = append(ret.attrs.Class, "ts")
	}
	return ret, nil
}
