package vectors

import (
	"math"
	"math/cmplx"
	"strconv"

	"github.com/reusee/tailogic/tribool"
)

// Combine concatenates vectors, promoting to the greatest kind among them.
// NULL operands are skipped. Element names are kept when any operand has them.
// Other metadata is dropped.
func Combine(vs ...*Vector) *Vector {
	kind := KindNull
	named := false
	for _, v := range vs {
		kind = max(kind, v.kind)
		if v.attrs.Names != nil {
			named = true
		}
	}
	if kind == KindNull {
		return Null()
	}

	ret := &Vector{kind: kind}
	var names []string
	for _, v := range vs {
		n := v.Len()
		for i := range n {
			switch kind {
			case KindLogical:
				ret.logicals = append(ret.logicals, v.logicals[i])
			case KindInteger:
				ret.integers = append(ret.integers, elemInteger(v, i))
			case KindDouble:
				ret.doubles = append(ret.doubles, elemDouble(v, i))
			case KindComplex:
				ret.complexes = append(ret.complexes, elemComplex(v, i))
			case KindCharacter:
				ret.strings = append(ret.strings, elemString(v, i))
			}
		}
		if named {
			if v.attrs.Names != nil {
				names = append(names, v.attrs.Names...)
			} else {
				for range n {
					names = append(names, "")
				}
			}
		}
	}
	if named {
		ret.attrs.Names = names
	}
	return ret
}

func elemInteger(v *Vector, i int) int {
	switch v.kind {
	case KindLogical:
		if v.logicals[i] == tribool.Missing {
			return NAInteger
		}
		return int(v.logicals[i])
	case KindInteger:
		return v.integers[i]
	}
	return NAInteger
}

func elemDouble(v *Vector, i int) float64 {
	switch v.kind {
	case KindLogical, KindInteger:
		n := elemInteger(v, i)
		if n == NAInteger {
			return NADouble
		}
		return float64(n)
	case KindDouble:
		return v.doubles[i]
	}
	return NADouble
}

func elemComplex(v *Vector, i int) complex128 {
	switch v.kind {
	case KindComplex:
		return v.complexes[i]
	}
	d := elemDouble(v, i)
	if math.IsNaN(d) {
		return cmplx.NaN()
	}
	return complex(d, 0)
}

func elemString(v *Vector, i int) string {
	if v.kind == KindCharacter {
		return v.strings[i]
	}
	s := formatElem(v, i)
	if s == "NA" {
		return NAString
	}
	return s
}

func formatElem(v *Vector, i int) string {
	switch v.kind {
	case KindLogical:
		return v.logicals[i].String()
	case KindInteger:
		if v.integers[i] == NAInteger {
			return "NA"
		}
		return strconv.Itoa(v.integers[i])
	case KindDouble:
		return formatDouble(v.doubles[i])
	case KindComplex:
		c := v.complexes[i]
		if cmplx.IsNaN(c) {
			return "NA"
		}
		im := imag(c)
		sign := "+"
		if im < 0 || math.Signbit(im) {
			sign = "-"
			im = -im
		}
		return formatDouble(real(c)) + sign + formatDouble(im) + "i"
	case KindCharacter:
		if v.strings[i] == NAString {
			return "NA"
		}
		return strconv.Quote(v.strings[i])
	}
	return ""
}

func formatDouble(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NA"
	case math.IsInf(x, 1):
		return "Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(x, 'g', 7, 64)
}

// Recycle repeats the elements of v cyclically to length n. Metadata is dropped.
func Recycle(v *Vector, n int) *Vector {
	if v.kind == KindNull {
		return v
	}
	m := v.Len()
	ret := &Vector{kind: v.kind}
	if m == 0 {
		n = 0
	}
	switch v.kind {
	case KindLogical:
		ret.logicals = make([]tribool.Bool, n)
	case KindInteger:
		ret.integers = make([]int, n)
	case KindDouble:
		ret.doubles = make([]float64, n)
	case KindComplex:
		ret.complexes = make([]complex128, n)
	case KindCharacter:
		ret.strings = make([]string, n)
	}
	for i := range n {
		j := i % m
		switch v.kind {
		case KindLogical:
			ret.logicals[i] = v.logicals[j]
		case KindInteger:
			ret.integers[i] = v.integers[j]
		case KindDouble:
			ret.doubles[i] = v.doubles[j]
		case KindComplex:
			ret.complexes[i] = v.complexes[j]
		case KindCharacter:
			ret.strings[i] = v.strings[j]
		}
	}
	return ret
}
