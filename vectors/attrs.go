package vectors

import "slices"

// Tsp holds the sampling parameters of a regular time series.
type Tsp struct {
	Start     float64
	End       float64
	Frequency float64
}

// Attrs is the structural metadata attached to a vector.
type Attrs struct {
	Dim      []int
	DimNames [][]string
	Names    []string
	Tsp      *Tsp
	Class    []string
}

func (a Attrs) Clone() Attrs {
	ret := Attrs{
		Dim:   slices.Clone(a.Dim),
		Names: slices.Clone(a.Names),
		Class: slices.Clone(a.Class),
	}
	if a.DimNames != nil {
		ret.DimNames = make([][]string, len(a.DimNames))
		for i, names := range a.DimNames {
			ret.DimNames[i] = slices.Clone(names)
		}
	}
	if a.Tsp != nil {
		tsp := *a.Tsp
		ret.Tsp = &tsp
	}
	return ret
}

func (a Attrs) IsZero() bool {
	return a.Dim == nil &&
		a.DimNames == nil &&
		a.Names == nil &&
		a.Tsp == nil &&
		a.Class == nil
}
