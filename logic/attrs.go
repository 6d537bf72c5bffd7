package logic

import (
	"github.com/reusee/tailogic/vectors"
)

// reconcile derives the metadata of a binary result of length n from its operands.
// It fails before any element is computed when the operands' shapes or series
// parameters disagree.
func reconcile(op Op, x, y *vectors.Vector, n int) (attrs vectors.Attrs, err error) {
	xattrs, yattrs := x.Attrs(), y.Attrs()
	xarray, yarray := vectors.IsArray(x), vectors.IsArray(y)

	if xarray || yarray {
		if xarray && yarray && !vectors.Conformable(x, y) {
			return attrs, opError(op, ErrNonConformable, "%v and %v", xattrs.Dim, yattrs.Dim)
		}
		dim, dimNames := xattrs.Dim, xattrs.DimNames
		if !xarray {
			dim = yattrs.Dim
		}
		if dimNames == nil {
			dimNames = yattrs.DimNames
		}
		product := 1
		for _, d := range dim {
			product *= d
		}
		if n > 0 && product != n {
			return attrs, opError(op, ErrNonConformable,
				"dims [product %d] do not match the length of object [%d]", product, n)
		}
		attrs.Dim = dim
		attrs.DimNames = dimNames

	} else {
		if len(xattrs.Names) == n && xattrs.Names != nil {
			attrs.Names = xattrs.Names
		} else if len(yattrs.Names) == n && yattrs.Names != nil {
			attrs.Names = yattrs.Names
		}
	}

	xts, yts := vectors.IsTimeSeries(x), vectors.IsTimeSeries(y)
	switch {
	case xts && yts:
		if !vectors.TimeConformable(x, y) {
			return attrs, opError(op, ErrTimeSeriesMismatch, "%v and %v", *xattrs.Tsp, *yattrs.Tsp)
		}
		attrs.Tsp, attrs.Class = xattrs.Tsp, xattrs.Class
	case xts:
		if x.Len() < y.Len() {
			return attrs, opError(op, ErrTimeSeriesMismatch,
				"time-series/vector length mismatch: %d < %d", x.Len(), y.Len())
		}
		attrs.Tsp, attrs.Class = xattrs.Tsp, xattrs.Class
	case yts:
		if y.Len() < x.Len() {
			return attrs, opError(op, ErrTimeSeriesMismatch,
				"time-series/vector length mismatch: %d < %d", y.Len(), x.Len())
		}
		attrs.Tsp, attrs.Class = yattrs.Tsp, yattrs.Class
	}

	// an empty result carries no metadata
	if n == 0 {
		return vectors.Attrs{}, nil
	}

	return attrs, nil
}
