package logic

import (
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
)

// Not negates x element-wise. Shape, dim names and element names are preserved.
func Not(x *vectors.Vector) (*vectors.Vector, error) {
	if !vectors.IsNumeric(x) {
		return nil, opError(OpNot, ErrType, "got %s", x.Kind())
	}
	values, err := vectors.AsLogical(x)
	if err != nil {
		return nil, opError(OpNot, ErrType, "%v", err)
	}
	ret := make([]tribool.Bool, len(values))
	for i, v := range values {
		ret[i] = tribool.Not(v)
	}
	src := x.Attrs()
	return vectors.NewLogical(ret...).WithAttrs(vectors.Attrs{
		Dim:      src.Dim,
		DimNames: src.DimNames,
		Names:    src.Names,
	}), nil
}
