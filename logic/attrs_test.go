package logic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/tailogic/vectors"
)

func TestConformableArrays(t *testing.T) {
	x := must(lgl(T, F, T, F, T, F).WithDim(2, 3))
	y := must(lgl(T, T, T, F, F, F).WithDim(2, 3))
	res, err := And(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2, 3}, res.Value.Dim()); diff != "" {
		t.Fatal(diff)
	}
	if res.Value.Len() != 6 {
		t.Fatalf("got %d", res.Value.Len())
	}

	z := must(lgl(T, T, T, F, F, F).WithDim(3, 2))
	_, err = And(x, z)
	if !errors.Is(err, ErrNonConformable) {
		t.Fatalf("got %v", err)
	}
}

func TestArrayWithVector(t *testing.T) {
	x := must(must(lgl(T, F, T, F).WithDim(2, 2)).WithDimNames([]string{"a", "b"}, nil))

	res, err := Or(lgl(F), x)
	if err != nil {
		t.Fatal(err)
	}
	attrs := res.Value.Attrs()
	if diff := cmp.Diff(vectors.Attrs{
		Dim:      []int{2, 2},
		DimNames: [][]string{{"a", "b"}, nil},
	}, attrs); diff != "" {
		t.Fatal(diff)
	}

	// dim names of the first operand win
	y := must(must(lgl(T, T, T, T).WithDim(2, 2)).WithDimNames(nil, []string{"c", "d"}))
	res, err = And(y, x)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]string{nil, {"c", "d"}}, res.Value.Attrs().DimNames); diff != "" {
		t.Fatal(diff)
	}

	// longer flat operand cannot take the array's shape
	_, err = And(x, lgl(T, F, T, F, T, F, T, F))
	if !errors.Is(err, ErrNonConformable) {
		t.Fatalf("got %v", err)
	}
}

func TestNames(t *testing.T) {
	x := must(lgl(T, F).WithNames("a", "b"))
	y := must(lgl(T, F, T, F).WithNames("w", "x", "y", "z"))

	res, err := And(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"w", "x", "y", "z"}, res.Value.Names()); diff != "" {
		t.Fatal(diff)
	}

	res, err = And(x, lgl(T, T, T, T))
	if err != nil {
		t.Fatal(err)
	}
	if res.Value.Names() != nil {
		t.Fatalf("got %v", res.Value.Names())
	}

	z := must(lgl(F, F).WithNames("c", "d"))
	res, err = Or(x, z)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, res.Value.Names()); diff != "" {
		t.Fatal(diff)
	}
}

func TestTimeSeries(t *testing.T) {
	tsp := vectors.Tsp{Start: 1, End: 4, Frequency: 1}
	x := must(lgl(T, F, T, F).WithTsp(tsp))

	res, err := And(x, lgl(T, T))
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Value.Tsp(); got == nil || *got != tsp {
		t.Fatalf("got %v", got)
	}
	if diff := cmp.Diff([]string{"ts"}, res.Value.Attrs().Class); diff != "" {
		t.Fatal(diff)
	}

	res, err = Or(lgl(F), x)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Value.Tsp(); got == nil || *got != tsp {
		t.Fatalf("got %v", got)
	}

	// vector longer than the series
	_, err = And(x, lgl(T, T, T, T, T, T, T, T))
	if !errors.Is(err, ErrTimeSeriesMismatch) {
		t.Fatalf("got %v", err)
	}
	_, err = And(lgl(T, T, T, T, T, T, T, T), x)
	if !errors.Is(err, ErrTimeSeriesMismatch) {
		t.Fatalf("got %v", err)
	}

	// both series
	same := must(lgl(F, F, F, F).WithTsp(tsp))
	if _, err := And(x, same); err != nil {
		t.Fatal(err)
	}
	shifted := must(lgl(F, F, F, F).WithTsp(vectors.Tsp{Start: 2, End: 5, Frequency: 1}))
	_, err = And(x, shifted)
	if !errors.Is(err, ErrTimeSeriesMismatch) {
		t.Fatalf("got %v", err)
	}
}

func TestEmptyResultDropsAttrs(t *testing.T) {
	x := must(lgl(T, F, T, F).WithDim(2, 2))
	res, err := And(x, lgl())
	if err != nil {
		t.Fatal(err)
	}
	if res.Value.Len() != 0 || !res.Value.Attrs().IsZero() {
		t.Fatalf("got %v", res.Value.Attrs())
	}
}
