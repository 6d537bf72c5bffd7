package starlarks

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/tailogic/logic"
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
	"go.starlark.net/starlark"
)

func TestFromValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    starlark.Value
		expected string
	}{
		{"none", starlark.None, "[1] NA"},
		{"bool", starlark.True, "[1] TRUE"},
		{"int", starlark.MakeInt(42), "[1] 42"},
		{"big int", starlark.MakeInt64(math.MaxInt64), "[1] 9.223372e+18"},
		{"float", starlark.Float(1.5), "[1] 1.5"},
		{"string", starlark.String("a"), `[1] "a"`},
		{"list", starlark.NewList([]starlark.Value{starlark.True, starlark.None, starlark.False}), "[1] TRUE NA FALSE"},
		{"tuple", starlark.Tuple{starlark.MakeInt(1), starlark.Float(2.5)}, "[1] 1 2.5"},
		{"empty list", starlark.NewList(nil), "logical(0)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := FromValue(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := v.String(); got != tc.expected {
				t.Fatalf("got %s", got)
			}
		})
	}

	_, err := FromValue(starlark.NewBuiltin("f", nil))
	if !errors.Is(err, logic.ErrType) {
		t.Fatalf("got %v", err)
	}
}

func TestToValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    *vectors.Vector
		expected starlark.Value
	}{
		{"null", vectors.Null(), starlark.None},
		{"scalar", vectors.NewLogical(tribool.True), starlark.True},
		{"missing", vectors.NewLogical(tribool.Missing), starlark.None},
		{"integers", vectors.NewInteger(1, vectors.NAInteger), starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.None})},
		{"double", vectors.NewDouble(2.5), starlark.Float(2.5)},
		{"strings", vectors.NewCharacter("a", "b"), starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToValue(tc.input)
			if diff := cmp.Diff(tc.expected.String(), got.String()); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
