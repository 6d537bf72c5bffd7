package logic

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/reusee/tailogic/logs"
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
)

func TestCall(t *testing.T) {
	res, err := Call(OpNot, lgl(T, NA))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]tribool.Bool{F, NA}, res.Value.Logicals()); diff != "" {
		t.Fatal(diff)
	}

	res, err = Call(OpOr, lgl(F), lgl(T, F))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]tribool.Bool{T, F}, res.Value.Logicals()); diff != "" {
		t.Fatal(diff)
	}

	res, err = Call(OpAny, lgl(F), lgl(NA))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]tribool.Bool{NA}, res.Value.Logicals()); diff != "" {
		t.Fatal(diff)
	}
}

func TestCallArity(t *testing.T) {
	cases := []struct {
		op   Op
		args int
	}{
		{OpAnd, 1},
		{OpAnd, 3},
		{OpOr, 0},
		{OpNot, 2},
		{OpNot, 0},
		{OpAndElse, 2},
		{OpOrElse, 2},
	}
	for _, c := range cases {
		args := make([]*vectors.Vector, c.args)
		for i := range args {
			args[i] = lgl(T)
		}
		_, err := Call(c.op, args...)
		if !errors.Is(err, ErrArity) {
			t.Fatalf("%v with %d: got %v", c.op, c.args, err)
		}
	}
	if _, err := Call(Op(0)); !errors.Is(err, ErrInvalidOp) {
		t.Fatalf("got %v", err)
	}
}

func TestOpString(t *testing.T) {
	var names []string
	for _, op := range []Op{OpAnd, OpOr, OpNot, OpAndElse, OpOrElse, OpAll, OpAny, Op(0)} {
		names = append(names, op.String())
	}
	if s := strings.Join(names, " "); s != "& | ! && || all any invalid" {
		t.Fatalf("got %s", s)
	}
}

func TestHandleWarning(t *testing.T) {
	buf := new(strings.Builder)
	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		handle HandleWarning,
	) {
		res, err := And(lgl(T, F), lgl(T, T, T))
		if err != nil {
			t.Fatal(err)
		}
		for _, w := range res.Warnings {
			handle(context.Background(), w)
		}
		out := buf.String()
		if !strings.Contains(out, "recycling length mismatch") ||
			!strings.Contains(out, "longer=3") ||
			!strings.Contains(out, "shorter=2") {
			t.Fatalf("got %s", out)
		}
	})
}
