package logic

import (
	"errors"
	"testing"

	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
)

// counting evaluator: expressions are indexes into values
type evaluator struct {
	values []*vectors.Vector
	counts []int
}

func newEvaluator(values ...*vectors.Vector) *evaluator {
	return &evaluator{
		values: values,
		counts: make([]int, len(values)),
	}
}

func (e *evaluator) eval(i int) (*vectors.Vector, error) {
	e.counts[i]++
	return e.values[i], nil
}

func TestShortCircuitLaziness(t *testing.T) {
	e := newEvaluator(lgl(F), lgl(T))
	got, err := AndElse(0, 1, e.eval)
	if err != nil {
		t.Fatal(err)
	}
	if got != F {
		t.Fatalf("got %v", got)
	}
	if e.counts[1] != 0 {
		t.Fatal("second operand evaluated")
	}

	e = newEvaluator(lgl(T), lgl(F))
	got, err = OrElse(0, 1, e.eval)
	if err != nil {
		t.Fatal(err)
	}
	if got != T {
		t.Fatalf("got %v", got)
	}
	if e.counts[1] != 0 {
		t.Fatal("second operand evaluated")
	}
}

func TestShortCircuitSecond(t *testing.T) {
	cases := []struct {
		op            Op
		first, second *vectors.Vector
		expected      tribool.Bool
	}{
		{OpAndElse, lgl(T), lgl(F), F},
		{OpAndElse, lgl(T), lgl(T), T},
		{OpAndElse, vectors.NewInteger(3), vectors.NewDouble(0.5), T},
		{OpOrElse, lgl(F), lgl(T), T},
		{OpOrElse, lgl(F), vectors.NewInteger(0), F},
	}
	for _, c := range cases {
		e := newEvaluator(c.first, c.second)
		got, err := ShortCircuit(c.op, 0, 1, e.eval)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.expected {
			t.Fatalf("%v %v %v: got %v", c.first, c.op, c.second, got)
		}
		if e.counts[0] != 1 || e.counts[1] != 1 {
			t.Fatalf("got %v", e.counts)
		}
	}
}

func TestShortCircuitScalar(t *testing.T) {
	// only the first element is used
	e := newEvaluator(lgl(T, F), lgl(F, T))
	got, err := AndElse(0, 1, e.eval)
	if err != nil {
		t.Fatal(err)
	}
	if got != F {
		t.Fatalf("got %v", got)
	}
}

func TestShortCircuitErrors(t *testing.T) {
	cases := []struct {
		op            Op
		first, second *vectors.Vector
		err           error
		secondCount   int
	}{
		{OpAndElse, lgl(NA), lgl(T), ErrMissingValue, 0},
		{OpOrElse, lgl(), lgl(T), ErrMissingValue, 0},
		{OpAndElse, lgl(T), lgl(NA), ErrMissingValue, 1},
		{OpOrElse, lgl(F), vectors.NewDouble(vectors.NADouble), ErrMissingValue, 1},
		{OpAndElse, vectors.NewCharacter("TRUE"), lgl(T), ErrType, 0},
		{OpOrElse, lgl(F), vectors.NewComplex(1), ErrType, 1},
		{OpOrElse, vectors.Null(), lgl(T), ErrType, 0},
	}
	for _, c := range cases {
		e := newEvaluator(c.first, c.second)
		_, err := ShortCircuit(c.op, 0, 1, e.eval)
		if !errors.Is(err, c.err) {
			t.Fatalf("%v %v %v: got %v", c.first, c.op, c.second, err)
		}
		if e.counts[1] != c.secondCount {
			t.Fatalf("got %v", e.counts)
		}
	}

	// FALSE decides && even when the second operand would fail
	e := newEvaluator(lgl(F), lgl(NA))
	if _, err := AndElse(0, 1, e.eval); err != nil {
		t.Fatal(err)
	}
}

func TestShortCircuitEvalError(t *testing.T) {
	sentinel := errors.New("foo")
	n := 0
	_, err := OrElse("a", "b", func(expr string) (*vectors.Vector, error) {
		n++
		if expr == "b" {
			return nil, sentinel
		}
		return lgl(F), nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("got %v", err)
	}
	if n != 2 {
		t.Fatalf("got %d", n)
	}

	if _, err := ShortCircuit(OpAnd, "a", "b", func(string) (*vectors.Vector, error) {
		return lgl(T), nil
	}); !errors.Is(err, ErrInvalidOp) {
		t.Fatalf("got %v", err)
	}
}
