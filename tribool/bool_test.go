package tribool

import "testing"

var all = []Bool{True, False, Missing}

func TestCommutative(t *testing.T) {
	for _, a := range all {
		for _, b := range all {
			if And(a, b) != And(b, a) {
				t.Fatalf("and %v %v", a, b)
			}
			if Or(a, b) != Or(b, a) {
				t.Fatalf("or %v %v", a, b)
			}
		}
	}
}

func TestTruthTable(t *testing.T) {
	cases := []struct {
		a, b    Bool
		and, or Bool
	}{
		{True, True, True, True},
		{True, False, False, True},
		{False, False, False, False},
		{True, Missing, Missing, True},
		{False, Missing, False, Missing},
		{Missing, Missing, Missing, Missing},
	}
	for _, c := range cases {
		if got := And(c.a, c.b); got != c.and {
			t.Fatalf("%v & %v: got %v", c.a, c.b, got)
		}
		if got := Or(c.a, c.b); got != c.or {
			t.Fatalf("%v | %v: got %v", c.a, c.b, got)
		}
	}
}

func TestNot(t *testing.T) {
	for _, b := range []Bool{True, False} {
		if Not(Not(b)) != b {
			t.Fatalf("got %v", Not(Not(b)))
		}
	}
	if Not(Missing) != Missing {
		t.Fatal()
	}
	if Not(True) != False {
		t.Fatal()
	}
}

func TestString(t *testing.T) {
	if s := Of(true).String() + " " + Of(false).String() + " " + Missing.String(); s != "TRUE FALSE NA" {
		t.Fatalf("got %s", s)
	}
	if !Missing.IsMissing() || True.IsMissing() {
		t.Fatal()
	}
}
