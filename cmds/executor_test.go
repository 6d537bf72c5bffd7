package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{"+a"}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatalf("got %d", a)
	}
	if err := executor.Execute([]string{"a", "1"}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatalf("got %d", a)
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"a", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	sentinel := errors.New("foo")
	executor.Define("fail", Func(func() error {
		return sentinel
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); !errors.Is(err, sentinel) {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))
	if err := executor.Execute([]string{"foo", "bar", "baz", "42"}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 || baz != 42 {
		t.Fatalf("got %d %d", bar, baz)
	}
	if err := executor.Execute([]string{"bar"}); err == nil {
		t.Fatal("sub command should not be visible at top level")
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "bar"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "bar" {
		t.Fatalf("got %d %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %d %q", n, s)
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("eval", Func(func(string) {}).Desc("evaluate"))
	executor.Define("repl", Sub(map[string]*Command{
		"history": Func(func(string) {}).Desc("history file"),
	}).Desc("interactive"))
	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	out := buf.String()
	for _, expected := range []string{
		"eval\tevaluate",
		"  history\thistory file",
		"-h (help, -help, --help)\tprint this usage",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in %s", expected, out)
		}
	}
}

func TestVar(t *testing.T) {
	a := Var[int]("TestVar.int")
	b := Var[string]("TestVar.string")
	GlobalExecutor.MustExecute([]string{
		"TestVar.int", "42",
		"TestVar.string", "bar",
	})
	if *a != 42 || *b != "bar" {
		t.Fatalf("got %d %q", *a, *b)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{"TestSwitch"})
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{"!TestSwitch"})
	if *foo {
		t.Fatal()
	}
}
