package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/tailogic/cmds"
	"github.com/reusee/tailogic/interp"
	"github.com/reusee/tailogic/logicconfigs"
	"github.com/reusee/tailogic/logs"
	"github.com/reusee/tailogic/modes"
	"github.com/reusee/tailogic/starlarks"
	"golang.org/x/term"
)

var (
	evalSrc  string
	filePath string
	starPath string
	batchPat string
	doREPL   bool
)

func init() {
	cmds.Define("eval", cmds.Func(func(src string) {
		evalSrc = src
	}).Desc("evaluate an expression"))
	cmds.Define("file", cmds.Func(func(path string) {
		filePath = path
	}).Desc("run a program file"))
	cmds.Define("star", cmds.Func(func(path string) {
		starPath = path
	}).Desc("run a starlark program with the logical builtins"))
	cmds.Define("batch", cmds.Func(func(pattern string) {
		batchPat = pattern
	}).Desc("run every program file matching a glob pattern"))
	cmds.Define("repl", cmds.Func(func() {
		doREPL = true
	}).Desc("start an interactive prompt"))
}

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		newEnv interp.NewEnv,
		newSpan logs.NewSpan,
		logger logs.Logger,
		execStarlark starlarks.Exec,
	) {
		ctx, _ := newSpan(context.Background(), "")
		env := newEnv()
		out, err := getPrinter(*formatFlag)
		ce(err)

		switch {

		case evalSrc != "":
			ce(run(ctx, env, "eval", evalSrc, out))

		case filePath != "":
			src, err := os.ReadFile(filePath)
			ce(err)
			ce(run(ctx, env, filePath, string(src), out))

		case starPath != "":
			src, err := os.ReadFile(starPath)
			ce(err)
			_, err = execStarlark(ctx, starPath, src, os.Stdout)
			ce(err)

		case batchPat != "":
			paths, err := filepath.Glob(batchPat)
			ce(err)
			if n := runBatch(ctx, newEnv, paths, out, os.Stdout); n > 0 {
				ce(fmt.Errorf("%d of %d files failed", n, len(paths)))
			}

		case doREPL || term.IsTerminal(int(os.Stdin.Fd())):
			runREPL(ctx, env, logger, out)

		default:
			src, err := io.ReadAll(os.Stdin)
			ce(err)
			ce(run(ctx, env, "stdin", string(src), out))

		}
	})
}

func run(ctx context.Context, env *interp.Env, name string, src string, out printer) error {
	v, err := env.Exec(ctx, name, src)
	if err != nil {
		return logs.WrapSpan(ctx, err)
	}
	if v != nil {
		if err := out(os.Stdout, v); err != nil {
			return err
		}
	}
	printWarnings(os.Stderr, env)
	return nil
}

// printWarnings reports warnings that were collected but not logged as they occurred.
func printWarnings(w io.Writer, env *interp.Env) {
	warnings := env.TakeWarnings()
	if env.Options().WarnLevel != logicconfigs.WarnCollect {
		return
	}
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: %v\n", warning)
	}
}

func ce(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
