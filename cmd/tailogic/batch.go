package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/reusee/tailogic/interp"
	"golang.org/x/sync/errgroup"
)

// runBatch runs each file in its own env. Output is written in path order.
// It returns the number of failed files.
func runBatch(ctx context.Context, newEnv interp.NewEnv, paths []string, out printer, w io.Writer) int {
	outputs := make([]strings.Builder, len(paths))
	failed := make([]bool, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			buf := &outputs[i]
			fail := func(err error) error {
				fmt.Fprintf(buf, "error: %v\n", err)
				failed[i] = true
				return nil
			}
			if err := ctx.Err(); err != nil {
				return fail(err)
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return fail(err)
			}
			env := newEnv()
			v, err := env.Exec(ctx, path, string(src))
			if err != nil {
				return fail(err)
			}
			if v != nil {
				if err := out(buf, v); err != nil {
					return fail(err)
				}
			}
			printWarnings(buf, env)
			return nil
		})
	}
	g.Wait()

	n := 0
	for i, path := range paths {
		fmt.Fprintf(w, "== %s\n%s", filepath.ToSlash(path), outputs[i].String())
		if failed[i] {
			n++
		}
	}
	return n
}
