package starlarks

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/tailogic/logic"
	"github.com/reusee/tailogic/logicconfigs"
	"github.com/reusee/tailogic/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type Module struct {
	dscope.Module
	Logic   logic.Module
	Configs logicconfigs.Module
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Exec runs a starlark program with the logical builtins predeclared.
// print writes to out. The program is cancelled when ctx is done.
type Exec func(ctx context.Context, name string, src any, out io.Writer) (starlark.StringDict, error)

func (Module) Exec(
	handleWarning logic.HandleWarning,
	dropMissing logicconfigs.DefaultDropMissing,
	logger logs.Logger,
) Exec {
	return func(ctx context.Context, name string, src any, out io.Writer) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		if err := ctx.Err(); err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()
		logger.DebugContext(ctx, "exec starlark", "name", name)
		predeclared := Builtins(func(w logic.Warning) {
			handleWarning(ctx, w)
		}, bool(dropMissing))
		globals, err := starlark.ExecFileOptions(fileOptions, thread, name, src, predeclared)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = fmt.Errorf("%w: %w", ctxErr, err)
			}
			return nil, logs.WrapSpan(ctx, err)
		}
		return globals, nil
	}
}
