package logic

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/tailogic/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// HandleWarning reports a warning as it occurs.
type HandleWarning func(ctx context.Context, w Warning)

func (Module) HandleWarning(
	logger logs.Logger,
) HandleWarning {
	return func(ctx context.Context, w Warning) {
		logger.WarnContext(ctx, "recycling length mismatch",
			"op", w.Op.String(),
			"longer", w.Longer,
			"shorter", w.Shorter,
		)
	}
}
