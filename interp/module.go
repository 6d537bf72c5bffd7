package interp

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tailogic/logic"
	"github.com/reusee/tailogic/logicconfigs"
)

type Module struct {
	dscope.Module
	Logic   logic.Module
	Configs logicconfigs.Module
}

type NewEnv func() *Env

func (Module) NewEnv(
	handleWarning logic.HandleWarning,
	warnLevel logicconfigs.WarnLevel,
	dropMissing logicconfigs.DefaultDropMissing,
) NewEnv {
	return func() *Env {
		return New(Options{
			WarnLevel:     warnLevel,
			DropMissing:   bool(dropMissing),
			HandleWarning: handleWarning,
		})
	}
}
