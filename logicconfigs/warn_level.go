package logicconfigs

import (
	"github.com/reusee/tailogic/cmds"
	"github.com/reusee/tailogic/configs"
)

// WarnLevel controls what happens to recycling warnings.
type WarnLevel int

const (
	WarnCollect WarnLevel = iota
	WarnImmediate
	WarnError
)

var _ configs.Configurable = WarnLevel(0)

func (WarnLevel) ConfigExpr() string {
	return "warn"
}

var warnFlag = cmds.Var[*int]("-warn")

func (Module) WarnLevel(
	loader configs.Loader,
) WarnLevel {
	level := WarnLevel(configs.First[int](loader, "warn"))
	if *warnFlag != nil {
		level = WarnLevel(**warnFlag)
	}
	return min(max(level, WarnCollect), WarnError)
}
