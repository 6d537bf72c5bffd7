package logicconfigs

import (
	"github.com/reusee/tailogic/cmds"
	"github.com/reusee/tailogic/configs"
)

// DefaultDropMissing is the na_rm value used by all and any when not given.
type DefaultDropMissing bool

var _ configs.Configurable = DefaultDropMissing(false)

func (DefaultDropMissing) ConfigExpr() string {
	return "na_rm"
}

var naRmFlag = cmds.Switch("-na-rm")

func (Module) DefaultDropMissing(
	loader configs.Loader,
) DefaultDropMissing {
	return DefaultDropMissing(*naRmFlag || configs.First[bool](loader, "na_rm"))
}
