package logicconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tailogic/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
