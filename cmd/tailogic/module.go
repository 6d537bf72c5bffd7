package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tailogic/interp"
	"github.com/reusee/tailogic/starlarks"
)

type Module struct {
	dscope.Module
	Interp    interp.Module
	Starlarks starlarks.Module
}
