package interp

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/tailogic/logic"
	"github.com/reusee/tailogic/logicconfigs"
	"github.com/reusee/tailogic/vectors"
)

// Func is a builtin function. Arguments are evaluated before the call.
type Func func(env *Env, args []*vectors.Vector, kwargs map[string]*vectors.Vector) (*vectors.Vector, error)

type Options struct {
	WarnLevel     logicconfigs.WarnLevel
	DropMissing   bool
	HandleWarning logic.HandleWarning
}

type Env struct {
	// Warnings collects the recycling warnings raised so far
	Warnings []logic.Warning

	options Options
	vars    map[string]*vectors.Vector
	funcs   map[string]Func
	ctx     context.Context
	lines   []string
}

func New(options Options) *Env {
	env := &Env{
		options: options,
		vars:    make(map[string]*vectors.Vector),
		funcs:   make(map[string]Func),
		ctx:     context.Background(),
	}
	maps.Copy(env.funcs, builtins)
	return env
}

func (e *Env) Options() Options {
	return e.options
}

func (e *Env) DefineFunc(name string, fn Func) {
	e.funcs[name] = fn
}

func (e *Env) Get(name string) (*vectors.Vector, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Env) Set(name string, value *vectors.Vector) error {
	if _, ok := constants[name]; ok {
		return fmt.Errorf("%w: %s", ErrReadOnly, name)
	}
	e.vars[name] = value
	return nil
}

// Vars returns the names of user variables in sorted order.
func (e *Env) Vars() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// TakeWarnings returns the collected warnings and resets the collection.
func (e *Env) TakeWarnings() []logic.Warning {
	ret := e.Warnings
	e.Warnings = nil
	return ret
}

func (e *Env) handleResult(res logic.Result) (*vectors.Vector, error) {
	for _, w := range res.Warnings {
		switch e.options.WarnLevel {
		case logicconfigs.WarnError:
			return nil, w
		case logicconfigs.WarnImmediate:
			if e.options.HandleWarning != nil {
				e.options.HandleWarning(e.ctx, w)
			}
		}
		e.Warnings = append(e.Warnings, w)
	}
	return res.Value, nil
}
