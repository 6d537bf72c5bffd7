package interp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"slices"
	"strings"

	"github.com/reusee/tailogic/logic"
	"github.com/reusee/tailogic/tribool"
	"github.com/reusee/tailogic/vectors"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{}

var constants = map[string]func() *vectors.Vector{
	"TRUE":  func() *vectors.Vector { return vectors.NewLogical(tribool.True) },
	"True":  func() *vectors.Vector { return vectors.NewLogical(tribool.True) },
	"FALSE": func() *vectors.Vector { return vectors.NewLogical(tribool.False) },
	"False": func() *vectors.Vector { return vectors.NewLogical(tribool.False) },
	"NA":    func() *vectors.Vector { return vectors.NewLogical(tribool.Missing) },
	"None":  func() *vectors.Vector { return vectors.NewLogical(tribool.Missing) },
	"NULL":  vectors.Null,
	"NaN":   func() *vectors.Vector { return vectors.NewDouble(math.NaN()) },
	"Inf":   func() *vectors.Vector { return vectors.NewDouble(math.Inf(1)) },
}

// T and F are ordinary variables that start out as TRUE and FALSE.
var defaults = map[string]func() *vectors.Vector{
	"T": constants["TRUE"],
	"F": constants["FALSE"],
}

// Exec parses and runs src, returning the value of the last expression statement.
// The value is nil when src has no expression statement.
func (e *Env) Exec(ctx context.Context, name string, src string) (ret *vectors.Vector, err error) {
	e.ctx = ctx
	e.lines = strings.Split(src, "\n")
	defer func() {
		e.ctx = context.Background()
	}()

	file, err := fileOptions.Parse(name, src, 0)
	if err != nil {
		var serr syntax.Error
		if errors.As(err, &serr) {
			return nil, WithPos(errors.New(serr.Msg), serr.Pos, e.lines)
		}
		return nil, err
	}

	for _, stmt := range file.Stmts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.execStmt(stmt)
		if err != nil {
			return nil, err
		}
		if v != nil {
			ret = v
		}
	}
	return ret, nil
}

func (e *Env) execStmt(stmt syntax.Stmt) (*vectors.Vector, error) {
	switch stmt := stmt.(type) {

	case *syntax.ExprStmt:
		return e.Eval(stmt.X)

	case *syntax.AssignStmt:
		if stmt.Op != syntax.EQ {
			return nil, WithPos(fmt.Errorf("%w: %s", ErrUnsupported, stmt.Op), stmt.OpPos, e.lines)
		}
		ident, ok := stmt.LHS.(*syntax.Ident)
		if !ok {
			start, _ := stmt.LHS.Span()
			return nil, WithPos(fmt.Errorf("%w: assignment target", ErrUnsupported), start, e.lines)
		}
		v, err := e.Eval(stmt.RHS)
		if err != nil {
			return nil, err
		}
		if err := e.Set(ident.Name, v); err != nil {
			return nil, WithPos(err, ident.NamePos, e.lines)
		}
		return nil, nil

	}

	start, _ := stmt.Span()
	return nil, WithPos(fmt.Errorf("%w: statement %T", ErrUnsupported, stmt), start, e.lines)
}

// Eval evaluates a single expression.
func (e *Env) Eval(expr syntax.Expr) (ret *vectors.Vector, err error) {
	defer func() {
		if err != nil {
			start, _ := expr.Span()
			err = WithPos(err, start, e.lines)
		}
	}()

	switch expr := expr.(type) {

	case *syntax.Literal:
		return literal(expr)

	case *syntax.Ident:
		if v, ok := e.vars[expr.Name]; ok {
			return v, nil
		}
		if fn, ok := constants[expr.Name]; ok {
			return fn(), nil
		}
		if fn, ok := defaults[expr.Name]; ok {
			return fn(), nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUndefined, expr.Name)

	case *syntax.ParenExpr:
		return e.Eval(expr.X)

	case *syntax.ListExpr:
		elems := make([]*vectors.Vector, 0, len(expr.List))
		for _, elem := range expr.List {
			v, err := e.Eval(elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return vectors.Combine(elems...), nil

	case *syntax.UnaryExpr:
		return e.evalUnary(expr)

	case *syntax.BinaryExpr:
		return e.evalBinary(expr)

	case *syntax.CallExpr:
		return e.evalCall(expr)

	}

	return nil, fmt.Errorf("%w: expression %T", ErrUnsupported, expr)
}

func literal(lit *syntax.Literal) (*vectors.Vector, error) {
	switch value := lit.Value.(type) {
	case int64:
		if value > math.MaxInt32 || value <= math.MinInt32 {
			return vectors.NewDouble(float64(value)), nil
		}
		return vectors.NewInteger(int(value)), nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(value).Float64()
		return vectors.NewDouble(f), nil
	case float64:
		return vectors.NewDouble(value), nil
	case string:
		if lit.Token == syntax.STRING {
			return vectors.NewCharacter(value), nil
		}
	}
	return nil, fmt.Errorf("%w: literal %s", ErrUnsupported, lit.Raw)
}

func (e *Env) evalUnary(expr *syntax.UnaryExpr) (*vectors.Vector, error) {
	x, err := e.Eval(expr.X)
	if err != nil {
		return nil, err
	}
	switch expr.Op {
	case syntax.NOT, syntax.TILDE:
		return logic.Not(x)
	case syntax.MINUS:
		return negate(x)
	case syntax.PLUS:
		if !vectors.IsNumeric(x) {
			return nil, fmt.Errorf("%w: invalid argument to unary operator", logic.ErrType)
		}
		return x, nil
	}
	return nil, fmt.Errorf("%w: operator %s", ErrUnsupported, expr.Op)
}

func negate(x *vectors.Vector) (*vectors.Vector, error) {
	switch x.Kind() {
	case vectors.KindLogical:
		logicals := x.Logicals()
		ints := make([]int, len(logicals))
		for i, b := range logicals {
			if b == tribool.Missing {
				ints[i] = vectors.NAInteger
			} else {
				ints[i] = -int(b)
			}
		}
		return vectors.NewInteger(ints...).WithAttrs(x.Attrs()), nil
	case vectors.KindInteger:
		ints := slices.Clone(x.Integers())
		for i, n := range ints {
			if n != vectors.NAInteger {
				ints[i] = -n
			}
		}
		return vectors.NewInteger(ints...).WithAttrs(x.Attrs()), nil
	case vectors.KindDouble:
		doubles := slices.Clone(x.Doubles())
		for i, f := range doubles {
			doubles[i] = -f
		}
		return vectors.NewDouble(doubles...).WithAttrs(x.Attrs()), nil
	}
	return nil, fmt.Errorf("%w: invalid argument to unary operator", logic.ErrType)
}

func (e *Env) evalBinary(expr *syntax.BinaryExpr) (*vectors.Vector, error) {
	switch expr.Op {

	case syntax.AND, syntax.OR:
		op := logic.OpAndElse
		if expr.Op == syntax.OR {
			op = logic.OpOrElse
		}
		b, err := logic.ShortCircuit[syntax.Expr](op, expr.X, expr.Y, e.Eval)
		if err != nil {
			return nil, err
		}
		return vectors.NewLogical(b), nil

	case syntax.AMP, syntax.PIPE:
		op := logic.OpAnd
		if expr.Op == syntax.PIPE {
			op = logic.OpOr
		}
		x, err := e.Eval(expr.X)
		if err != nil {
			return nil, err
		}
		y, err := e.Eval(expr.Y)
		if err != nil {
			return nil, err
		}
		res, err := logic.Binary(op, x, y)
		if err != nil {
			return nil, err
		}
		return e.handleResult(res)

	}

	return nil, fmt.Errorf("%w: operator %s", ErrUnsupported, expr.Op)
}

func (e *Env) evalCall(expr *syntax.CallExpr) (*vectors.Vector, error) {
	ident, ok := expr.Fn.(*syntax.Ident)
	if !ok {
		return nil, fmt.Errorf("%w: callee must be a name", ErrUnsupported)
	}
	fn, ok := e.funcs[ident.Name]
	if !ok {
		return nil, fmt.Errorf("%w: function %s", ErrUndefined, ident.Name)
	}

	var args []*vectors.Vector
	var kwargs map[string]*vectors.Vector
	for _, arg := range expr.Args {
		if kw, ok := arg.(*syntax.BinaryExpr); ok && kw.Op == syntax.EQ {
			name, ok := kw.X.(*syntax.Ident)
			if !ok {
				return nil, fmt.Errorf("%w: keyword must be a name", ErrArgument)
			}
			v, err := e.Eval(kw.Y)
			if err != nil {
				return nil, err
			}
			if kwargs == nil {
				kwargs = make(map[string]*vectors.Vector)
			}
			if _, ok := kwargs[name.Name]; ok {
				return nil, fmt.Errorf("%w: %s: duplicated keyword %s", ErrArgument, ident.Name, name.Name)
			}
			kwargs[name.Name] = v
			continue
		}
		if u, ok := arg.(*syntax.UnaryExpr); ok && (u.Op == syntax.STAR || u.Op == syntax.STARSTAR) {
			return nil, fmt.Errorf("%w: variadic arguments", ErrUnsupported)
		}
		v, err := e.Eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return fn(e, args, kwargs)
}
