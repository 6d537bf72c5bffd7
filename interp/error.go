package interp

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/syntax"
)

var (
	ErrUndefined   = errors.New("undefined")
	ErrUnsupported = errors.New("unsupported")
	ErrArgument    = errors.New("bad argument")
	ErrReadOnly    = errors.New("read-only name")
)

// PosError attaches a source location to an evaluation error.
type PosError struct {
	Err   error
	Pos   syntax.Position
	Lines []string
}

func (p PosError) Error() string {
	if !p.Pos.IsValid() {
		return p.Err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d", p.Err.Error(), p.Pos.Filename(), p.Pos.Line, p.Pos.Col)

	idx := int(p.Pos.Line) - 1
	if idx >= 0 && idx < len(p.Lines) {
		line := p.Lines[idx]
		sb.WriteString("\n")
		sb.WriteString(line)
		sb.WriteString("\n")
		col := int(p.Pos.Col) - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// WithPos wraps err with pos unless it already carries a position.
func WithPos(err error, pos syntax.Position, lines []string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err:   err,
		Pos:   pos,
		Lines: lines,
	}
}
