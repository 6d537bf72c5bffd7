package logic

import (
	"fmt"

	"github.com/reusee/tailogic/vectors"
)

// Warning is a non-fatal condition reported alongside a valid result.
type Warning struct {
	Op      Op
	Longer  int
	Shorter int
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s: longer object length %d is not a multiple of shorter object length %d",
		w.Op, w.Longer, w.Shorter)
}

// Unwrap lets an escalated warning match ErrRecycling.
func (w Warning) Unwrap() error {
	return ErrRecycling
}

// Result is the output of an element-wise operator.
type Result struct {
	Value    *vectors.Vector
	Warnings []Warning
}
