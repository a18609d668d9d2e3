// Package diag implements the single error kind threaded through the
// evaluator and statement executor, plus its host-facing formatting.
package diag

import "fmt"

// Position identifies a point in a source file by line and column,
// both 1-based.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsZero reports whether the position carries no location information.
func (p Position) IsZero() bool {
	return p.File == "" && p.Line == 0 && p.Column == 0
}
