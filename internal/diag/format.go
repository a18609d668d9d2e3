package diag

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Format renders err in the "file:line:col: message" shape described by
// the Host API (spec §6) — the informative CLI diagnostic form. When out
// is a terminal (detected via go-isatty, the way the teacher gates its own
// terminal features in builtins_term.go), the message is wrapped in a
// red escape sequence.
func Format(out io.Writer, err *Error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if f, ok := out.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		return fmt.Sprintf("%s%s%s", ansiRed, msg, ansiReset)
	}
	return msg
}
