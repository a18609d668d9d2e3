package values

import (
	"strconv"
	"strings"

	"github.com/funvibe/snek/internal/types"
)

// Str is a Unicode string, stored as a rune slice so indexing and length
// operate on code points rather than UTF-8 bytes (spec §4.A).
type Str struct {
	Runes []rune
}

// NewStr builds a Str from a Go string.
func NewStr(s string) Str { return Str{Runes: []rune(s)} }

func (s Str) Kind() Kind                   { return StrKind }
func (s Str) TypeOf(h TypeHost) types.Type { return h.StrType() }

// String renders the quoted, escaped form (spec §4.A): double-quoted,
// backslash/quote/control characters escaped, everything else verbatim.
func (s Str) String() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.Runes {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				b.WriteString(`\x`)
				if r < 0x10 {
					b.WriteByte('0')
				}
				b.WriteString(strconv.FormatInt(int64(r), 16))
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Raw returns the plain Go string, with no quoting, for use by builtins
// that operate on string contents (concatenation, interpolation, etc).
func (s Str) Raw() string { return string(s.Runes) }

func (s Str) Equal(other Value) bool {
	o, ok := other.(Str)
	if !ok || len(o.Runes) != len(s.Runes) {
		return false
	}
	for i, r := range s.Runes {
		if o.Runes[i] != r {
			return false
		}
	}
	return true
}
