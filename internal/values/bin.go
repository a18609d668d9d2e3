package values

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/funvibe/snek/internal/types"
)

// Bin is an immutable byte string (spec §4.A): the octet counterpart to
// Str, used for binary payloads and host interop rather than text.
type Bin struct {
	Bytes []byte
}

func (b Bin) Kind() Kind                   { return BinKind }
func (b Bin) TypeOf(h TypeHost) types.Type { return h.BinType() }

// String renders b"..." with every byte outside printable ASCII rendered
// as a \xHH hex escape, so the form always round-trips regardless of
// content (spec §4.A) — unlike Str, Bin has no notion of "printable
// Unicode" to fall back on.
func (b Bin) String() string {
	var sb strings.Builder
	sb.WriteString(`b"`)
	for _, byt := range b.Bytes {
		switch {
		case byt == '"':
			sb.WriteString(`\"`)
		case byt == '\\':
			sb.WriteString(`\\`)
		case byt >= 0x20 && byt < 0x7f:
			sb.WriteByte(byt)
		default:
			fmt.Fprintf(&sb, `\x%02x`, byt)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func (b Bin) Equal(other Value) bool {
	o, ok := other.(Bin)
	return ok && bytes.Equal(o.Bytes, b.Bytes)
}
