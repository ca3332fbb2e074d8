// Package shellitem decodes Shell Item Identifier Lists: binary chains of
// variable-length, type-tagged records, each describing a GUID namespace
// root, a drive, a network share, or a file/folder with an embedded UTF-16
// name. Chains are read-only; records are sub-slices of the caller's buffer
// and are never copied.
package shellitem

import (
	"encoding/binary"
	"fmt"

	"github.com/Norgate-AV/ocsview/internal/layout"
)

// ChainError reports a structurally invalid identifier list. It is scoped to
// one menu item's resolution; callers record it and move on. Offset is the
// byte position of the problem, or negative when the problem is not tied to
// one position.
type ChainError struct {
	Offset int
	Reason string
}

func (e *ChainError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("identifier list invalid: %s", e.Reason)
	}

	return fmt.Sprintf("identifier list invalid at offset %d: %s", e.Offset, e.Reason)
}

// Decode walks the chain in buf and returns its records in order. The
// terminating zero-length record is not included. An empty chain (the buffer
// opens with a terminator) is valid and denotes the Desktop itself.
func Decode(buf []byte) ([]Item, error) {
	var items []Item

	off := 0
	for {
		if len(buf)-off < layout.LengthSize {
			return nil, &ChainError{Offset: off, Reason: "truncated before record length"}
		}

		length := int(binary.LittleEndian.Uint16(buf[off:]))
		if length == 0 {
			return items, nil
		}

		if length < layout.LengthSize {
			return nil, &ChainError{
				Offset: off,
				Reason: fmt.Sprintf("record length %d smaller than its own prefix", length),
			}
		}

		if off+length > len(buf) {
			return nil, &ChainError{
				Offset: off,
				Reason: fmt.Sprintf("record length %d exceeds buffer", length),
			}
		}

		items = append(items, Item{raw: buf[off : off+length]})
		off += length
	}
}
