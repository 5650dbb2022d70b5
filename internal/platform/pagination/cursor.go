// Package pagination implements opaque cursor paging over in-memory
// collections, plus the RFC 8288 Link headers that expose it.
package pagination

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidCursor reports a cursor that is not one of ours.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor marks a position in a collection: the kind of resource being paged
// and the id of the last item the client already has. The zero Cursor means
// "start from the beginning".
type Cursor struct {
	Type  string
	Value string
}

// Encode serializes the cursor as unpadded URL-safe base64 so it survives
// query strings untouched.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Type + ":" + c.Value))
}

// DecodeCursor reverses Encode. An empty string is the zero cursor; anything
// that fails base64 or lacks the type separator is ErrInvalidCursor. Values
// may themselves contain colons, only the first one separates.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	typ, value, found := strings.Cut(string(raw), ":")
	if !found {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: typ, Value: value}, nil
}
