// Package inspect provides entity inspection and field manipulation utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "0.Item.Cost")
//   - Resolving field names case-insensitively
//   - Reading and writing fields from text input
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path errors.
var (
	ErrEmptyPath     = errors.New("empty path")
	ErrInvalidPath   = errors.New("invalid path format")
	ErrInvalidNumber = errors.New("invalid numeric value")
)

// Path represents a parsed inspection path.
// Format: index[.field...], e.g. "2" or "2.Item.Cost".
type Path struct {
	// Index is the collection member position.
	Index int

	// Fields lists the field names to follow from the member. The last one
	// is the target field; the others must be entity fields.
	Fields []string

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string into a Path struct.
//
// Supported formats:
//   - "index" - the member itself (for listing fields)
//   - "index.field" - a field of the member
//   - "index.child.field" - a field of a descendant
//
// The index can be decimal or hex (0x prefix). "/" is accepted as an
// alternative separator.
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	normalized := strings.ReplaceAll(input, "/", ".")
	if strings.HasPrefix(normalized, ".") || strings.HasSuffix(normalized, ".") || strings.Contains(normalized, "..") {
		return nil, ErrInvalidPath
	}

	parts := strings.Split(normalized, ".")
	index, err := parseIndex(parts[0])
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	p := &Path{Index: index, Raw: input}
	if len(parts) > 1 {
		p.Fields = parts[1:]
	}
	return p, nil
}

// IsPartial returns true if the path names a member rather than a field.
func (p *Path) IsPartial() bool {
	return len(p.Fields) == 0
}

// Field returns the target field name, or "" for a partial path.
func (p *Path) Field() string {
	if p.IsPartial() {
		return ""
	}
	return p.Fields[len(p.Fields)-1]
}

// String returns the path in canonical form.
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(p.Index))
	for _, f := range p.Fields {
		sb.WriteString(".")
		sb.WriteString(f)
	}
	return sb.String()
}

// parseIndex parses a member index from decimal or hex string.
func parseIndex(s string) (int, error) {
	var v uint64
	var err error

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 31)
	} else {
		v, err = strconv.ParseUint(s, 10, 31)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return int(v), nil
}
