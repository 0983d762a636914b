package inspect

import (
	"fmt"
	"strings"

	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes type and access information
	ShowMetadata bool

	// ShowIDs includes entity labels alongside type names
	ShowIDs bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: true,
		ShowIDs:      false,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats a value for display.
func (f *Formatter) FormatValue(value any) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"

	case string:
		return fmt.Sprintf("%q", v)

	case int64, int32, int16, int8, int:
		return fmt.Sprintf("%d", v)

	case uint64, uint32, uint16, uint8:
		return fmt.Sprintf("%d", v)

	case float32:
		return fmt.Sprintf("%.2f", v)

	case float64:
		return fmt.Sprintf("%.2f", v)

	case []byte:
		return fmt.Sprintf("0x%x", v)

	case model.Entity:
		return f.FormatEntityRef(v)

	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatEntityRef formats a reference to an entity, e.g. "<LineItem>" or
// "<LineItem 3f2a9c1e>" with ShowIDs.
func (f *Formatter) FormatEntityRef(e model.Entity) string {
	if f.ShowIDs {
		return fmt.Sprintf("<%s %s>", TypeName(e), shortID(e.ID()))
	}
	return fmt.Sprintf("<%s>", TypeName(e))
}

// FormatAccess formats an access level for display.
func FormatAccess(access model.Access) string {
	switch access {
	case model.AccessReadOnly:
		return "read-only"
	case model.AccessRead:
		return "read"
	case model.AccessWrite:
		return "write"
	case model.AccessReadWrite:
		return "read-write"
	case model.AccessWriteOnly:
		return "write-only"
	default:
		return fmt.Sprintf("access(%d)", access)
	}
}

// FormatDataType formats a data type for display.
func FormatDataType(dt model.DataType) string {
	name := dt.String()
	if name == "unknown" {
		return fmt.Sprintf("type(%d)", dt)
	}
	return name
}

// FieldRow represents a formatted field for display.
type FieldRow struct {
	Name   string
	Value  string
	Type   string
	Access string
}

// FormatFieldTable formats a list of fields as a table.
func (f *Formatter) FormatFieldTable(rows []FieldRow) string {
	if len(rows) == 0 {
		return "  (no fields)\n"
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.Name)+1)
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %-*s  %s", width, row.Name+":", row.Value))
		if f.ShowMetadata && row.Type != "" {
			sb.WriteString(fmt.Sprintf(" (%s, %s)", row.Type, row.Access))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
