package inspect

import (
	"strings"
	"testing"

	"github.com/graphwatch/graphwatch-go/pkg/catalog"
	"github.com/graphwatch/graphwatch-go/pkg/model"
)

func TestFormatValue(t *testing.T) {
	f := &Formatter{}

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "null"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"string", "Item C1", `"Item C1"`},
		{"int64", int64(-42), "-42"},
		{"uint8", uint8(7), "7"},
		{"float64", 1.5, "1.50"},
		{"bytes", []byte{0xde, 0xad}, "0xdead"},
		{"entity", catalog.NewLineItem("c", 1), "<LineItem>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FormatValue(tt.value); got != tt.expected {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatEntityRefWithID(t *testing.T) {
	f := &Formatter{ShowIDs: true}
	item := catalog.NewLineItem("c", 1)
	got := f.FormatEntityRef(item)
	want := "<LineItem " + item.ID()[:8] + ">"
	if got != want {
		t.Errorf("FormatEntityRef = %q, want %q", got, want)
	}
}

func TestFormatAccess(t *testing.T) {
	tests := []struct {
		access   model.Access
		expected string
	}{
		{model.AccessReadOnly, "read-only"},
		{model.AccessReadWrite, "read-write"},
		{model.AccessWriteOnly, "write-only"},
	}
	for _, tt := range tests {
		if got := FormatAccess(tt.access); got != tt.expected {
			t.Errorf("FormatAccess(%d) = %q, want %q", tt.access, got, tt.expected)
		}
	}
}

func TestFormatDataType(t *testing.T) {
	if got := FormatDataType(model.DataTypeEntity); got != "entity" {
		t.Errorf("FormatDataType(entity) = %q", got)
	}
	if got := FormatDataType(model.DataType(200)); got != "type(200)" {
		t.Errorf("FormatDataType(200) = %q", got)
	}
}

func TestFormatFieldTable(t *testing.T) {
	f := NewFormatter()
	out := f.FormatFieldTable([]FieldRow{
		{Name: "Cost", Value: "5", Type: "int64", Access: "read-write"},
		{Name: "Currency", Value: "978", Type: "int64", Access: "read-write"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "  Cost:      5 (int64, read-write)" {
		t.Errorf("line 0 = %q", lines[0])
	}

	if got := f.FormatFieldTable(nil); got != "  (no fields)\n" {
		t.Errorf("empty table = %q", got)
	}

	f.ShowMetadata = false
	out = f.FormatFieldTable([]FieldRow{{Name: "Cost", Value: "5", Type: "int64"}})
	if out != "  Cost:  5\n" {
		t.Errorf("without metadata = %q", out)
	}
}

func TestTypeName(t *testing.T) {
	if got := TypeName(catalog.NewOrder("o", nil)); got != "Order" {
		t.Errorf("TypeName = %q, want Order", got)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		dt    model.DataType
		input string
		want  any
	}{
		{model.DataTypeBool, "true", true},
		{model.DataTypeInt64, "-12", int64(-12)},
		{model.DataTypeInt32, "0x10", int32(16)},
		{model.DataTypeUint8, "255", uint8(255)},
		{model.DataTypeFloat64, "2.5", 2.5},
		{model.DataTypeString, `"quoted text"`, "quoted text"},
		{model.DataTypeString, "plain", "plain"},
		{model.DataTypeEntity, "null", nil},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.dt, tt.input)
		if err != nil {
			t.Errorf("ParseValue(%s, %q) failed: %v", tt.dt, tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseValue(%s, %q) = %#v, want %#v", tt.dt, tt.input, got, tt.want)
		}
	}

	if _, err := ParseValue(model.DataTypeUint8, "256"); err == nil {
		t.Error("expected overflow error")
	}
	if _, err := ParseValue(model.DataTypeMap, "{}"); err == nil {
		t.Error("expected unsupported type error")
	}
}
