package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func catalogDefs() *RawDefs {
	return &RawDefs{
		Package: "catalog",
		Entities: []RawEntityDef{
			{
				Name:        "Order",
				Description: "A top-level entity holding one line item",
				Fields: []RawFieldDef{
					{Name: "label", Type: "string"},
					{Name: "item", Entity: "LineItem", Description: "The line item of the order"},
					{Name: "origin", Entity: "Order", Access: "readOnly"},
				},
			},
			{
				Name: "LineItem",
				Fields: []RawFieldDef{
					{Name: "name", Type: "string"},
					{Name: "cost", Type: "int64"},
					{Name: "type", Type: "uint8", Access: "readOnly"},
				},
			},
		},
	}
}

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output missing %q", want)
	}
}

func TestGenerateHeader(t *testing.T) {
	output, err := Generate(catalogDefs(), "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.HasPrefix(output, "// Code generated by graphwatch-gen. DO NOT EDIT.") {
		t.Errorf("missing generated header")
	}
	mustContain(t, output, "package catalog")
	mustContain(t, output, `"github.com/graphwatch/graphwatch-go/pkg/model"`)
}

func TestGeneratePackageOverride(t *testing.T) {
	output, err := Generate(catalogDefs(), "orders")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	mustContain(t, output, "package orders")
}

func TestGenerateMissingPackage(t *testing.T) {
	defs := catalogDefs()
	defs.Package = ""
	if _, err := Generate(defs, ""); err == nil {
		t.Error("expected error without package name")
	}
}

func TestGenerateFieldConstants(t *testing.T) {
	output, err := Generate(catalogDefs(), "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, `OrderFieldLabel = "Label"`)
	mustContain(t, output, `OrderFieldItem = "Item"`)
	mustContain(t, output, `LineItemFieldCost = "Cost"`)
}

func TestGenerateStruct(t *testing.T) {
	output, err := Generate(catalogDefs(), "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "// Order is a top-level entity holding one line item.")
	mustContain(t, output, "// LineItem is an observable entity.")
	mustContain(t, output, "item *LineItem")
	mustContain(t, output, "cost int64")
	mustContain(t, output, "type_ uint8")
}

func TestGenerateAccessors(t *testing.T) {
	output, err := Generate(catalogDefs(), "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "// Item returns the line item of the order.")
	mustContain(t, output, "func (o *Order) Item() *LineItem {")
	mustContain(t, output, "func (o *Order) SetItem(v *LineItem) bool {")
	mustContain(t, output, "return model.Set(o, &o.item, OrderFieldItem, v)")
	mustContain(t, output, "func (l *LineItem) SetCost(v int64) bool {")
}

func TestGenerateFieldDescriptors(t *testing.T) {
	output, err := Generate(catalogDefs(), "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "model.WritableField(OrderFieldLabel, model.DataTypeString, o.Label, func(v string) { o.SetLabel(v) }),")
	mustContain(t, output, "model.Ref(OrderFieldItem, o.Item, func(v *LineItem) { o.SetItem(v) }),")
	mustContain(t, output, "model.Ref(OrderFieldOrigin, o.Origin, nil),")
	mustContain(t, output, "model.ValueField(LineItemFieldType, model.DataTypeUint8, func() any { return l.type_ }),")
}

func TestRunWritesFormattedFile(t *testing.T) {
	dir := t.TempDir()
	defsPath := filepath.Join(dir, "defs.yaml")
	defs := `
package: shop
entities:
  - name: Cart
    fields:
      - { name: total, type: int64 }
      - { name: owner, entity: Customer }
  - name: Customer
    fields:
      - { name: name, type: string }
`
	if err := os.WriteFile(defsPath, []byte(defs), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "gen", "shop_gen.go")
	if err := run(defsPath, out, ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	output := string(data)
	mustContain(t, output, "package shop")
	mustContain(t, output, "\tmodel.Notifier\n")
	mustContain(t, output, "func (c *Cart) Fields() []model.Field {")

	if _, err := os.Stat(out + ".broken"); !os.IsNotExist(err) {
		t.Error("unexpected .broken file")
	}
}

func TestRunMissingDefs(t *testing.T) {
	dir := t.TempDir()
	err := run(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "out.go"), "x")
	if err == nil {
		t.Fatal("expected error for missing definitions")
	}
}

func TestGoTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cost", "Cost"},
		{"unitPrice", "UnitPrice"},
		{"", ""},
		{"X", "X"},
	}
	for _, tt := range tests {
		if got := goTitleCase(tt.in); got != tt.want {
			t.Errorf("goTitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
