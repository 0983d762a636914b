package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/graphwatch/graphwatch-go/pkg/catalog"
	"github.com/graphwatch/graphwatch-go/pkg/collection"
	"github.com/graphwatch/graphwatch-go/pkg/model"
)

func newTestInspector(t *testing.T) (*Inspector[*catalog.Order], []*catalog.Order) {
	t.Helper()
	orders := catalog.Seed(3)
	orders[1].Item().SetCost(20)
	c, err := collection.From(orders, nil)
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	return NewInspector(c), orders
}

func mustPath(t *testing.T, s string) *Path {
	t.Helper()
	p, err := ParsePath(s)
	if err != nil {
		t.Fatalf("ParsePath(%q) failed: %v", s, err)
	}
	return p
}

func TestInspectorRead(t *testing.T) {
	insp, orders := newTestInspector(t)

	v, f, err := insp.Read(mustPath(t, "1.item.cost"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if v != int64(20) {
		t.Errorf("value = %v, want 20", v)
	}
	if f.Name != catalog.LineItemFieldCost {
		t.Errorf("field = %q, want Cost", f.Name)
	}

	v, _, err = insp.Read(mustPath(t, "2"))
	if err != nil {
		t.Fatalf("Read partial failed: %v", err)
	}
	if v != model.Entity(orders[2]) {
		t.Error("partial read should return the member")
	}
}

func TestInspectorReadErrors(t *testing.T) {
	insp, orders := newTestInspector(t)
	orders[0].SetItem(nil)

	tests := []struct {
		path string
		want error
	}{
		{"5.Item", ErrMemberNotFound},
		{"0.Missing", ErrFieldNotFound},
		{"1.Item.Missing", ErrFieldNotFound},
		{"1.Label.Cost", ErrNotEntity},
		{"0.Item.Cost", ErrNotEntity},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, _, err := insp.Read(mustPath(t, tt.path))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInspectorWrite(t *testing.T) {
	insp, orders := newTestInspector(t)

	var notes []collection.Notification
	insp.Collection().Subscribe(&collection.ObserverFuncs[*catalog.Order]{
		EntityChanged: func(n collection.Notification) { notes = append(notes, n) },
	})

	if err := insp.Write(mustPath(t, "0.Item.Cost"), "0x10"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := orders[0].Item().Cost(); got != 16 {
		t.Errorf("cost = %d, want 16", got)
	}
	if err := insp.Write(mustPath(t, "0.Label"), `"first order"`); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got := orders[0].Label(); got != "first order" {
		t.Errorf("label = %q", got)
	}
	if len(notes) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notes))
	}
	if notes[0].Path() != "Item.Cost" {
		t.Errorf("path = %q, want Item.Cost", notes[0].Path())
	}

	if err := insp.Write(mustPath(t, "0.Item"), "null"); err != nil {
		t.Fatalf("Write null failed: %v", err)
	}
	if orders[0].Item() != nil {
		t.Error("item should be nil")
	}
}

func TestInspectorWriteErrors(t *testing.T) {
	insp, _ := newTestInspector(t)

	if err := insp.Write(mustPath(t, "0"), "1"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("partial write error = %v", err)
	}
	if err := insp.Write(mustPath(t, "0.Item.Cost"), "lots"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("bad number error = %v", err)
	}
	if err := insp.Write(mustPath(t, "0.Item"), "something"); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("entity write error = %v", err)
	}
}

func TestInspectMember(t *testing.T) {
	insp, _ := newTestInspector(t)

	info, err := insp.InspectMember(1)
	if err != nil {
		t.Fatalf("InspectMember failed: %v", err)
	}
	if info.Type != "Order" {
		t.Errorf("type = %q, want Order", info.Type)
	}
	if len(info.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(info.Fields))
	}
	if info.Fields[0].Value != "Order B2" {
		t.Errorf("label = %v", info.Fields[0].Value)
	}

	out := insp.FormatEntity(info, NewFormatter())
	if !strings.HasPrefix(out, "Order\n") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, `Label:  "Order B2" (string, read-write)`) {
		t.Errorf("missing label row: %q", out)
	}
	if !strings.Contains(out, "Item:   <LineItem> (entity, read-write)") {
		t.Errorf("missing item row: %q", out)
	}

	if _, err := insp.InspectMember(9); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("error = %v, want ErrMemberNotFound", err)
	}
}

func TestInspectorTree(t *testing.T) {
	insp, _ := newTestInspector(t)

	tree := insp.Tree()
	if len(tree) != 6 {
		t.Fatalf("tree entries = %d, want 6", len(tree))
	}
	if tree[1].Field != "Item" || tree[1].Depth != 1 || tree[1].Member != 0 {
		t.Errorf("tree[1] = %+v", tree[1])
	}

	out := insp.FormatTree(tree, NewFormatter())
	want := "[0] <Order>\n  Item: <LineItem>\n[1] <Order>\n"
	if !strings.HasPrefix(out, want) {
		t.Errorf("FormatTree = %q, want prefix %q", out, want)
	}
}

// shapeless cannot describe its fields.
type shapeless struct {
	model.Notifier
}

func (s *shapeless) Fields() []model.Field { panic("no shape") }

func TestInspectorToleratesPanickingFields(t *testing.T) {
	c := collection.New[*shapeless]()
	if err := c.Add(&shapeless{}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	insp := NewInspector(c)

	tree := insp.Tree()
	if len(tree) != 1 {
		t.Fatalf("tree has %d entries, want 1", len(tree))
	}
	if got := insp.FormatTree(tree, NewFormatter()); got != "[0] <shapeless>\n" {
		t.Errorf("FormatTree = %q", got)
	}

	info, err := insp.InspectMember(0)
	if err != nil {
		t.Fatalf("InspectMember failed: %v", err)
	}
	if !errors.Is(info.Err, model.ErrFieldAccess) {
		t.Errorf("info.Err = %v, want ErrFieldAccess", info.Err)
	}
	out := insp.FormatEntity(info, NewFormatter())
	if !strings.Contains(out, "error: field access failed") {
		t.Errorf("FormatEntity output missing error:\n%s", out)
	}

	if _, _, err := insp.Read(mustPath(t, "0.Anything")); !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("Read err = %v, want ErrFieldNotFound", err)
	}
	if names := FieldNames(&shapeless{}); len(names) != 0 {
		t.Errorf("FieldNames = %v, want none", names)
	}
}
