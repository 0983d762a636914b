package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/graphwatch/graphwatch-go/pkg/collection"
	"github.com/graphwatch/graphwatch-go/pkg/graph"
	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// Inspector errors.
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrFieldNotFound  = errors.New("field not found")
	ErrNotEntity      = errors.New("field does not hold an entity")
	ErrNotWritable    = errors.New("field is not writable")
)

// Inspector provides inspection and mutation capabilities for a collection.
type Inspector[T model.Entity] struct {
	c *collection.Collection[T]
}

// NewInspector creates a new Inspector for the given collection.
func NewInspector[T model.Entity](c *collection.Collection[T]) *Inspector[T] {
	return &Inspector[T]{c: c}
}

// Collection returns the underlying collection.
func (i *Inspector[T]) Collection() *collection.Collection[T] {
	return i.c
}

// EntityInfo represents an entity for display.
type EntityInfo struct {
	ID     string
	Type   string
	Fields []FieldInfo

	// Err is set if the entity's fields could not be listed.
	Err error
}

// FieldInfo represents a field for display.
type FieldInfo struct {
	Name   string
	Value  any
	Type   model.DataType
	Access model.Access

	// Err is set if the value could not be read.
	Err error
}

// TreeEntry is one line of a member's containment tree.
type TreeEntry struct {
	Member int
	Field  string
	Depth  int
	Entity model.Entity
}

// InspectEntity returns the current field values of e.
func (i *Inspector[T]) InspectEntity(e model.Entity) EntityInfo {
	info := EntityInfo{ID: e.ID(), Type: TypeName(e)}
	fields, err := model.SafeFields(e)
	if err != nil {
		info.Err = err
		return info
	}
	for _, f := range fields {
		fi := FieldInfo{Name: f.Name, Type: f.Type, Access: f.Access}
		if f.Access.CanRead() {
			fi.Value, fi.Err = model.Read(f)
		}
		info.Fields = append(info.Fields, fi)
	}
	return info
}

// InspectMember returns the current field values of the member at index.
func (i *Inspector[T]) InspectMember(index int) (*EntityInfo, error) {
	member, err := i.member(index)
	if err != nil {
		return nil, err
	}
	info := i.InspectEntity(member)
	return &info, nil
}

// Tree returns the containment tree of every member in walk order. An entity
// shared by several members appears under each of them.
func (i *Inspector[T]) Tree() []TreeEntry {
	var (
		out []TreeEntry
		w   graph.Walker
	)
	for idx, member := range i.c.Items() {
		for _, n := range w.Nodes(member) {
			out = append(out, TreeEntry{
				Member: idx,
				Field:  n.Field,
				Depth:  n.Depth,
				Entity: n.Entity,
			})
		}
	}
	return out
}

// Resolve follows path from its member. For a partial path it returns the
// member and a zero Field.
func (i *Inspector[T]) Resolve(path *Path) (model.Entity, model.Field, error) {
	current, err := i.member(path.Index)
	if err != nil {
		return nil, model.Field{}, err
	}
	if path.IsPartial() {
		return current, model.Field{}, nil
	}

	for _, name := range path.Fields[:len(path.Fields)-1] {
		f, ok := ResolveFieldName(current, name)
		if !ok {
			return nil, model.Field{}, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
		}
		v, err := model.Read(f)
		if err != nil {
			return nil, model.Field{}, err
		}
		next, ok := v.(model.Entity)
		if !ok || v == nil {
			return nil, model.Field{}, fmt.Errorf("%w: %s", ErrNotEntity, name)
		}
		current = next
	}

	f, ok := ResolveFieldName(current, path.Field())
	if !ok {
		return nil, model.Field{}, fmt.Errorf("%w: %s", ErrFieldNotFound, path.Field())
	}
	return current, f, nil
}

// Read returns the current value at path. A partial path returns the member.
func (i *Inspector[T]) Read(path *Path) (any, model.Field, error) {
	e, f, err := i.Resolve(path)
	if err != nil {
		return nil, model.Field{}, err
	}
	if path.IsPartial() {
		return e, f, nil
	}
	v, err := model.Read(f)
	return v, f, err
}

// Write parses input according to the target field's type and stores it.
func (i *Inspector[T]) Write(path *Path, input string) error {
	if path.IsPartial() {
		return fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	_, f, err := i.Resolve(path)
	if err != nil {
		return err
	}
	if !f.Access.CanWrite() || f.Set == nil {
		return fmt.Errorf("%w: %s", ErrNotWritable, f.Name)
	}

	v, err := ParseValue(f.Type, input)
	if err != nil {
		return err
	}
	return model.Write(f, v)
}

// FormatEntity formats entity info as a header line and a field table.
func (i *Inspector[T]) FormatEntity(info *EntityInfo, formatter *Formatter) string {
	var sb strings.Builder
	if formatter.ShowIDs {
		sb.WriteString(fmt.Sprintf("%s %s\n", info.Type, info.ID))
	} else {
		sb.WriteString(info.Type + "\n")
	}

	if info.Err != nil {
		sb.WriteString("  error: " + info.Err.Error() + "\n")
		return sb.String()
	}

	rows := make([]FieldRow, 0, len(info.Fields))
	for _, fi := range info.Fields {
		value := formatter.FormatValue(fi.Value)
		switch {
		case fi.Err != nil:
			value = "error: " + fi.Err.Error()
		case !fi.Access.CanRead():
			value = "-"
		}
		rows = append(rows, FieldRow{
			Name:   fi.Name,
			Value:  value,
			Type:   FormatDataType(fi.Type),
			Access: FormatAccess(fi.Access),
		})
	}
	sb.WriteString(formatter.FormatFieldTable(rows))
	return sb.String()
}

// FormatTree formats a containment tree, one entity per line.
func (i *Inspector[T]) FormatTree(tree []TreeEntry, formatter *Formatter) string {
	if len(tree) == 0 {
		return "(empty)\n"
	}

	var sb strings.Builder
	for _, entry := range tree {
		var line string
		if entry.Depth == 0 {
			line = fmt.Sprintf("[%d] %s", entry.Member, formatter.FormatEntityRef(entry.Entity))
		} else {
			line = fmt.Sprintf("%s: %s", entry.Field, formatter.FormatEntityRef(entry.Entity))
		}
		sb.WriteString(formatter.Indent(entry.Depth, line))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (i *Inspector[T]) member(index int) (model.Entity, error) {
	m, err := i.c.At(index)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrMemberNotFound, index)
	}
	return m, nil
}
