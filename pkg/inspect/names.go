package inspect

import (
	"fmt"
	"strings"

	"github.com/graphwatch/graphwatch-go/pkg/model"
)

// ResolveFieldName finds the field of e with the given name (case-insensitive).
// An exact match wins over a case-insensitive one.
func ResolveFieldName(e model.Entity, name string) (model.Field, bool) {
	fields, _ := model.SafeFields(e)
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	lname := strings.ToLower(name)
	for _, f := range fields {
		if strings.ToLower(f.Name) == lname {
			return f, true
		}
	}
	return model.Field{}, false
}

// FieldNames returns the field names of e in declaration order.
func FieldNames(e model.Entity) []string {
	fields, _ := model.SafeFields(e)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// TypeName returns the short type name of e, e.g. "LineItem" for *catalog.LineItem.
func TypeName(e model.Entity) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", e), "*")
	base, args, generic := strings.Cut(name, "[")
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[i+1:]
	}
	if generic {
		return base + "[" + args
	}
	return base
}
