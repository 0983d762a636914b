package main

import (
	"fmt"
	"strings"
	"unicode"
)

// Generate renders Go source for every entity in defs.
func Generate(defs *RawDefs, pkg string) (code string, err error) {
	if pkg == "" {
		pkg = defs.Package
	}
	if pkg == "" {
		return "", fmt.Errorf("no package name given")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	var b strings.Builder
	renderTemplate(&b, "header", pkg)
	for i := range defs.Entities {
		e := &defs.Entities[i]
		renderTemplate(&b, "constants", e)
		renderTemplate(&b, "entityStruct", e)
		renderTemplate(&b, "accessors", e)
		renderTemplate(&b, "fields", e)
	}
	return b.String(), nil
}

// goTitleCase converts "cost" to "Cost" and "unitPrice" to "UnitPrice".
func goTitleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// firstLower lowercases the first rune.
func firstLower(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// goFieldName returns the unexported struct field name for a YAML field.
func goFieldName(name string) string {
	n := firstLower(name)
	switch n {
	case "type", "func", "map", "range", "select", "chan", "go", "var", "default", "case":
		return n + "_"
	}
	return n
}

// goTypeName returns the Go type of a field.
func goTypeName(f RawFieldDef) string {
	if f.IsEntity() {
		return "*" + f.Entity
	}
	return f.Type
}
