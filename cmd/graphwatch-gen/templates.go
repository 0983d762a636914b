package main

import (
	"fmt"
	"strings"
	"text/template"
)

// scalarTypes maps YAML field types to model data type constants.
var scalarTypes = map[string]string{
	"bool":    "model.DataTypeBool",
	"int8":    "model.DataTypeInt8",
	"int16":   "model.DataTypeInt16",
	"int32":   "model.DataTypeInt32",
	"int64":   "model.DataTypeInt64",
	"uint8":   "model.DataTypeUint8",
	"uint16":  "model.DataTypeUint16",
	"uint32":  "model.DataTypeUint32",
	"uint64":  "model.DataTypeUint64",
	"float32": "model.DataTypeFloat32",
	"float64": "model.DataTypeFloat64",
	"string":  "model.DataTypeString",
}

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"concat":        func(a, b string) string { return a + b },
	"firstLower":    firstLower,
	"goTitleCase":   goTitleCase,
	"goFieldName":   goFieldName,
	"goTypeName":    goTypeName,
	"modelDataType": func(t string) string { return scalarTypes[t] },
	"quote":         func(s string) string { return fmt.Sprintf("%q", s) },
	"recv":          func(name string) string { return strings.ToLower(name[:1]) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		constantsTmpl +
		entityStructTmpl +
		accessorsTmpl +
		fieldsTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by graphwatch-gen. DO NOT EDIT.

package {{.}}

import (
"github.com/graphwatch/graphwatch-go/pkg/model"
)

{{end}}`

const constantsTmpl = `{{define "constants"}}
{{- if .Fields}}
// {{.Name}} field names.
const (
{{- range .Fields}}
{{concat $.Name (concat "Field" (goTitleCase .Name))}} = {{quote (goTitleCase .Name)}}
{{- end}}
)
{{end}}
{{end}}`

const entityStructTmpl = `{{define "entityStruct"}}
{{- if .Description}}
// {{.Name}} is {{firstLower .Description}}.
{{- else}}
// {{.Name}} is an observable entity.
{{- end}}
type {{.Name}} struct {
model.Notifier
{{- if .Fields}}
{{end}}
{{- range .Fields}}
{{goFieldName .Name}} {{goTypeName .}}
{{- end}}
}

{{end}}`

const accessorsTmpl = `{{define "accessors"}}
{{- $name := .Name}}
{{- $recv := recv .Name}}
{{- range .Fields}}
{{- $title := goTitleCase .Name}}
{{- if .Description}}
// {{$title}} returns {{firstLower .Description}}.
{{- else}}
// {{$title}} returns the {{firstLower $title}} field.
{{- end}}
func ({{$recv}} *{{$name}}) {{$title}}() {{goTypeName .}} {
return {{$recv}}.{{goFieldName .Name}}
}

// Set{{$title}} sets the {{firstLower $title}} field and notifies subscribers
// if the value changed. Returns true if it changed.
func ({{$recv}} *{{$name}}) Set{{$title}}(v {{goTypeName .}}) bool {
return model.Set({{$recv}}, &{{$recv}}.{{goFieldName .Name}}, {{concat $name (concat "Field" $title)}}, v)
}

{{end}}
{{- end}}`

const fieldsTmpl = `{{define "fields"}}
{{- $name := .Name}}
{{- $recv := recv .Name}}
// Fields implements model.Entity.
func ({{$recv}} *{{$name}}) Fields() []model.Field {
return []model.Field{
{{- range .Fields}}
{{- $title := goTitleCase .Name}}
{{- $const := concat $name (concat "Field" $title)}}
{{- if .IsEntity}}
{{- if .ReadOnly}}
model.Ref({{$const}}, {{$recv}}.{{$title}}, nil),
{{- else}}
model.Ref({{$const}}, {{$recv}}.{{$title}}, func(v {{goTypeName .}}) { {{$recv}}.Set{{$title}}(v) }),
{{- end}}
{{- else if .ReadOnly}}
model.ValueField({{$const}}, {{modelDataType .Type}}, func() any { return {{$recv}}.{{goFieldName .Name}} }),
{{- else}}
model.WritableField({{$const}}, {{modelDataType .Type}}, {{$recv}}.{{$title}}, func(v {{goTypeName .}}) { {{$recv}}.Set{{$title}}(v) }),
{{- end}}
{{- end}}
}
}

{{end}}`
