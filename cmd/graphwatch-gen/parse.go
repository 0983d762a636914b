package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawDefs represents an entity definition file loaded from YAML.
type RawDefs struct {
	Package  string         `yaml:"package"`
	Entities []RawEntityDef `yaml:"entities"`
}

// RawEntityDef represents one entity type.
type RawEntityDef struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Fields      []RawFieldDef `yaml:"fields"`
}

// RawFieldDef represents one field of an entity.
type RawFieldDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`   // "string", "int64", "bool", ...
	Entity      string `yaml:"entity"` // Optional: references another entity by name
	Access      string `yaml:"access"` // "readOnly", "readWrite" (default)
	Description string `yaml:"description"`
}

// IsEntity returns true if the field is a containment edge.
func (f RawFieldDef) IsEntity() bool {
	return f.Entity != ""
}

// ReadOnly returns true if the field descriptor rejects writes.
func (f RawFieldDef) ReadOnly() bool {
	return f.Access == "readOnly"
}

// ParseDefs parses entity definitions from YAML bytes.
func ParseDefs(data []byte) (*RawDefs, error) {
	var defs RawDefs
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing entity defs: %w", err)
	}
	if err := validateDefs(&defs); err != nil {
		return nil, err
	}
	return &defs, nil
}

// LoadDefs loads and parses entity definitions from a file.
func LoadDefs(path string) (*RawDefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseDefs(data)
}

func validateDefs(defs *RawDefs) error {
	known := make(map[string]bool, len(defs.Entities))
	for _, e := range defs.Entities {
		if e.Name == "" {
			return fmt.Errorf("entity definition missing name")
		}
		if known[e.Name] {
			return fmt.Errorf("duplicate entity %s", e.Name)
		}
		known[e.Name] = true
	}

	for _, e := range defs.Entities {
		seen := make(map[string]bool, len(e.Fields))
		for _, f := range e.Fields {
			if f.Name == "" {
				return fmt.Errorf("entity %s: field missing name", e.Name)
			}
			if seen[f.Name] {
				return fmt.Errorf("entity %s: duplicate field %s", e.Name, f.Name)
			}
			seen[f.Name] = true

			switch {
			case f.IsEntity():
				if !known[f.Entity] {
					return fmt.Errorf("entity %s: field %s references unknown entity %s", e.Name, f.Name, f.Entity)
				}
			case f.Type == "":
				return fmt.Errorf("entity %s: field %s needs a type or an entity", e.Name, f.Name)
			default:
				if _, ok := scalarTypes[f.Type]; !ok {
					return fmt.Errorf("entity %s: field %s: unsupported type %q", e.Name, f.Name, f.Type)
				}
			}

			if f.Access != "" && f.Access != "readOnly" && f.Access != "readWrite" {
				return fmt.Errorf("entity %s: field %s: unknown access %q", e.Name, f.Name, f.Access)
			}
		}
	}
	return nil
}
