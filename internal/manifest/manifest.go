// Package manifest reads declarations described in YAML, for sources the
// Go loader cannot parse.
//
// # Schema Overview
//
//	version: "1"
//	declarations:
//	  - name: Quux
//	    visibility: module          # public | module | private | in <path>
//	    shape: named                # named (default) | tuple
//	    typeParams: []
//	    fields:
//	      - name: field1            # omitted for tuple fields
//	        type: u32
//	        visibility: private
//	      - name: field2
//	        type: String
//	        visibility: public
//	        inner: true             # the inner-value marker
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"wrapgen/internal/decl"
	"wrapgen/internal/visibility"
)

// File is the root YAML structure.
type File struct {
	Version      string        `yaml:"version"`
	Declarations []Declaration `yaml:"declarations"`
}

// Declaration is the YAML form of a decl.Declaration.
type Declaration struct {
	Name       string   `yaml:"name"`
	Visibility string   `yaml:"visibility,omitempty"`
	Shape      string   `yaml:"shape,omitempty"`
	TypeParams []string `yaml:"typeParams,omitempty"`
	Fields     []Field  `yaml:"fields"`
}

// Field is the YAML form of a decl.Field.
type Field struct {
	Name       string `yaml:"name,omitempty"`
	Type       string `yaml:"type"`
	Visibility string `yaml:"visibility,omitempty"`
	Inner      bool   `yaml:"inner,omitempty"`
}

// LoadFile reads and converts a YAML manifest from the given path.
func LoadFile(path string) ([]*decl.Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data and converts it into declarations.
func Parse(data []byte) ([]*decl.Declaration, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	return f.Convert()
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Declarations {
		d := &f.Declarations[i]
		if d.Shape == "" {
			d.Shape = decl.ShapeNamed.String()
		}
	}
}

// Convert turns the YAML declarations into the declaration model.
func (f *File) Convert() ([]*decl.Declaration, error) {
	if f.Version != "1" {
		return nil, fmt.Errorf("unsupported manifest version %q", f.Version)
	}

	out := make([]*decl.Declaration, 0, len(f.Declarations))
	for i := range f.Declarations {
		d, err := f.Declarations[i].convert()
		if err != nil {
			return nil, fmt.Errorf("declaration %d (%s): %w", i, f.Declarations[i].Name, err)
		}

		out = append(out, d)
	}

	return out, nil
}

func (d *Declaration) convert() (*decl.Declaration, error) {
	if d.Name == "" {
		return nil, errors.New("missing name")
	}

	shape, err := parseShape(d.Shape)
	if err != nil {
		return nil, err
	}

	vis, err := visibility.ParseScope(d.Visibility)
	if err != nil {
		return nil, err
	}

	out := &decl.Declaration{
		Name:       d.Name,
		Visibility: vis,
		Shape:      shape,
		TypeParams: d.TypeParams,
	}

	for i, f := range d.Fields {
		fieldVis, err := visibility.ParseScope(f.Visibility)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}

		switch {
		case shape == decl.ShapeNamed && f.Name == "":
			return nil, fmt.Errorf("field %d: named declarations need field names", i)
		case shape == decl.ShapeTuple && f.Name != "":
			return nil, fmt.Errorf("field %d: tuple fields are positional, got name %q", i, f.Name)
		}

		out.Fields = append(out.Fields, decl.Field{
			Index:      i,
			Name:       f.Name,
			Type:       decl.TypeRef{Expr: f.Type},
			Visibility: fieldVis,
			Marked:     f.Inner,
		})
	}

	return out, nil
}

func parseShape(s string) (decl.Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "named", "struct":
		return decl.ShapeNamed, nil
	case "tuple":
		return decl.ShapeTuple, nil
	default:
		return decl.ShapeInvalid, fmt.Errorf("unsupported shape %q (want named or tuple)", s)
	}
}
