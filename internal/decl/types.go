// Package decl defines the declaration model consumed by the wrapper
// analysis: one record type, its fields, and their visibility scopes.
//
// Declarations are built once by an upstream loader (Go packages or a YAML
// manifest) and are not modified afterwards.
package decl

import (
	"errors"
	"fmt"
	"go/types"
	"strconv"

	"wrapgen/internal/common"
	"wrapgen/internal/visibility"
)

// Shape describes how a declaration's fields are identified.
type Shape int

const (
	ShapeInvalid Shape = iota // not a record type (e.g. a named scalar or an alias)
	ShapeTuple                // fields identified by position
	ShapeNamed                // fields identified by name
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapeInvalid:
		return "invalid"
	case ShapeTuple:
		return "tuple"
	case ShapeNamed:
		return "named"
	default:
		return common.UnknownStr
	}
}

// Validation errors for declarations the analysis refuses to handle.
var (
	ErrGeneric          = errors.New("declarations with type parameters are not supported")
	ErrUnsupportedShape = errors.New("only struct declarations can be wrapped")
)

// TypeRef is an opaque reference to a field type.
type TypeRef struct {
	Expr   string     // printable type expression, e.g. "[]byte"
	GoType types.Type // original go/types type, nil for manifest input
}

// String returns the type expression.
func (t TypeRef) String() string {
	return t.Expr
}

// Field is one member of a declaration.
type Field struct {
	Index      int              // 0-based position, always set
	Name       string           // empty for tuple fields
	Type       TypeRef          // threaded through unexamined
	Visibility visibility.Scope // field visibility
	Marked     bool             // carries the inner-value marker
}

// Ident returns the field name, or its position for tuple fields.
func (f Field) Ident() string {
	if f.Name != "" {
		return f.Name
	}

	return strconv.Itoa(f.Index)
}

// Declaration is one record type to analyze.
type Declaration struct {
	Name       string
	PkgPath    string // empty for manifest input
	Pos        string // source position, if known
	Visibility visibility.Scope
	Shape      Shape
	TypeParams []string
	Fields     []Field
}

// ID returns the package-qualified declaration name.
func (d *Declaration) ID() string {
	if d.PkgPath == "" {
		return d.Name
	}

	return d.PkgPath + "." + d.Name
}

// Validate rejects declarations whose form the analysis does not support.
// An empty field list is left to the selector, which reports it.
func (d *Declaration) Validate() error {
	if d.Shape != ShapeTuple && d.Shape != ShapeNamed {
		return fmt.Errorf("%s: %w", d.Name, ErrUnsupportedShape)
	}

	if len(d.TypeParams) > 0 {
		return fmt.Errorf("%s%v: %w", d.Name, d.TypeParams, ErrGeneric)
	}

	return nil
}
