package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapgen/internal/visibility"
)

func TestField_Ident(t *testing.T) {
	assert.Equal(t, "Value", Field{Index: 3, Name: "Value"}.Ident())
	assert.Equal(t, "1", Field{Index: 1}.Ident())
}

func TestDeclaration_ID(t *testing.T) {
	d := &Declaration{Name: "Email", PkgPath: "wrapgen/examples/basic"}
	assert.Equal(t, "wrapgen/examples/basic.Email", d.ID())

	assert.Equal(t, "Quux", (&Declaration{Name: "Quux"}).ID())
}

func TestDeclaration_Validate(t *testing.T) {
	field := Field{Name: "V", Visibility: visibility.Universal()}

	ok := &Declaration{Name: "Ok", Shape: ShapeNamed, Fields: []Field{field}}
	require.NoError(t, ok.Validate())

	tuple := &Declaration{Name: "Pair", Shape: ShapeTuple}
	require.NoError(t, tuple.Validate(), "empty field lists are reported by the selector")

	generic := &Declaration{Name: "Box", Shape: ShapeNamed, TypeParams: []string{"T"}, Fields: []Field{field}}
	err := generic.Validate()
	require.ErrorIs(t, err, ErrGeneric)
	assert.Contains(t, err.Error(), "Box[T]")

	scalar := &Declaration{Name: "Celsius", Shape: ShapeInvalid}
	require.ErrorIs(t, scalar.Validate(), ErrUnsupportedShape)
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "tuple", ShapeTuple.String())
	assert.Equal(t, "named", ShapeNamed.String())
	assert.Equal(t, "invalid", ShapeInvalid.String())
	assert.Equal(t, "unknown", Shape(7).String())
}
