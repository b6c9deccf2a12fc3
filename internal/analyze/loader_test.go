package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrapgen/internal/decl"
	"wrapgen/internal/visibility"
)

const (
	basicPkg   = "wrapgen/examples/basic"
	layeredPkg = "wrapgen/examples/layered"
	unitsPkg   = "wrapgen/examples/layered/internal/units"
)

func loadByName(t *testing.T, patterns ...string) map[string]*decl.Declaration {
	t.Helper()

	decls, err := NewLoader().LoadPackages(patterns...)
	require.NoError(t, err)

	byName := make(map[string]*decl.Declaration, len(decls))
	for _, d := range decls {
		byName[d.Name] = d
	}

	return byName
}

func TestLoader_DirectiveSelectsDeclarations(t *testing.T) {
	decls, err := NewLoader().LoadPackages(basicPkg)
	require.NoError(t, err)

	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
		assert.Equal(t, basicPkg, d.PkgPath)
		assert.NotEmpty(t, d.Pos)
	}

	assert.Equal(t, []string{
		"Email", "Labeled", "Span", "Doubled", "Token", "counter", "Box", "Nothing", "Celsius",
	}, names)
}

func TestLoader_Fields(t *testing.T) {
	decls := loadByName(t, basicPkg)

	email := decls["Email"]
	require.NotNil(t, email)
	assert.Equal(t, decl.ShapeNamed, email.Shape)
	require.Len(t, email.Fields, 1)
	assert.Equal(t, "Address", email.Fields[0].Name)
	assert.Equal(t, "string", email.Fields[0].Type.Expr)
	assert.NotNil(t, email.Fields[0].Type.GoType)
	assert.False(t, email.Fields[0].Marked)

	labeled := decls["Labeled"]
	require.Len(t, labeled.Fields, 2)
	assert.False(t, labeled.Fields[0].Marked)
	assert.True(t, labeled.Fields[1].Marked)
	assert.Equal(t, 1, labeled.Fields[1].Index)
	assert.Equal(t, "[]byte", labeled.Fields[1].Type.Expr)

	span := decls["Span"]
	require.Len(t, span.Fields, 2)
	assert.Equal(t, "time.Time", span.Fields[0].Type.Expr)
}

func TestLoader_MarkerOptions(t *testing.T) {
	doubled := loadByName(t, basicPkg)["Doubled"]
	require.Len(t, doubled.Fields, 2)
	assert.True(t, doubled.Fields[0].Marked)
	assert.True(t, doubled.Fields[1].Marked, "marker may be combined with other options")
}

func TestLoader_CustomTag(t *testing.T) {
	l := NewLoader()
	l.TagKey = "json"
	l.TagValue = "value"

	decls, err := l.LoadPackages(basicPkg)
	require.NoError(t, err)

	for _, d := range decls {
		if d.Name != "Labeled" {
			continue
		}
		assert.True(t, d.Fields[1].Marked)
	}
}

func TestLoader_UnsupportedDeclarations(t *testing.T) {
	decls := loadByName(t, basicPkg)

	box := decls["Box"]
	require.NotNil(t, box)
	assert.Equal(t, []string{"T"}, box.TypeParams)
	require.ErrorIs(t, box.Validate(), decl.ErrGeneric)

	celsius := decls["Celsius"]
	require.NotNil(t, celsius)
	assert.Equal(t, decl.ShapeInvalid, celsius.Shape)
	assert.Empty(t, celsius.Fields)

	nothing := decls["Nothing"]
	require.NotNil(t, nothing)
	assert.Equal(t, decl.ShapeNamed, nothing.Shape)
	assert.Empty(t, nothing.Fields)
}

func TestLoader_Visibility(t *testing.T) {
	decls := loadByName(t, basicPkg)
	pkgPrivate := visibility.RestrictedTo("examples", "basic", PackageSelf)

	assert.Equal(t, visibility.Universal(), decls["Email"].Visibility)
	assert.Equal(t, visibility.Universal(), decls["Email"].Fields[0].Visibility)

	assert.Equal(t, pkgPrivate, decls["counter"].Visibility)
	assert.Equal(t, visibility.Universal(), decls["counter"].Fields[0].Visibility)

	assert.Equal(t, visibility.Universal(), decls["Token"].Visibility)
	assert.Equal(t, pkgPrivate, decls["Token"].Fields[0].Visibility)
}

func TestLoader_InternalPackages(t *testing.T) {
	decls := loadByName(t, layeredPkg+"/...")

	layeredTree := visibility.RestrictedTo("examples", "layered")

	meters := decls["Meters"]
	require.NotNil(t, meters)
	assert.Equal(t, unitsPkg, meters.PkgPath)
	assert.Equal(t, layeredTree, meters.Visibility)
	assert.Equal(t, layeredTree, meters.Fields[0].Visibility)

	gauge := decls["Gauge"]
	require.NotNil(t, gauge)
	assert.Equal(t,
		visibility.RestrictedTo("examples", "layered", "internal", "units", PackageSelf),
		gauge.Fields[1].Visibility)

	route := decls["Route"]
	require.NotNil(t, route)
	assert.Equal(t, visibility.Universal(), route.Visibility)
	assert.Equal(t, unitsPkg+".Meters", route.Fields[1].Type.Expr)
}

func TestLoader_PackageErrors(t *testing.T) {
	_, err := NewLoader().LoadPackages("wrapgen/examples/does-not-exist")
	require.Error(t, err)
}

func TestLoader_HasDirective(t *testing.T) {
	l := NewLoader()
	assert.False(t, l.hasDirective(nil))
}
