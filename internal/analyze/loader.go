package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"wrapgen/internal/decl"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedModule

// Defaults for the source annotations.
const (
	DefaultDirective = "wrapgen:wrap"
	DefaultTagKey    = "wrap"
	DefaultTagValue  = "inner"
)

// Loader loads Go packages and extracts annotated declarations.
type Loader struct {
	// Directive marks a type for wrapping, written as "//<Directive>".
	Directive string
	// TagKey is the struct tag key carrying the inner-value marker.
	TagKey string
	// TagValue is the tag option that marks the inner value.
	TagValue string
	// Dir is the working directory for package loading (empty for cwd).
	Dir string
}

// NewLoader creates a Loader with the default annotations.
func NewLoader() *Loader {
	return &Loader{
		Directive: DefaultDirective,
		TagKey:    DefaultTagKey,
		TagValue:  DefaultTagValue,
	}
}

// LoadPackages loads the specified packages and returns every declaration
// carrying the wrap directive, in package then source order.
// Patterns are standard Go package patterns (e.g., "./...", "wrapgen/examples/basic").
func (l *Loader) LoadPackages(patterns ...string) ([]*decl.Declaration, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var decls []*decl.Declaration
	for _, pkg := range pkgs {
		decls = append(decls, l.processPackage(pkg)...)
	}

	return decls, nil
}

// processPackage extracts annotated declarations from a loaded package.
func (l *Loader) processPackage(pkg *packages.Package) []*decl.Declaration {
	modulePath := ""
	if pkg.Module != nil {
		modulePath = pkg.Module.Path
	}

	var decls []*decl.Declaration
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				if !l.hasDirective(doc) {
					continue
				}

				obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				decls = append(decls, l.declaration(pkg, modulePath, ts, obj))
			}
		}
	}

	return decls
}

// hasDirective reports whether a doc comment carries the directive line.
// CommentGroup.Text drops directives, so the raw comments are inspected.
func (l *Loader) hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if text == l.Directive || strings.HasPrefix(text, l.Directive+" ") {
			return true
		}
	}

	return false
}

func (l *Loader) declaration(pkg *packages.Package, modulePath string, ts *ast.TypeSpec, obj *types.TypeName) *decl.Declaration {
	d := &decl.Declaration{
		Name:       obj.Name(),
		PkgPath:    pkg.PkgPath,
		Pos:        pkg.Fset.Position(ts.Pos()).String(),
		Visibility: ScopeFor(pkg.PkgPath, modulePath, obj.Exported()),
	}

	if ts.TypeParams != nil {
		for _, f := range ts.TypeParams.List {
			for _, n := range f.Names {
				d.TypeParams = append(d.TypeParams, n.Name)
			}
		}
	}

	// Aliases are not declarations of their own.
	if ts.Assign.IsValid() {
		return d
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return d
	}

	d.Shape = decl.ShapeNamed
	qualifier := types.RelativeTo(pkg.Types)

	for i := range st.NumFields() {
		f := st.Field(i)

		d.Fields = append(d.Fields, decl.Field{
			Index: i,
			Name:  f.Name(),
			Type: decl.TypeRef{
				Expr:   types.TypeString(f.Type(), qualifier),
				GoType: f.Type(),
			},
			Visibility: ScopeFor(pkg.PkgPath, modulePath, f.Exported()),
			Marked:     l.isMarked(reflect.StructTag(st.Tag(i))),
		})
	}

	return d
}

// isMarked reports whether the tag lists the marker option, e.g.
// `wrap:"inner"` or `wrap:"inner,readonly"`.
func (l *Loader) isMarked(tag reflect.StructTag) bool {
	value, ok := tag.Lookup(l.TagKey)
	if !ok {
		return false
	}

	for opt := range strings.SplitSeq(value, ",") {
		if strings.TrimSpace(opt) == l.TagValue {
			return true
		}
	}

	return false
}
