package plan

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"wrapgen/internal/decl"
	"wrapgen/internal/diagnostic"
	"wrapgen/internal/selector"
	"wrapgen/internal/visibility"
)

// Build plans wrapper generation for a single declaration.
func Build(d *decl.Declaration, opts Options) *Plan {
	p := &Plan{Declaration: d}
	name := d.ID()

	if err := d.Validate(); err != nil {
		switch {
		case errors.Is(err, decl.ErrGeneric):
			p.Diagnostics.AddError(diagnostic.CodeGenericDeclaration, err.Error(), name, "")
		default:
			p.Diagnostics.AddError(diagnostic.CodeUnsupportedShape, err.Error(), name, "")
		}

		return p
	}

	inner, err := selector.Select(d.Fields)
	if err != nil {
		addSelectionError(&p.Diagnostics, err, name, opts.MarkerHint)
		return p
	}

	p.Inner = inner
	p.Form = classify(d.Shape, len(d.Fields))
	p.Immutable = true
	p.Diagnostics.AddInfo(diagnostic.CodeInnerSelected,
		fmt.Sprintf("wrapping field %s of type %s (%s)", inner.Ident(), inner.Type, p.Form), name, inner.Ident())

	if opts.Mutable {
		checkMutable(p, name)
	}

	return p
}

// BuildAll plans every declaration, keeping the input order.
func BuildAll(ctx context.Context, decls []*decl.Declaration, opts Options) (Plans, error) {
	plans := make(Plans, len(decls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, d := range decls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			plans[i] = Build(d, opts)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("planning interrupted: %w", err)
	}

	return plans, nil
}

func classify(shape decl.Shape, fieldCount int) Form {
	single := fieldCount == 1

	switch {
	case shape == decl.ShapeTuple && single:
		return FormTuple
	case shape == decl.ShapeTuple:
		return FormNaryTuple
	case single:
		return FormSingle
	default:
		return FormMulti
	}
}

func checkMutable(p *Plan, name string) {
	d := p.Declaration
	p.Access = visibility.FieldAccess(d.Visibility, p.Inner.Visibility)
	p.AccessChecked = true

	switch p.Access {
	case visibility.Visible:
		p.Mutable = true
	case visibility.Restricted:
		p.Diagnostics.AddError(diagnostic.CodeInnerFieldRestricted,
			fmt.Sprintf("mutable access would expose field %s (%s) beyond its visibility; declaration is %s",
				p.Inner.Ident(), p.Inner.Visibility, d.Visibility),
			name, p.Inner.Ident(),
			"make the field at least as visible as the declaration",
			"or request immutable access only")
	default:
		p.Diagnostics.AddError(diagnostic.CodeIndeterminate,
			fmt.Sprintf("cannot compare field %s visibility (%s) with declaration visibility (%s)",
				p.Inner.Ident(), p.Inner.Visibility, d.Visibility),
			name, p.Inner.Ident(),
			"express both visibilities relative to the same root",
			"or request immutable access only")
	}
}

func addSelectionError(diags *diagnostic.Diagnostics, err error, name, hint string) {
	var selErr *selector.SelectionError
	if !errors.As(err, &selErr) {
		diags.AddError(diagnostic.CodeNoFields, err.Error(), name, "")
		return
	}

	switch selErr.Kind {
	case selector.KindAmbiguous:
		diags.AddError(diagnostic.CodeAmbiguousInner, err.Error(), name, "",
			fmt.Sprintf("mark the inner field with %s", hint))
	case selector.KindMultiplyMarked:
		diags.AddError(diagnostic.CodeMultiplyMarked, err.Error(), name, "",
			fmt.Sprintf("keep %s on exactly one field", hint))
	default:
		diags.AddError(diagnostic.CodeNoFields, err.Error(), name, "",
			"add the field the wrapper should behave like")
	}
}
