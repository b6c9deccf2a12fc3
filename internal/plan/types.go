package plan

import (
	"wrapgen/internal/common"
	"wrapgen/internal/decl"
	"wrapgen/internal/diagnostic"
	"wrapgen/internal/visibility"
)

// Form classifies a wrapper by its declaration shape and field count.
type Form int

const (
	// FormNone - no inner field could be selected.
	FormNone Form = iota
	// FormTuple - a positional declaration with a single field.
	FormTuple
	// FormNaryTuple - a positional declaration with a marked field among several.
	FormNaryTuple
	// FormSingle - a named declaration with a single field.
	FormSingle
	// FormMulti - a named declaration with a marked field among several.
	FormMulti
)

// String returns a human-readable representation of the Form.
func (f Form) String() string {
	switch f {
	case FormNone:
		return "none"
	case FormTuple:
		return "tuple"
	case FormNaryTuple:
		return "n-ary tuple"
	case FormSingle:
		return "single"
	case FormMulti:
		return "multi"
	default:
		return common.UnknownStr
	}
}

// Plan is the analysis outcome for one declaration.
type Plan struct {
	// Declaration the plan was built for.
	Declaration *decl.Declaration
	// Form of the wrapper; FormNone when selection failed.
	Form Form
	// Inner is the selected inner field (valid only when Form != FormNone).
	Inner decl.Field
	// Access is the field-versus-declaration visibility comparison.
	Access visibility.Containment
	// AccessChecked is true if Access was computed, which happens only when
	// mutable access was requested.
	AccessChecked bool
	// Immutable is true if read-only access (deref, as-ref, conversions)
	// may be generated.
	Immutable bool
	// Mutable is true if mutating access may be generated.
	Mutable bool
	// Diagnostics explains the decisions above.
	Diagnostics diagnostic.Diagnostics
}

// Plans is an ordered collection of plans.
type Plans []*Plan

// Diagnostics merges the diagnostics of all plans.
func (ps Plans) Diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics
	for _, p := range ps {
		all.Merge(p.Diagnostics)
	}

	return all
}

// Options controls planning.
type Options struct {
	// Mutable requests mutable-access generation.
	Mutable bool
	// Workers bounds BuildAll concurrency. Values below 1 mean one worker.
	Workers int
	// MarkerHint is shown in suggestions to tell authors how to mark a field.
	MarkerHint string
}

// DefaultOptions returns the default planning options.
func DefaultOptions() Options {
	return Options{
		Mutable:    true,
		Workers:    4,
		MarkerHint: `wrap:"inner"`,
	}
}
