package visibility

import "wrapgen/internal/common"

// Containment is the outcome of comparing two scope paths.
type Containment int

const (
	// Indeterminate means the paths have no common reference point,
	// e.g. a self-relative path against an absolute one.
	Indeterminate Containment = iota
	// Visible means the outer scope contains the inner scope.
	Visible
	// Restricted means the outer scope does not reach all of the inner scope.
	Restricted
)

// String returns a human-readable representation of the Containment.
func (c Containment) String() string {
	switch c {
	case Indeterminate:
		return "indeterminate"
	case Visible:
		return "visible"
	case Restricted:
		return "restricted"
	default:
		return common.UnknownStr
	}
}

// Contains reports whether the outer scope is at least as broad as the
// inner scope. It holds exactly when outer is a prefix of inner, so the
// relation is reflexive for any non-empty path.
func Contains(outer, inner ScopePath) Containment {
	of, inf := outer.family(), inner.family()
	if of == familyNone || of != inf {
		return Indeterminate
	}

	if inner.HasPrefix(outer) {
		return Visible
	}

	return Restricted
}

// FieldAccess reports whether a field with scope field is visible
// everywhere its declaration with scope declaration is. Visible means
// exposing mutable access to the field does not widen the declaration's
// visibility contract.
func FieldAccess(declaration, field Scope) Containment {
	return Contains(Normalize(field), Normalize(declaration))
}
