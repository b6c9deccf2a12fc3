// Package selector picks the field a wrapper type should behave like.
package selector

import (
	"errors"
	"fmt"
	"strings"

	"wrapgen/internal/common"
	"wrapgen/internal/decl"
)

// Kind classifies why no inner field could be selected.
type Kind int

const (
	KindEmpty          Kind = iota // no fields at all
	KindAmbiguous                  // several fields, none marked
	KindMultiplyMarked             // more than one field marked
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindAmbiguous:
		return "ambiguous"
	case KindMultiplyMarked:
		return "multiply marked"
	default:
		return common.UnknownStr
	}
}

// Sentinel errors matched by SelectionError.Is.
var (
	ErrEmpty          = errors.New("declaration has no fields")
	ErrAmbiguous      = errors.New("cannot tell which field is the inner value")
	ErrMultiplyMarked = errors.New("more than one field is marked as the inner value")
)

// SelectionError reports a failed selection.
type SelectionError struct {
	Kind   Kind
	Fields []string // identifiers of the candidate or offending fields
}

func (e *SelectionError) sentinel() error {
	switch e.Kind {
	case KindAmbiguous:
		return ErrAmbiguous
	case KindMultiplyMarked:
		return ErrMultiplyMarked
	default:
		return ErrEmpty
	}
}

// Error implements error.
func (e *SelectionError) Error() string {
	if len(e.Fields) == 0 {
		return e.sentinel().Error()
	}

	return fmt.Sprintf("%v (%s)", e.sentinel(), strings.Join(e.Fields, ", "))
}

// Is makes errors.Is match the sentinel for the error's Kind.
func (e *SelectionError) Is(target error) bool {
	return target == e.sentinel()
}

// Select returns the field marked as the inner value, or the only field
// when there is exactly one and none is marked. The result depends on the
// markers alone, never on field order.
func Select(fields []decl.Field) (decl.Field, error) {
	var marked, unmarked []decl.Field
	for _, f := range fields {
		if f.Marked {
			marked = append(marked, f)
		} else {
			unmarked = append(unmarked, f)
		}
	}

	if common.IsSingle(marked) {
		return marked[0], nil
	}

	if common.IsEmpty(marked) && common.IsSingle(unmarked) {
		return unmarked[0], nil
	}

	switch {
	case common.IsMultiple(marked):
		return decl.Field{}, &SelectionError{Kind: KindMultiplyMarked, Fields: idents(marked)}
	case common.IsEmpty(fields):
		return decl.Field{}, &SelectionError{Kind: KindEmpty}
	default:
		return decl.Field{}, &SelectionError{Kind: KindAmbiguous, Fields: idents(unmarked)}
	}
}

func idents(fields []decl.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Ident()
	}

	return out
}
