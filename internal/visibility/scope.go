package visibility

import (
	"errors"
	"fmt"
	"strings"

	"wrapgen/internal/common"
)

// ScopeKind distinguishes the visibility descriptor forms.
type ScopeKind int

const (
	ScopePrivate    ScopeKind = iota // no modifier, visible in the declaring scope only
	ScopeUniversal                   // public everywhere
	ScopeContainer                   // visible throughout the enclosing module
	ScopeRestricted                  // visible within an explicit path
)

// String returns a human-readable representation of the ScopeKind.
func (k ScopeKind) String() string {
	switch k {
	case ScopePrivate:
		return "private"
	case ScopeUniversal:
		return "public"
	case ScopeContainer:
		return "module"
	case ScopeRestricted:
		return "restricted"
	default:
		return common.UnknownStr
	}
}

// Path segments with special meaning at the head of a restricted path.
const (
	SegmentSelf  = "self"
	SegmentSuper = "super"
)

// Scope is a raw, unnormalized visibility descriptor.
// The zero value is a private scope.
type Scope struct {
	Kind ScopeKind
	Path []string // only for ScopeRestricted, e.g. ["super", "b"] or ["a", "b", "c"]
}

// Universal returns the public-everywhere scope.
func Universal() Scope { return Scope{Kind: ScopeUniversal} }

// Container returns the module-wide scope.
func Container() Scope { return Scope{Kind: ScopeContainer} }

// Private returns the declaring-scope-only scope.
func Private() Scope { return Scope{Kind: ScopePrivate} }

// RestrictedTo returns a scope limited to the given path.
func RestrictedTo(segments ...string) Scope {
	return Scope{
		Kind: ScopeRestricted,
		Path: append([]string(nil), segments...),
	}
}

// String renders the scope in the syntax accepted by ParseScope.
func (s Scope) String() string {
	if s.Kind == ScopeRestricted {
		return "in " + strings.Join(s.Path, "/")
	}

	return s.Kind.String()
}

// ParseScope parses a textual scope descriptor.
//
// Accepted forms:
//   - "public", "pub"
//   - "module", "crate", "container"
//   - "private", "" (no modifier)
//   - "in <path>", where <path> is separated by "/" or "::" and may start
//     with "self" or "super"
//   - "self", "super" as shorthands for "in self" and "in super"
func ParseScope(s string) (Scope, error) {
	text := strings.TrimSpace(s)

	lower := strings.ToLower(text)

	switch lower {
	case "public", "pub":
		return Universal(), nil
	case "module", "crate", "container":
		return Container(), nil
	case "private", "":
		return Private(), nil
	case SegmentSelf, SegmentSuper:
		return RestrictedTo(lower), nil
	}

	rest, ok := strings.CutPrefix(text, "in ")
	if !ok {
		return Scope{}, fmt.Errorf("invalid scope %q: expected public, module, private or \"in <path>\"", s)
	}

	segments := splitPath(rest)
	if len(segments) == 0 {
		return Scope{}, errors.New("invalid scope: \"in\" requires a path")
	}

	return RestrictedTo(segments...), nil
}

// splitPath splits a "/" or "::" separated path, dropping empty segments.
func splitPath(path string) []string {
	path = strings.ReplaceAll(strings.TrimSpace(path), "::", "/")

	var segments []string
	for part := range strings.SplitSeq(path, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		segments = append(segments, part)
	}

	return segments
}
