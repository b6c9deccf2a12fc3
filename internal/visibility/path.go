package visibility

import (
	"strings"

	"wrapgen/internal/common"
)

// ComponentKind is the kind of a single scope path component.
type ComponentKind int

const (
	ComponentUniversal ComponentKind = iota
	ComponentContainer
	ComponentSelf   // relative to the declaring scope
	ComponentParent // relative to the parent of the declaring scope
	ComponentNamed  // a named module segment
)

// String returns a human-readable representation of the ComponentKind.
func (k ComponentKind) String() string {
	switch k {
	case ComponentUniversal:
		return "universal"
	case ComponentContainer:
		return "container"
	case ComponentSelf:
		return "self"
	case ComponentParent:
		return "super"
	case ComponentNamed:
		return "named"
	default:
		return common.UnknownStr
	}
}

// PathComponent is one element of a normalized ScopePath.
type PathComponent struct {
	Kind ComponentKind
	Name string // only for ComponentNamed
}

// Named returns a named path component.
func Named(name string) PathComponent {
	return PathComponent{Kind: ComponentNamed, Name: name}
}

// String returns the component name, or its kind for unnamed components.
func (c PathComponent) String() string {
	if c.Kind == ComponentNamed {
		return c.Name
	}

	return c.Kind.String()
}

var (
	universalComponent = PathComponent{Kind: ComponentUniversal}
	containerComponent = PathComponent{Kind: ComponentContainer}
	selfComponent      = PathComponent{Kind: ComponentSelf}
	parentComponent    = PathComponent{Kind: ComponentParent}
)

// ScopePath is the normalized, comparable form of a Scope.
// Treat it as immutable once built.
type ScopePath []PathComponent

// Normalize converts a Scope into its ScopePath.
func Normalize(s Scope) ScopePath {
	switch s.Kind {
	case ScopeUniversal:
		return ScopePath{universalComponent}
	case ScopeContainer:
		return ScopePath{universalComponent, containerComponent}
	case ScopeRestricted:
		return normalizeRestricted(s.Path)
	default:
		return ScopePath{selfComponent}
	}
}

func normalizeRestricted(path []string) ScopePath {
	segments := make([]string, 0, len(path))
	for _, seg := range path {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	first, ok := common.First(segments)
	if !ok {
		return ScopePath{}
	}

	var result ScopePath

	switch first {
	case SegmentSelf:
		result = ScopePath{selfComponent}
	case SegmentSuper:
		result = ScopePath{parentComponent}
	default:
		// Absolute paths hang below module-wide visibility so they compare
		// against public and module scopes.
		result = ScopePath{universalComponent, containerComponent, Named(first)}
	}

	for _, seg := range segments[1:] {
		result = append(result, Named(seg))
	}

	return result
}

// HasPrefix reports whether prefix is a leading subsequence of p.
func (p ScopePath) HasPrefix(prefix ScopePath) bool {
	if len(prefix) > len(p) {
		return false
	}

	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}

	return true
}

// Equal reports whether two paths have identical components.
func (p ScopePath) Equal(other ScopePath) bool {
	return len(p) == len(other) && p.HasPrefix(other)
}

// String returns the components joined by "::".
func (p ScopePath) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return strings.Join(parts, "::")
}

// pathFamily identifies the reference frame a path is rooted at.
type pathFamily int

const (
	familyNone pathFamily = iota
	familyAbsolute
	familySelf
	familyParent
)

func (p ScopePath) family() pathFamily {
	head, ok := common.First(p)
	if !ok {
		return familyNone
	}

	switch head.Kind {
	case ComponentUniversal, ComponentContainer:
		return familyAbsolute
	case ComponentSelf:
		return familySelf
	case ComponentParent:
		return familyParent
	default:
		return familyNone
	}
}
