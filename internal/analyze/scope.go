package analyze

import (
	"slices"
	"strings"

	"wrapgen/internal/visibility"
)

// PackageSelf is the path segment that stands for a package itself, as
// opposed to the directory tree rooted at it.
const PackageSelf = "."

// ScopeFor translates Go visibility into a scope relative to the module.
//
//   - unexported identifiers are visible in their package only:
//     "in <pkg>/."
//   - exported identifiers outside internal trees are public
//   - exported identifiers below "<root>/internal" are visible in <root>'s
//     tree: module-wide when <root> is the module, "in <root>" otherwise
func ScopeFor(pkgPath, modulePath string, exported bool) visibility.Scope {
	if !exported {
		return visibility.RestrictedTo(append(splitImportPath(relative(pkgPath, modulePath)), PackageSelf)...)
	}

	elems := strings.Split(pkgPath, "/")

	i := lastIndex(elems, "internal")
	if i < 0 {
		return visibility.Universal()
	}

	root := relative(strings.Join(elems[:i], "/"), modulePath)
	if root == "" {
		return visibility.Container()
	}

	return visibility.RestrictedTo(splitImportPath(root)...)
}

// relative strips the module path prefix from an import path.
func relative(pkgPath, modulePath string) string {
	if modulePath == "" {
		return pkgPath
	}

	if pkgPath == modulePath {
		return ""
	}

	if rest, ok := strings.CutPrefix(pkgPath, modulePath+"/"); ok {
		return rest
	}

	return pkgPath
}

func splitImportPath(p string) []string {
	if p == "" {
		return nil
	}

	return strings.Split(p, "/")
}

func lastIndex(elems []string, elem string) int {
	for i, e := range slices.Backward(elems) {
		if e == elem {
			return i
		}
	}

	return -1
}
