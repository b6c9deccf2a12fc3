// Package analyze loads Go packages and turns annotated type declarations
// into the declaration model checked by the planner.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. A type is
// picked up when its doc comment carries the directive line
//
//	//wrapgen:wrap
//
// and a struct field is marked as the inner value with a struct tag such as
// `wrap:"inner"`. Go visibility (exported identifiers, internal packages)
// is translated into visibility scopes rooted at the module path.
package analyze
