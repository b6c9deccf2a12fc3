// Package plan decides what wrapper code may be generated for each
// declaration and explains every refusal with a diagnostic.
//
// Planning pipeline, per declaration:
//  1. Reject unsupported declarations (non-struct shapes, type parameters)
//  2. Select the inner field (marker first, single-field fallback)
//  3. Classify the wrapper form (tuple / n-ary tuple / single / multi)
//  4. Allow immutable access unconditionally
//  5. When mutable access is requested, allow it only if the inner field
//     is at least as visible as the declaration
//
// Declarations share no state, so BuildAll plans them concurrently.
package plan
