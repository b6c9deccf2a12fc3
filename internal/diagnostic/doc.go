// Package diagnostic provides structured errors, warnings and notes that
// explain to a declaration's author why wrapper code was or was not
// planned.
//
// Key capabilities:
//   - Inner field selection failures (no fields, ambiguous, multiply marked)
//   - Unsupported declaration shapes and generic declarations
//   - Mutable access denied by a narrower or incomparable field visibility
package diagnostic
