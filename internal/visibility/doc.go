// Package visibility normalizes visibility descriptors into comparable
// scope paths and decides whether one scope contains another.
//
// Scopes form a tree. Absolute scopes (public, module-wide and explicit
// module paths) share one spine rooted at Universal:
//
//	public            -> [Universal]
//	module            -> [Universal Container]
//	in a/b            -> [Universal Container a b]
//
// Self- and parent-relative scopes form spines of their own:
//
//	private           -> [Self]
//	in self/x         -> [Self x]
//	in super/b        -> [Parent b]
//
// A shorter path is a broader scope than any longer path it prefixes.
// Paths on different spines are never compared; Contains reports
// Indeterminate for them instead of guessing how "self" or "super" resolve.
package visibility
