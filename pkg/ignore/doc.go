// Package ignore compiles gitignore-style pattern lines into matchers and
// manages their directory-scoped lifetime during a walk.
//
// A marker file (".gitignore" by default) declares one pattern per line.
// CompileLine turns a line into a Rule: an anchored matcher over absolute
// forward-slash paths, plus negation and directory-only flags. RuleSet
// holds the rules currently in scope; the walker pushes a region of rules
// when it expands a directory and pops that region when the directory's
// subtree is fully processed, so a rule never outlives the subtree that
// declared it.
//
// Precedence is gitignore's last-match-wins: Evaluate scans the active
// rules most recent first, and the first matching rule decides. A negated
// rule ("!pattern") re-includes, a plain rule excludes, and a path no rule
// matches falls through to the caller's default.
package ignore
