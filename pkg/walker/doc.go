// Package walker enumerates files or directories under a root while
// applying the marker-file rules it discovers along the way.
//
// The walk is depth-first over an explicit work list: each directory is
// visited twice, once to expand it (list children, read its marker file,
// push its rules, emit surviving entries) and once to contract it (pop
// exactly the rules it contributed). Rules therefore live precisely as
// long as the subtree that declared them. An excluded directory is never
// queued, so its subtree is never read.
//
// Walk returns a pull-based iter.Seq2 sequence; the consumer stops the
// walk by stopping iteration. Each call owns its own work list and rule
// set, so concurrent walks do not interfere.
package walker
