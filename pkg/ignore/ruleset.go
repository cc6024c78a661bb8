package ignore

import (
	"github.com/arthur-debert/treesift/pkg/errors"
)

// Decision is the outcome of evaluating a path against the active rules.
type Decision int

const (
	// None means no active rule matched; the caller's default applies.
	None Decision = iota
	// Include means the deciding rule was negated (re-include).
	Include
	// Exclude means the deciding rule was a plain exclusion.
	Exclude
)

func (d Decision) String() string {
	switch d {
	case Include:
		return "include"
	case Exclude:
		return "exclude"
	default:
		return "none"
	}
}

// RuleSet holds the rules currently in scope during a walk. Each expanded
// directory contributes a region of rules; regions are popped in strict
// reverse order of pushes, so at any moment the set contains exactly the
// rules of the current directory and its open ancestors.
type RuleSet struct {
	root   string
	active []*Rule
	counts map[string]int
}

// NewRuleSet returns an empty rule set for a walk rooted at root, an
// absolute forward-slash path.
func NewRuleSet(root string) *RuleSet {
	return &RuleSet{
		root:   root,
		counts: make(map[string]int),
	}
}

// EnterDirectory compiles dir's marker lines in file order and appends the
// resulting rules to the active set, recording how many rules dir
// contributed. source names the marker file for diagnostics; lines may be
// nil for directories without a marker. The count is returned so callers
// can observe the region size, but ExitDirectory needs only dir.
func (s *RuleSet) EnterDirectory(dir, source string, lines []string) (int, error) {
	added := 0
	for i, line := range lines {
		rule, err := CompileLine(line, s.root, dir)
		if err != nil {
			s.active = s.active[:len(s.active)-added]
			return 0, errors.Wrapf(err, errors.ErrBadPattern,
				"cannot compile pattern %q", trimTrailingWhitespace(line)).
				WithDetail("file", source).
				WithDetail("line", i+1)
		}
		if rule == nil {
			continue
		}
		s.active = append(s.active, rule)
		added++
	}
	s.counts[dir] = added
	return added, nil
}

// ExitDirectory removes the rules dir contributed and drops its
// bookkeeping entry. Calls must mirror EnterDirectory in reverse order.
func (s *RuleSet) ExitDirectory(dir string) {
	n := s.counts[dir]
	s.active = s.active[:len(s.active)-n]
	delete(s.counts, dir)
}

// Evaluate checks an absolute forward-slash path against the active rules,
// most recently declared first. The first matching rule decides; later
// lines in a marker file therefore win over earlier ones, and rules from
// deeper directories win over ancestors'. Directory-only rules are skipped
// when isDir is false.
func (s *RuleSet) Evaluate(path string, isDir bool) Decision {
	for i := len(s.active) - 1; i >= 0; i-- {
		rule := s.active[i]
		if !rule.Matches(path, isDir) {
			continue
		}
		if rule.Negated {
			return Include
		}
		return Exclude
	}
	return None
}

// Len reports how many rules are currently active.
func (s *RuleSet) Len() int {
	return len(s.active)
}
