package ignore

import (
	"regexp"
	"strings"
)

// Rule is one compiled pattern line from a marker file. The matcher is
// anchored to the declaring directory, so a rule can only ever match paths
// inside the subtree it was declared in. Rules are immutable once built.
type Rule struct {
	// Negated re-includes a path that an earlier-checked rule would exclude.
	Negated bool

	// DirOnly restricts the rule to directory paths (trailing "/" in the
	// source line).
	DirOnly bool

	// Text is the source line after trailing-whitespace trimming, kept for
	// diagnostics.
	Text string

	re *regexp.Regexp
}

// CompileLine translates one marker-file line into a Rule.
//
// root is the absolute forward-slash walk root; dir is the declaring
// directory relative to root ("" for the root itself). Blank lines,
// comment lines, and lines that are empty once markers are stripped
// produce a nil Rule with a nil error. A pattern the regexp engine
// rejects (for example an unterminated bracket set) returns the engine's
// error; callers decide how to surface it.
func CompileLine(line, root, dir string) (*Rule, error) {
	text := trimTrailingWhitespace(line)
	if isBlankOrComment(text) {
		return nil, nil
	}

	rule := &Rule{}

	// "!" negates only at the head of the line; "\!" and "\#" put the
	// literal character back.
	if strings.HasPrefix(text, "!") {
		rule.Negated = true
		text = text[1:]
	} else if strings.HasPrefix(text, `\!`) || strings.HasPrefix(text, `\#`) {
		text = text[1:]
	}

	if strings.HasSuffix(text, "/") {
		rule.DirOnly = true
		text = strings.TrimSuffix(text, "/")
	}

	if text == "" {
		return nil, nil
	}
	rule.Text = text

	// A leading "/" anchors the pattern directly under the declaring
	// directory; anything else floats to any depth beneath it.
	body := text
	if !strings.HasPrefix(body, "/") {
		body = "/**/" + body
	}

	prefix := strings.TrimSuffix(root, "/")
	if dir != "" {
		prefix += "/" + dir
	}

	expr := "^" + regexp.QuoteMeta(prefix) + translate(body)
	if !rule.DirOnly {
		// Everything nested beneath a matched directory matches too.
		expr += "(?:/.*)?"
	}
	expr += "$"

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	rule.re = re

	return rule, nil
}

// Matches reports whether the rule applies to the given absolute
// forward-slash path. Directory-only rules never match files.
func (r *Rule) Matches(path string, isDir bool) bool {
	if r.DirOnly && !isDir {
		return false
	}
	return r.re.MatchString(path)
}

// isBlankOrComment reports whether a trimmed line carries no pattern:
// empty, whitespace only, or a comment (first non-whitespace character
// is '#'). An escaped "\#" is a pattern and handled by CompileLine.
func isBlankOrComment(text string) bool {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t':
		case '#':
			return true
		default:
			return false
		}
	}
	return true
}

// trimTrailingWhitespace removes the trailing run of unescaped spaces and
// tabs. A whitespace character preceded by an odd number of backslashes
// is escaped and survives.
func trimTrailingWhitespace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		backslashes := 0
		for i := end - 2; i >= 0 && line[i] == '\\'; i-- {
			backslashes++
		}
		if backslashes%2 == 1 {
			break
		}
		end--
	}
	return line[:end]
}

// translate converts glob text into regexp source. "/**" as a complete
// segment spans any depth, "*" and "?" never cross a "/", bracket sets
// become character classes, and everything else is matched literally.
func translate(pattern string) string {
	var sb strings.Builder
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			sb.WriteString(regexp.QuoteMeta(lit.String()))
			lit.Reset()
		}
	}

	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch c {
		case '/':
			if strings.HasPrefix(pattern[i:], "/**") &&
				(i+3 == len(pattern) || pattern[i+3] == '/') {
				flush()
				sb.WriteString("(?:/.*)?")
				i += 3
				continue
			}
			lit.WriteByte('/')
			i++
		case '*':
			flush()
			sb.WriteString("[^/]*")
			i++
		case '?':
			flush()
			sb.WriteString("[^/]")
			i++
		case '[':
			flush()
			class, n := translateClass(pattern[i:])
			sb.WriteString(class)
			i += n
		case '\\':
			if i+1 < len(pattern) {
				switch next := pattern[i+1]; next {
				case '*', '?', '[', '\\', ' ', '\t':
					lit.WriteByte(next)
					i += 2
					continue
				}
			}
			lit.WriteByte('\\')
			i++
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	return sb.String()
}

// translateClass converts a bracket set starting at pattern[0] == '[' into
// a regexp character class and reports how many input bytes it consumed.
// A leading "!" negates; a "]" right after "[" or "[!" is a literal member
// (the regexp engine accepts it in that position). An unterminated set is
// emitted without its closing bracket so compilation fails in the engine
// instead of the rule being silently dropped.
func translateClass(pattern string) (string, int) {
	var sb strings.Builder
	sb.WriteByte('[')

	i := 1
	if i < len(pattern) && pattern[i] == '!' {
		sb.WriteByte('^')
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		sb.WriteByte(']')
		i++
	}
	for i < len(pattern) && pattern[i] != ']' {
		if pattern[i] == '\\' {
			// Backslashes inside a set are literal members.
			sb.WriteString(`\\`)
			i++
			continue
		}
		sb.WriteByte(pattern[i])
		i++
	}
	if i < len(pattern) {
		sb.WriteByte(']')
		i++
	}

	return sb.String(), i
}
