package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileLineSkipsNonPatterns(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"whitespace only", "   \t "},
		{"comment", "# build artifacts"},
		{"indented comment", "  # build artifacts"},
		{"bare negation", "!"},
		{"bare slash", "/"},
		{"negated slash", "!/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileLine(tt.line, "/r", "")
			assert.NoError(t, err)
			assert.Nil(t, rule)
		})
	}
}

func TestCompileLineFlags(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantNegated bool
		wantDirOnly bool
		wantText    string
	}{
		{
			name:     "plain pattern",
			line:     "*.log",
			wantText: "*.log",
		},
		{
			name:        "negated",
			line:        "!important.log",
			wantNegated: true,
			wantText:    "important.log",
		},
		{
			name:        "directory only",
			line:        "build/",
			wantDirOnly: true,
			wantText:    "build",
		},
		{
			name:        "negated directory only",
			line:        "!build/",
			wantNegated: true,
			wantDirOnly: true,
			wantText:    "build",
		},
		{
			name:     "escaped bang is literal",
			line:     `\!important`,
			wantText: "!important",
		},
		{
			name:     "escaped hash is literal",
			line:     `\#notes`,
			wantText: "#notes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileLine(tt.line, "/r", "")
			require.NoError(t, err)
			require.NotNil(t, rule)
			assert.Equal(t, tt.wantNegated, rule.Negated)
			assert.Equal(t, tt.wantDirOnly, rule.DirOnly)
			assert.Equal(t, tt.wantText, rule.Text)
		})
	}
}

func TestCompileLineMatching(t *testing.T) {
	type probe struct {
		path  string
		isDir bool
		want  bool
	}

	tests := []struct {
		name   string
		line   string
		dir    string
		probes []probe
	}{
		{
			name: "unanchored name floats to any depth",
			line: "foo",
			probes: []probe{
				{"/r/foo", false, true},
				{"/r/a/foo", false, true},
				{"/r/foo/bar", false, true},
				{"/r/foobar", false, false},
				{"/r/xfoo", false, false},
			},
		},
		{
			name: "leading slash anchors",
			line: "/foo",
			probes: []probe{
				{"/r/foo", false, true},
				{"/r/foo/bar", false, true},
				{"/r/a/foo", false, false},
			},
		},
		{
			name: "star stays within a segment",
			line: "*.log",
			probes: []probe{
				{"/r/a.log", false, true},
				{"/r/d/b.log", false, true},
				{"/r/a.log/nested", false, true},
				{"/r/a.logx", false, false},
			},
		},
		{
			name: "star does not cross separators",
			line: "a*b",
			probes: []probe{
				{"/r/axxb", false, true},
				{"/r/ab", false, true},
				{"/r/a/b", false, false},
			},
		},
		{
			name: "question mark is one character",
			line: "f?o",
			probes: []probe{
				{"/r/fao", false, true},
				{"/r/fo", false, false},
				{"/r/f/o", false, false},
			},
		},
		{
			name: "bracket set",
			line: "[abc]x",
			probes: []probe{
				{"/r/ax", false, true},
				{"/r/cx", false, true},
				{"/r/dx", false, false},
			},
		},
		{
			name: "negated bracket set",
			line: "[!a]pple",
			probes: []probe{
				{"/r/bpple", false, true},
				{"/r/apple", false, false},
			},
		},
		{
			name: "bracket range",
			line: "[a-c]x",
			probes: []probe{
				{"/r/bx", false, true},
				{"/r/dx", false, false},
			},
		},
		{
			name: "literal closing bracket member",
			line: "[]]x",
			probes: []probe{
				{"/r/]x", false, true},
				{"/r/ax", false, false},
			},
		},
		{
			name: "directory only never matches files",
			line: "build/",
			probes: []probe{
				{"/r/build", true, true},
				{"/r/build", false, false},
				{"/r/a/build", true, true},
			},
		},
		{
			name: "double star segment spans depth",
			line: "a/**/b",
			probes: []probe{
				{"/r/a/b", false, true},
				{"/r/a/x/b", false, true},
				{"/r/a/x/y/b", false, true},
				{"/r/a", false, false},
			},
		},
		{
			name: "escaped star is literal",
			line: `\*x`,
			probes: []probe{
				{"/r/*x", false, true},
				{"/r/ax", false, false},
			},
		},
		{
			name: "escaped bracket is literal",
			line: `\[x`,
			probes: []probe{
				{"/r/[x", false, true},
				{"/r/ax", false, false},
			},
		},
		{
			name: "declaring directory scopes the pattern",
			line: "foo",
			dir:  "a/b",
			probes: []probe{
				{"/r/a/b/foo", false, true},
				{"/r/a/b/c/foo", false, true},
				{"/r/foo", false, false},
				{"/r/a/foo", false, false},
			},
		},
		{
			name: "anchored inside declaring directory",
			line: "/foo",
			dir:  "a",
			probes: []probe{
				{"/r/a/foo", false, true},
				{"/r/a/sub/foo", false, false},
				{"/r/foo", false, false},
			},
		},
		{
			name: "escaped trailing space survives",
			line: `ends\ `,
			probes: []probe{
				{"/r/ends ", false, true},
				{"/r/ends", false, false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileLine(tt.line, "/r", tt.dir)
			require.NoError(t, err)
			require.NotNil(t, rule)

			for _, p := range tt.probes {
				assert.Equal(t, p.want, rule.Matches(p.path, p.isDir),
					"pattern %q against %q (dir=%v)", tt.line, p.path, p.isDir)
			}
		})
	}
}

func TestCompileLineRootAnchoring(t *testing.T) {
	// The compiled expression is pinned to the search root: an identical
	// path under a different root must not match.
	rule, err := CompileLine("foo", "/r/one", "")
	require.NoError(t, err)

	assert.True(t, rule.Matches("/r/one/foo", false))
	assert.False(t, rule.Matches("/r/two/foo", false))
	assert.False(t, rule.Matches("/r/onefoo", false))
}

func TestCompileLineMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unterminated bracket set", "[abc"},
		{"unterminated mid pattern", "a[bc"},
		{"unterminated negated set", "[!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileLine(tt.line, "/r", "")
			assert.Error(t, err)
			assert.Nil(t, rule)
		})
	}
}

func TestTrimTrailingWhitespace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no whitespace", "foo", "foo"},
		{"trailing spaces", "foo   ", "foo"},
		{"trailing tabs", "foo\t\t", "foo"},
		{"escaped space kept", `foo\ `, `foo\ `},
		{"escaped then unescaped", `foo\  `, `foo\ `},
		{"double backslash does not escape", `foo\\ `, `foo\\`},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimTrailingWhitespace(tt.in))
		})
	}
}
