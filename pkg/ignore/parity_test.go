package ignore

import (
	"testing"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGitignoreParity cross-checks exclusion verdicts against a widely used
// gitignore matcher. The corpus sticks to the pattern subset both engines
// read the same way: plain names, "*" globs, simple bracket sets, "!"
// negation, and leading-"/" anchors. Interior slashes, "**", "?", negated
// sets, and directory-only rules are interpreted differently by the two
// and stay out.
func TestGitignoreParity(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		paths []string
	}{
		{
			name:  "simple name",
			lines: []string{"build"},
			paths: []string{"build", "build/out.txt", "src/build", "src/build/x", "builds", "rebuild", "src/main.txt"},
		},
		{
			name:  "star suffix",
			lines: []string{"*.log"},
			paths: []string{"app.log", "deep/nested/app.log", "app.log/trace", ".log", "app.logs"},
		},
		{
			name:  "star prefix",
			lines: []string{"temp*"},
			paths: []string{"temp", "temp123", "a/tempfile", "xtemp"},
		},
		{
			name:  "anchored name",
			lines: []string{"/secret"},
			paths: []string{"secret", "secret/inner", "nested/secret"},
		},
		{
			name:  "anchored star",
			lines: []string{"/out*"},
			paths: []string{"out", "output", "deep/output"},
		},
		{
			name:  "negation after exclusion",
			lines: []string{"*.log", "!keep.log"},
			paths: []string{"keep.log", "other.log", "sub/keep.log", "sub/other.log"},
		},
		{
			name:  "exclusion after negation",
			lines: []string{"!keep.log", "*.log"},
			paths: []string{"keep.log", "other.log", "readme.md"},
		},
		{
			name:  "negation without prior match",
			lines: []string{"*.log", "!notes.txt"},
			paths: []string{"notes.txt", "app.log", "readme.md"},
		},
		{
			name:  "bracket set",
			lines: []string{"file[123].txt"},
			paths: []string{"file1.txt", "file2.txt", "file9.txt", "file12.txt"},
		},
		{
			name:  "bracket range",
			lines: []string{"v[0-9]"},
			paths: []string{"v1", "v9", "vx", "rel/v5"},
		},
		{
			name:  "comments and blanks skipped",
			lines: []string{"# temp files", "*.tmp", "", "*.bak", "!golden.bak"},
			paths: []string{"a.tmp", "b.bak", "golden.bak", "c.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRuleSet("/p")
			_, err := s.EnterDirectory("", "/p/.gitignore", tt.lines)
			require.NoError(t, err)

			oracle := gitignore.CompileIgnoreLines(tt.lines...)

			for _, rel := range tt.paths {
				got := s.Evaluate("/p/"+rel, false) == Exclude
				want := oracle.MatchesPath(rel)
				assert.Equal(t, want, got,
					"verdicts diverge for %q under %v", rel, tt.lines)
			}
		})
	}
}
