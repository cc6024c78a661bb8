package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/treesift/pkg/errors"
)

const generatedHeader = `# treesift configuration.
#
# The values below are the built-in defaults, commented out. Uncomment a
# line to override it. TREESIFT_* environment variables take precedence
# over this file.

`

// GenerateContent renders the default configuration as a starter file with
// every value commented out. The body is marshalled from the resolved
// defaults rather than copied from embedded text, so the emitted file
// always reflects what the binary ships with.
func GenerateContent() (string, error) {
	cfg, err := Default()
	if err != nil {
		return "", err
	}

	raw, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigParse,
			"cannot render default configuration")
	}

	return generatedHeader + commentOutValues(string(raw)), nil
}

// commentOutValues comments out every assignment line while keeping blank
// lines, existing comments, and section headers as-is.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
