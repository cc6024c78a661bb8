package topics

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"pattern-syntax.md":     {Data: []byte("# Pattern syntax\n\nplain body text\n")},
		"config.txt":            {Data: []byte("Configuration file locations.\n")},
		"option-marker-file.md": {Data: []byte("# --marker-file\n\nplain body text\n")},
		"ignored.xyz":           {Data: []byte("unsupported extension\n")},
	}
}

func TestScanTopics(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	names := tm.ListTopics()
	assert.ElementsMatch(t, []string{"pattern-syntax", "config", "option-marker-file"}, names)
}

func TestScanTopicsNilFS(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func TestGetTopic(t *testing.T) {
	tm := New(topicFS())
	require.NoError(t, tm.scanTopics())

	topic, ok := tm.GetTopic("pattern-syntax")
	require.True(t, ok)
	assert.Equal(t, "pattern-syntax", topic.Name)
	assert.Contains(t, topic.Content, "Pattern syntax")

	// Flag-style lookup resolves through the option- prefix.
	topic, ok = tm.GetTopic("--marker-file")
	require.True(t, ok)
	assert.Equal(t, "option-marker-file", topic.Name)

	_, ok = tm.GetTopic("nonsense")
	assert.False(t, ok)
}

func TestCustomExtensions(t *testing.T) {
	tm := NewWithOptions(topicFS(), Options{Extensions: []string{".xyz"}})
	require.NoError(t, tm.scanTopics())

	names := tm.ListTopics()
	assert.ElementsMatch(t, []string{"ignored"}, names)
}

func TestInitializeAddsHelpCommand(t *testing.T) {
	rootCmd := &cobra.Command{Use: "treesift"}

	require.NoError(t, Initialize(rootCmd, topicFS()))

	var helpCmd *cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			helpCmd = cmd
			break
		}
	}
	require.NotNil(t, helpCmd, "help command not registered")
	assert.Contains(t, helpCmd.Long, "treesift help topics")
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "raw content", r.Render("raw content", ".md"))
	assert.Equal(t, "raw content", r.Render("raw content", ".txt"))
}

func TestGlamourRendererPassthrough(t *testing.T) {
	r := NewGlamourRenderer()

	// Non-markdown content is returned untouched.
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererMarkdown(t *testing.T) {
	r := NewGlamourRenderer()

	rendered := r.Render("# Heading\n\nplain body text\n", ".md")
	assert.NotEmpty(t, rendered)
	assert.Contains(t, rendered, "plain body text")
}
