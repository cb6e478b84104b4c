package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
)

// writeMarkdown writes content to a temp .md file and returns its path.
func writeMarkdown(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestType(t *testing.T) {
	assert.Equal(t, domain.FileTypeMarkdown, New().Type())
}

func TestExtract_StripsEmphasis(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "bold",
			content:  "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "italic",
			content:  "This is *italic* text",
			expected: "This is italic text",
		},
		{
			name:     "inline code",
			content:  "Run `go build` first",
			expected: "Run go build first",
		},
		{
			name:     "all three classes",
			content:  "**bold** and *italic* and `code`",
			expected: "bold and italic and code",
		},
		{
			name:     "headers pass through",
			content:  "# Title\n\n## Section",
			expected: "# Title\n\n## Section",
		},
		{
			name:     "links pass through",
			content:  "[text](https://example.com)",
			expected: "[text](https://example.com)",
		},
		{
			name:     "lists pass through",
			content:  "- one\n- two",
			expected: "- one\n- two",
		},
		{
			name:     "no markers round-trips identity",
			content:  "Plain paragraph with no formatting.\n",
			expected: "Plain paragraph with no formatting.\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			text, err := New().Extract(writeMarkdown(t, tc.content))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, text)
		})
	}
}

func TestExtract_NestedAndOverlappingMarkers(t *testing.T) {
	// Nested and overlapping cases need not produce pretty output,
	// but extraction must succeed.
	inputs := []string{
		"**bold with *italic* inside**",
		"*unclosed italic",
		"`code with **bold** inside`",
		"****",
		"``",
	}
	for _, content := range inputs {
		_, err := New().Extract(writeMarkdown(t, content))
		assert.NoError(t, err)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}
