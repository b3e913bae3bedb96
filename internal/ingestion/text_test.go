package ingestion

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "headings lose indentation",
			input:    "   # Title\n## Subtitle\nContent here",
			contains: []string{"# Title", "## Subtitle", "Content here"},
			excludes: []string{"   # Title"},
		},
		{
			name:     "bullets kept",
			input:    "- Item 1\n  * Item 2\n• Item 3",
			contains: []string{"- Item 1", "  * Item 2", "• Item 3"},
		},
		{
			name:     "inner whitespace collapsed",
			input:    "Line    with \t multiple    spaces",
			contains: []string{"Line with multiple spaces"},
			excludes: []string{"  "},
		},
		{
			name:     "blank runs collapsed",
			input:    "Line 1\n\n\n\n\nLine 2",
			contains: []string{"Line 1\n\nLine 2"},
			excludes: []string{"\n\n\n"},
		},
		{
			name:     "line endings normalized",
			input:    "Line 1\r\nLine 2\rLine 3",
			contains: []string{"Line 1\nLine 2\nLine 3"},
			excludes: []string{"\r"},
		},
		{
			name:     "unicode kept",
			input:    "Tapé   measure 🚧 and spéciàl",
			contains: []string{"Tapé measure 🚧 and spéciàl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanText(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, got, not)
			}
		})
	}
}

func TestCleanText_Empty(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Laborer   posting\n\n\nLift   50 lbs"
	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestIngestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Carpenter Apprentice\n\n- Read   blueprints"), 0o644))

	text, meta, err := IngestFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Carpenter Apprentice\n\n- Read   blueprints", text)
	assert.Equal(t, "posting.txt", meta.Source)
	assert.Equal(t, FormatText, meta.Format)
	assert.Len(t, meta.Hash, 64)
	assert.NotEmpty(t, meta.Timestamp)

	_, again, err := IngestFile(path)
	require.NoError(t, err)
	assert.Equal(t, meta.Hash, again.Hash)
}

func TestIngestFile_NotFound(t *testing.T) {
	text, meta, err := IngestFile("/nonexistent/posting.txt")
	require.Error(t, err)
	assert.Empty(t, text)
	assert.Nil(t, meta)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "file not found", extractErr.Message)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "out")
	meta := NewMetadata("laborer.pdf", "Laborer posting")

	require.NoError(t, WriteOutput(out, "Laborer posting", meta))

	text, err := os.ReadFile(filepath.Join(out, "laborer.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Laborer posting", string(text))

	raw, err := os.ReadFile(filepath.Join(out, "laborer.meta.json"))
	require.NoError(t, err)
	var got Metadata
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, *meta, got)
}
