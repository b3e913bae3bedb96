package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docxBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const documentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Concrete Laborer</w:t></w:r></w:p>
<w:p><w:r><w:t>Pour</w:t></w:r><w:r><w:tab/><w:t>forms</w:t></w:r></w:p>
</w:body>
</w:document>`

func TestExtractText_DOCX(t *testing.T) {
	data := docxBytes(t, map[string]string{"word/document.xml": documentXML})

	got, err := ExtractText("posting.docx", data)
	require.NoError(t, err)
	assert.Contains(t, got, "Concrete Laborer")
	assert.Contains(t, got, "Pour forms")
	assert.Less(t, strings.Index(got, "Concrete"), strings.Index(got, "Pour"))
}

func TestExtractText_DOCXErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not a zip", data: []byte("plain text")},
		{name: "no document part", data: docxBytes(t, map[string]string{"word/styles.xml": "<x/>"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractText("resume.docx", tt.data)
			var extractErr *ExtractError
			require.ErrorAs(t, err, &extractErr)
			assert.Equal(t, "resume.docx", extractErr.File)
			assert.Equal(t, "failed to extract docx", extractErr.Message)
		})
	}
}

func TestExtractText_PDFInvalid(t *testing.T) {
	_, err := ExtractText("posting.pdf", []byte("not a pdf"))
	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "failed to extract pdf", extractErr.Message)
	assert.NotNil(t, extractErr.Unwrap())
	assert.Contains(t, err.Error(), "extract error: posting.pdf")
}

func TestExtractText_HTML(t *testing.T) {
	page := `<html><head><style>.x{}</style></head><body>
<nav>Menu</nav>
<div class="job-description">
  <h2>Electrician Helper</h2>
  <ul><li>Pull wire</li><li>Bend conduit</li></ul>
</div>
<footer>Copyright</footer>
<script>track()</script>
</body></html>`

	got, err := ExtractText("posting.html", []byte(page))
	require.NoError(t, err)
	assert.Contains(t, got, "Electrician Helper")
	assert.Contains(t, got, "Pull wire")
	assert.Contains(t, got, "Bend conduit")
	assert.NotContains(t, got, "Menu")
	assert.NotContains(t, got, "Copyright")
	assert.NotContains(t, got, "track()")
}

func TestExtractText_Text(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "utf8", data: []byte("Roofer   helper\r\nTear-off"), want: "Roofer helper\nTear-off"},
		{name: "bom stripped", data: []byte("\xef\xbb\xbfPainter"), want: "Painter"},
		{name: "cp1252 decoded", data: []byte("Caf\xe9 crew \x96 nights"), want: "Café crew – nights"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText("posting.txt", tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractAll_FailureIsPerFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.pdf")
	require.NoError(t, os.WriteFile(good, []byte("Flagger needed"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))

	docs, err := ExtractAll(context.Background(), []string{good, bad, filepath.Join(dir, "missing.txt")})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.NoError(t, docs[0].Err)
	assert.Equal(t, "Flagger needed", docs[0].Text)
	assert.Error(t, docs[1].Err)
	assert.Error(t, docs[2].Err)
	assert.Nil(t, docs[2].Meta)
}

func TestExtractAll_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractAll(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "General_Roadmap.txt"), []byte("Start here"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Electrician.pdf"), []byte("broken"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	keep := func(name string) bool { return !strings.HasSuffix(name, ".md") }
	ok, failed, err := ReadSources(context.Background(), dir, keep)
	require.NoError(t, err)

	require.Len(t, ok, 1)
	assert.Equal(t, "Start here", ok[0].Text)
	require.Len(t, failed, 1)
	assert.Equal(t, filepath.Join(dir, "Electrician.pdf"), failed[0].Path)
}

func TestReadSources_MissingDir(t *testing.T) {
	_, _, err := ReadSources(context.Background(), "/nonexistent/sources", nil)
	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "failed to list directory", extractErr.Message)
}
