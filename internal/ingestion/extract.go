// Package ingestion turns uploaded documents into clean text and reads the
// header, certifications and education out of a pasted resume.
package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"
)

// Extraction routes.
const (
	FormatText = "text"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatHTML = "html"
)

// ExtractError is returned when a document cannot be turned into text.
type ExtractError struct {
	File    string
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error: %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error: %s: %s", e.File, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// ExtractText converts a document to cleaned plain text, choosing the route by
// the file extension. Unknown extensions are read as text.
func ExtractText(name string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch FormatOf(name) {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatHTML:
		text, err = extractHTML(data)
	default:
		text = decodeText(data)
	}
	if err != nil {
		return "", &ExtractError{File: name, Message: "failed to extract " + FormatOf(name), Cause: err}
	}
	return CleanText(text), nil
}

// Document is the outcome of extracting one file. Err is set instead of Text
// when that file could not be read.
type Document struct {
	Path string
	Text string
	Meta *Metadata
	Err  error
}

// ExtractAll extracts files concurrently. A failing file is reported in its
// Document and does not stop the others; only cancellation returns an error.
func ExtractAll(ctx context.Context, paths []string) ([]Document, error) {
	docs := make([]Document, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, meta, err := IngestFile(p)
			docs[i] = Document{Path: p, Text: text, Meta: meta, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// ReadSources extracts every file in dir whose name passes keep. Unreadable
// files are skipped and returned separately.
func ReadSources(ctx context.Context, dir string, keep func(name string) bool) ([]Document, []Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, &ExtractError{File: dir, Message: "failed to list directory", Cause: err}
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || (keep != nil && !keep(e.Name())) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	docs, err := ExtractAll(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	var ok, failed []Document
	for _, d := range docs {
		if d.Err != nil {
			failed = append(failed, d)
			continue
		}
		ok = append(ok, d)
	}
	return ok, failed, nil
}

func decodeText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data)
	}
	// Word-processor exports without a UTF-8 encoding are almost always cp1252.
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "")
	}
	return string(decoded)
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var doc *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("word/document.xml not found")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return docxText(rc)
}

// docxText keeps character data and breaks lines at paragraph ends.
func docxText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var buf strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.StartElement:
			if t.Name.Local == "tab" {
				buf.WriteString(" ")
			}
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				buf.WriteString("\n")
			}
		}
	}
	return buf.String(), nil
}

// Selectors tried in order for the main body of a saved posting.
var contentSelectors = []string{
	"[itemprop='description']",
	".job-description",
	"#job-description",
	"main",
	"article",
	"#content",
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner").Remove()

	var main *goquery.Selection
	for _, sel := range contentSelectors {
		if s := doc.Find(sel); s.Length() > 0 {
			main = s.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Block elements become line breaks so bullets survive as lines.
	main.Find("br").ReplaceWithHtml("\n")
	main.Find("p, li, h1, h2, h3, h4, div, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	main.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("- ")
	})
	return trimLines(main.Text()), nil
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, "\n")
}
