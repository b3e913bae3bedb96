package ingestion

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	spaceRun   = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	blankLines = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while keeping its line structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line. Headings lose their indentation, bullets keep it.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if isBulletLine(line) {
		return strings.Repeat(" ", indent) + trimmed
	}

	content := spaceRun.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", indent) + content
}

func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// removeExcessiveBlankLines keeps at most one blank line between paragraphs.
func removeExcessiveBlankLines(content string) string {
	return blankLines.ReplaceAllString(content, "\n\n")
}

// IngestFile extracts and cleans one uploaded document and describes it.
func IngestFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		msg := "failed to read file"
		if os.IsNotExist(err) {
			msg = "file not found"
		}
		return "", nil, &ExtractError{File: path, Message: msg, Cause: err}
	}

	name := filepath.Base(path)
	text, err := ExtractText(name, data)
	if err != nil {
		return "", nil, err
	}
	return text, NewMetadata(name, text), nil
}

// WriteOutput writes <stem>.cleaned.txt and <stem>.meta.json into outDir.
func WriteOutput(outDir string, text string, meta *Metadata) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return &ExtractError{File: outDir, Message: "failed to create output directory", Cause: err}
	}

	stem := strings.TrimSuffix(meta.Source, filepath.Ext(meta.Source))
	if stem == "" {
		stem = "document"
	}

	cleanedPath := filepath.Join(outDir, stem+".cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(text), 0o644); err != nil {
		return &ExtractError{File: cleanedPath, Message: "failed to write cleaned text", Cause: err}
	}

	metaJSON, err := meta.ToJSON()
	if err != nil {
		return err
	}
	metaPath := filepath.Join(outDir, stem+".meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0o644); err != nil {
		return &ExtractError{File: metaPath, Message: "failed to write metadata", Cause: err}
	}
	return nil
}
