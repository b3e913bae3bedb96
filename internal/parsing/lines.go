// Package parsing turns the markdown and CSV content library into typed records.
package parsing

import (
	"regexp"
	"strings"
)

// LineKind classifies one line of a markdown content file.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeading
	LineBoldLabel
	LineNumbered
	LineBulleted
	LineText
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineHeading:
		return "heading"
	case LineBoldLabel:
		return "bold_label"
	case LineNumbered:
		return "numbered"
	case LineBulleted:
		return "bulleted"
	case LineText:
		return "text"
	}
	return "unknown"
}

// Line is a classified markdown line. Level is the heading depth for headings.
type Line struct {
	Kind   LineKind
	Level  int
	Text   string
	Number int
}

// IsListItem reports whether the line is a numbered or bulleted list item.
func (l Line) IsListItem() bool {
	return l.Kind == LineNumbered || l.Kind == LineBulleted
}

var (
	headingPattern   = regexp.MustCompile(`^(#{1,6})(?:\s+(.*?))?\s*#*\s*$`)
	boldLabelPattern = regexp.MustCompile(`^\*\*(.+?)\*\*\s*:?\s*$`)
	numberedPattern  = regexp.MustCompile(`^\d+[.)](?:\s+(.*)|\s*)$`)
	bulletedPattern  = regexp.MustCompile(`^[*\-+•](?:\s+(.*)|\s*)$`)
	rulePattern      = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)
)

// ClassifyLine classifies a single raw line. It never fails; anything it does not
// recognise is LineText.
func ClassifyLine(raw string) Line {
	trimmed := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
	if trimmed == "" || rulePattern.MatchString(trimmed) {
		return Line{Kind: LineBlank}
	}

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		return Line{Kind: LineHeading, Level: len(m[1]), Text: cleanInline(m[2])}
	}
	if m := boldLabelPattern.FindStringSubmatch(trimmed); m != nil {
		label := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), ":"))
		return Line{Kind: LineBoldLabel, Text: label}
	}
	if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
		return Line{Kind: LineNumbered, Text: cleanInline(m[1])}
	}
	if m := bulletedPattern.FindStringSubmatch(trimmed); m != nil {
		return Line{Kind: LineBulleted, Text: cleanInline(m[1])}
	}
	return Line{Kind: LineText, Text: cleanInline(trimmed)}
}

// cleanInline strips emphasis markers and collapses whitespace.
func cleanInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return strings.Join(strings.Fields(s), " ")
}

// SplitLines normalises line endings and splits text into lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
