// Package rewriting keeps student-entered text neutral and resume-ready: it strips
// union and sub-trade wording, translates prior-industry phrasing, and checks
// measurable bullets for style.
package rewriting

import (
	"regexp"
	"strings"
)

// Replacement is a targeted rewrite applied before generic banned-term removal.
type Replacement struct {
	Pattern *regexp.Regexp
	With    string
}

// DefaultBannedTerms are whole-word, case-insensitive patterns that must not
// appear in objectives or cover letters. Longer alternatives come first so
// detection reports "non-union" rather than "union".
var DefaultBannedTerms = []string{
	`non[-\s]?union`,
	`union`,
	`ibew`,
	`local\s*\d+`,
	`inside\s+wire(?:man|men)?`,
	`residential`,
	`low[-\s]?voltage`,
	`sound\s+and\s+communications?`,
}

// DefaultReplacements keep meaning intact where a banned term is part of a known phrase.
var DefaultReplacements = []Replacement{
	{Pattern: regexp.MustCompile(`(?i)\bnon[-\s]?union\s+apprenticeship\b`), With: "registered apprenticeship"},
	{Pattern: regexp.MustCompile(`(?i)\bunion\s+apprenticeship\b`), With: "registered apprenticeship"},
	{Pattern: regexp.MustCompile(`(?i)\b(?:non[-\s]?)?union\s+(job|position|work)\b`), With: "$1"},
}

var (
	spaceBeforePunct = regexp.MustCompile(`\s+([,.;:!?])`)
	repeatedSpace    = regexp.MustCompile(`\s+`)
	// A separator followed by more punctuation, as in "with,." or "a,, b".
	punctRun         = regexp.MustCompile(`[,;:]+([,;:.!?])`)
	strayEdges       = regexp.MustCompile(`^[\s,;:.!?]+|[\s,;:]+$`)
)

// NeutralFilter removes banned terms from free text in two fixed phases:
// targeted replacements first, then removal of whatever banned terms remain.
type NeutralFilter struct {
	replacements []Replacement
	banned       *regexp.Regexp
}

// NewNeutralFilter compiles the banned patterns into one whole-word matcher.
func NewNeutralFilter(replacements []Replacement, bannedTerms []string) (*NeutralFilter, error) {
	pattern := `(?i)\b(?:` + strings.Join(bannedTerms, "|") + `)\b`
	banned, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &FilterError{Message: "invalid banned-term pattern", Cause: err}
	}
	return &NeutralFilter{replacements: replacements, banned: banned}, nil
}

// DefaultNeutralFilter returns the filter with the built-in replacements and banned terms.
func DefaultNeutralFilter() *NeutralFilter {
	f, err := NewNeutralFilter(DefaultReplacements, DefaultBannedTerms)
	if err != nil {
		panic(err)
	}
	return f
}

// Filter rewrites text so it contains no banned terms. Whitespace left behind is
// collapsed, spaces before punctuation are dropped, and separators orphaned by a
// removal are merged into the punctuation that follows or trimmed from the ends.
func (f *NeutralFilter) Filter(text string) string {
	if text == "" {
		return ""
	}
	out := text
	for _, r := range f.replacements {
		out = r.Pattern.ReplaceAllString(out, r.With)
	}
	out = f.banned.ReplaceAllString(out, "")
	out = repeatedSpace.ReplaceAllString(out, " ")
	out = spaceBeforePunct.ReplaceAllString(out, "$1")
	out = punctRun.ReplaceAllString(out, "$1")
	return strings.TrimSpace(strayEdges.ReplaceAllString(out, ""))
}

// Strip removes banned terms without targeted replacement or punctuation fixes,
// trimming only the ends.
func (f *NeutralFilter) Strip(text string) string {
	return strings.TrimSpace(f.banned.ReplaceAllString(text, ""))
}

// ContainsBannedTerms reports whether the original text has any banned term.
func (f *NeutralFilter) ContainsBannedTerms(text string) bool {
	return f.banned.MatchString(text)
}

// FindBannedTerms returns the distinct banned terms in text, lowercased with
// whitespace collapsed, in the order they first appear.
func (f *NeutralFilter) FindBannedTerms(text string) []string {
	matches := f.banned.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, m := range matches {
		term := repeatedSpace.ReplaceAllString(strings.ToLower(m), " ")
		if !seen[term] {
			seen[term] = true
			out = append(out, term)
		}
	}
	return out
}
