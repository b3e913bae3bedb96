package rewriting

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
)

// GeneralIndustry rows apply to every prior industry.
const GeneralIndustry = "general"

// TranslationRule rewrites a prior-industry keyword into construction language.
type TranslationRule struct {
	Industry    string `json:"industry"`
	Keyword     string `json:"keyword"`
	ReplaceWith string `json:"replace_with"`
	Note        string `json:"note,omitempty"`
}

// Translator applies translation rules in table order; the first matching rule wins.
type Translator struct {
	rules []TranslationRule
}

// NewTranslator builds a translator, lowercasing industries and keywords and
// dropping rules without a keyword.
func NewTranslator(rules []TranslationRule) *Translator {
	t := &Translator{}
	for _, r := range rules {
		r.Industry = strings.ToLower(strings.TrimSpace(r.Industry))
		r.Keyword = strings.ToLower(strings.TrimSpace(r.Keyword))
		r.ReplaceWith = strings.TrimSpace(r.ReplaceWith)
		r.Note = strings.TrimSpace(r.Note)
		if r.Keyword == "" {
			continue
		}
		if r.Industry == "" {
			r.Industry = GeneralIndustry
		}
		t.rules = append(t.rules, r)
	}
	return t
}

// LoadTranslations reads a CSV with the header industry,keyword,replace_with,note.
// Columns are located by header name.
func LoadTranslations(r io.Reader) (*Translator, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return NewTranslator(nil), nil
	}
	if err != nil {
		return nil, &TranslationLoadError{Message: "failed to read header", Cause: err}
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["keyword"]; !ok {
		return nil, &TranslationLoadError{Message: "missing keyword column"}
	}
	get := func(rec []string, name string) string {
		if i, ok := cols[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var rules []TranslationRule
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &TranslationLoadError{Message: "failed to read row", Cause: err}
		}
		rules = append(rules, TranslationRule{
			Industry:    get(rec, "industry"),
			Keyword:     get(rec, "keyword"),
			ReplaceWith: get(rec, "replace_with"),
			Note:        get(rec, "note"),
		})
	}
	return NewTranslator(rules), nil
}

// Rules returns a copy of the loaded rules.
func (t *Translator) Rules() []TranslationRule {
	if t == nil {
		return nil
	}
	return append([]TranslationRule(nil), t.rules...)
}

// Industries lists the distinct industries in the table, sorted.
func (t *Translator) Industries() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.rules {
		if !seen[r.Industry] {
			seen[r.Industry] = true
			out = append(out, r.Industry)
		}
	}
	sort.Strings(out)
	return out
}

// TranslateLine rewrites the first keyword of industry (or of the general rows)
// found in line, case-insensitively. A rule without a replacement leaves the
// line unchanged.
func (t *Translator) TranslateLine(line, industry string) string {
	base := strings.TrimSpace(line)
	if t == nil || base == "" {
		return base
	}
	ind := strings.ToLower(strings.TrimSpace(industry))
	if ind == "" {
		ind = GeneralIndustry
	}

	low := strings.ToLower(base)
	for _, r := range t.rules {
		if r.Industry != GeneralIndustry && r.Industry != ind {
			continue
		}
		if !strings.Contains(low, r.Keyword) {
			continue
		}
		if r.ReplaceWith == "" {
			return base
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(r.Keyword))
		return re.ReplaceAllLiteralString(base, r.ReplaceWith)
	}
	return base
}

// TranslateBullets translates and cleans each non-blank line.
func (t *Translator) TranslateBullets(lines []string, industry string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, normalize.CleanBullet(t.TranslateLine(l, industry)))
	}
	return out
}

// TranslateSkills translates each skill, drops case-insensitive repeats and
// keeps at most limit entries. A non-positive limit keeps everything.
func (t *Translator) TranslateSkills(skills []string, industry string, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range skills {
		translated := normalize.NormWS(t.TranslateLine(s, industry))
		key := strings.ToLower(translated)
		if translated == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, translated)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
