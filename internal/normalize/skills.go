package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SkillLabeler maps student-entered skills onto library labels. Known labels and
// synonyms keep the library spelling; only free text is title-cased.
type SkillLabeler struct {
	labels   map[string]string
	synonyms map[string]string
}

// NewSkillLabeler indexes labels case-insensitively. Synonyms map a lowercase
// spelling to a label; a synonym whose target is not a known label is dropped.
// When two labels fold to the same key the earlier one wins.
func NewSkillLabeler(labels []string, synonyms map[string]string) *SkillLabeler {
	l := &SkillLabeler{
		labels:   make(map[string]string, len(labels)),
		synonyms: make(map[string]string, len(synonyms)),
	}
	for _, label := range labels {
		label = NormWS(label)
		if label == "" {
			continue
		}
		if _, ok := l.labels[strings.ToLower(label)]; !ok {
			l.labels[strings.ToLower(label)] = label
		}
	}
	for from, to := range synonyms {
		target, ok := l.labels[strings.ToLower(NormWS(to))]
		if !ok {
			continue
		}
		if key := strings.ToLower(NormWS(from)); key != "" {
			l.synonyms[key] = target
		}
	}
	return l
}

// Normalize returns the library label for s, or s title-cased when the library
// has no such label. A nil labeler only collapses whitespace.
func (l *SkillLabeler) Normalize(s string) string {
	base := NormWS(s)
	if base == "" || l == nil {
		return base
	}
	key := strings.ToLower(base)
	if label, ok := l.labels[key]; ok {
		return label
	}
	if label, ok := l.synonyms[key]; ok {
		return label
	}
	return cases.Title(language.English).String(base)
}
