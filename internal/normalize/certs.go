// Package normalize maps user-entered strings to canonical, pre-approved phrases
// and applies the basic text cleanup used before export.
package normalize

import (
	"strings"
	"unicode"

	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// CertResult is the outcome of normalizing one certification name.
// Unrecognized input keeps its trimmed spelling as Canonical.
type CertResult struct {
	Input      string `json:"input"`
	Canonical  string `json:"canonical"`
	Note       string `json:"note,omitempty"`
	Recognized bool   `json:"recognized"`
}

// CertNormalizer resolves certification variants against the normalization table.
type CertNormalizer struct {
	byKey map[string]types.CertificationEntry
}

// NewCertNormalizer indexes every variant and canonical phrase of the given entries.
// When two entries claim the same key the earlier entry wins.
func NewCertNormalizer(entries []types.CertificationEntry) *CertNormalizer {
	n := &CertNormalizer{byKey: make(map[string]types.CertificationEntry)}
	for _, e := range entries {
		keys := append([]string{e.Canonical}, e.Variants...)
		for _, k := range keys {
			key := CertKey(k)
			if key == "" {
				continue
			}
			if _, exists := n.byKey[key]; !exists {
				n.byKey[key] = e
			}
		}
	}
	return n
}

// CertKey lowercases s and drops every rune that is not a letter or digit, so
// "OSHA 10", "OSHA-10" and "osha10" share a key.
func CertKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize looks up raw. It never fails; an unknown name is returned unchanged
// with Recognized false.
func (n *CertNormalizer) Normalize(raw string) CertResult {
	trimmed := NormWS(raw)
	res := CertResult{Input: raw, Canonical: trimmed}
	if n == nil {
		return res
	}
	if e, ok := n.byKey[CertKey(trimmed)]; ok {
		res.Canonical = e.Canonical
		res.Note = e.Note
		res.Recognized = true
	}
	return res
}

// NormalizeAll normalizes a list, drops blanks, and keeps the first result for
// each canonical phrase.
func (n *CertNormalizer) NormalizeAll(raws []string) []CertResult {
	seen := make(map[string]bool)
	out := make([]CertResult, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		res := n.Normalize(raw)
		key := strings.ToLower(res.Canonical)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, res)
	}
	return out
}

// Unrecognized returns the inputs from results that matched no table entry.
func Unrecognized(results []CertResult) []string {
	var out []string
	for _, r := range results {
		if !r.Recognized {
			out = append(out, r.Canonical)
		}
	}
	return out
}

// Len reports the number of lookup keys.
func (n *CertNormalizer) Len() int {
	if n == nil {
		return 0
	}
	return len(n.byKey)
}
