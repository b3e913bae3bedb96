package rewriting

import (
	"regexp"
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// Common action verbs for entry-level construction bullets (heuristic check)
var strongVerbs = map[string]bool{
	"assembled": true, "assisted": true, "built": true, "cleaned": true,
	"cut": true, "drove": true, "fit": true, "handled": true,
	"installed": true, "inspected": true, "laid": true, "led": true,
	"loaded": true, "maintained": true, "measured": true, "operated": true,
	"organized": true, "poured": true, "pulled": true, "rigged": true,
	"set": true, "staged": true, "supported": true, "trained": true,
	"verified": true,
}

// Starts that read as duties rather than actions.
var weakLeads = []string{"responsible for", "duties included", "tasked with", "in charge of", "helped with", "worked on"}

var digitPattern = regexp.MustCompile(`\d`)

// StyleChecks holds the results of style validation for one measurable bullet
type StyleChecks struct {
	StrongVerb      bool `json:"strong_verb"`
	Quantified      bool `json:"quantified"`
	HasSafety       bool `json:"has_safety"`
	HasVerification bool `json:"has_verification"`
}

// Passed reports whether every check holds.
func (s StyleChecks) Passed() bool {
	return s.StrongVerb && s.Quantified && s.HasSafety && s.HasVerification
}

// ValidateStyle checks that a measurable bullet opens with an action verb, carries
// a number, and fills in its safety and verification parts.
func ValidateStyle(b types.MeasurableBullet) StyleChecks {
	return StyleChecks{
		StrongVerb:      checkStrongVerb(strings.ToLower(strings.TrimSpace(b.Action))),
		Quantified:      checkQuantifiedImpact(b.Action + " " + b.Quantity),
		HasSafety:       strings.TrimSpace(b.Safety) != "",
		HasVerification: strings.TrimSpace(b.Verification) != "",
	}
}

// checkStrongVerb checks if text starts with an action verb
func checkStrongVerb(textLower string) bool {
	for _, lead := range weakLeads {
		if strings.HasPrefix(textLower, lead) {
			return false
		}
	}

	words := strings.Fields(textLower)
	if len(words) == 0 {
		return false
	}
	firstWord := strings.TrimRight(words[0], ".,!?;:")

	if strongVerbs[firstWord] {
		return true
	}

	// Past-tense verbs are usually actions.
	return strings.HasSuffix(firstWord, "ed") && len(firstWord) > 3
}

// checkQuantifiedImpact checks if text contains numbers or a percentage
func checkQuantifiedImpact(text string) bool {
	return digitPattern.MatchString(text) || strings.Contains(text, "%")
}
