package ingestion

import (
	"regexp"
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

var (
	emailRe     = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe     = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	cityStateRe = regexp.MustCompile(`^([A-Za-z][A-Za-z .'\-]*?),\s*([A-Za-z]{2})(?:\s+\d{5}(?:-\d{4})?)?$`)
	yearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	headingRe   = regexp.MustCompile(`^#*\s*([A-Za-z][A-Za-z &/]*?)\s*:?\s*$`)
)

// Words that mark a list entry as a certification or card.
var certMarkers = []string{
	"osha", "forklift", "first aid", "cpr", "flagger", "flagging", "hazwoper",
	"scaffold", "fall protection", "traffic control", "rigging", "signal", "nccer",
	"certif", "license", "licence", "cdl", "twic", "epa 608",
}

var (
	credentialMarkers = []string{"diploma", "ged", "degree", "certificate", "associate", "bachelor", "hiset", "pre-apprenticeship"}
	schoolMarkers     = []string{"school", "college", "university", "academy", "institute", "program", "center"}
)

// Section names that end an education block.
var sectionNames = map[string]bool{
	"experience": true, "work experience": true, "employment": true, "skills": true,
	"certifications": true, "certificates": true, "objective": true, "summary": true,
	"references": true, "volunteer": true, "education": true, "training": true,
}

// ParseHeader reads contact details from the top of a pasted resume. The name is
// the first line that is neither contact data nor a section heading.
func ParseHeader(text string) types.Header {
	var h types.Header
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if h.Email == "" {
			if m := emailRe.FindString(line); m != "" {
				h.Email = normalize.CleanEmail(m)
				continue
			}
		}
		if h.Phone == "" {
			if m := phoneRe.FindString(line); m != "" && len(line) <= len(m)+12 {
				h.Phone = normalize.CleanPhone(m)
				continue
			}
		}
		if h.City == "" {
			if m := cityStateRe.FindStringSubmatch(line); m != nil {
				h.City = normalize.NormWS(m[1])
				h.State = strings.ToUpper(m[2])
				continue
			}
		}
		if h.Name == "" && looksLikeName(line) {
			h.Name = line
		}
	}
	return h
}

func looksLikeName(line string) bool {
	if _, ok := sectionHeading(line); ok {
		return false
	}
	if strings.ContainsAny(line, "@,:0123456789") {
		return false
	}
	words := strings.Fields(line)
	return len(words) >= 1 && len(words) <= 4
}

// ParseCerts collects list entries that name a certification or card, in order
// of first appearance.
func ParseCerts(text string) []string {
	var found []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "-*•·"))
		if _, ok := sectionHeading(line); ok || emailRe.MatchString(line) {
			continue
		}
		for _, item := range normalize.SplitList(line) {
			if isCert(item) {
				found = append(found, item)
			}
		}
	}
	return types.DedupeFold(found)
}

func isCert(item string) bool {
	if len(strings.Fields(item)) > 6 {
		return false
	}
	low := strings.ToLower(item)
	for _, m := range certMarkers {
		if strings.Contains(low, m) {
			return true
		}
	}
	return false
}

// ParseEducation reads entries under an "Education" heading. Each line is split
// on commas into credential, school and year; leftovers go to Details.
func ParseEducation(text string) []types.Education {
	var (
		out []types.Education
		in  bool
	)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "-*•·"))
		if name, ok := sectionHeading(line); ok {
			in = name == "education" || name == "training"
			continue
		}
		if !in || line == "" {
			continue
		}
		if e := parseEducationLine(line); !e.IsEmpty() {
			out = append(out, e)
		}
	}
	return out
}

func parseEducationLine(line string) types.Education {
	var (
		e       types.Education
		details []string
	)
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		low := strings.ToLower(part)
		switch {
		case e.Year == "" && yearRe.MatchString(part):
			e.Year = yearRe.FindString(part)
			if rest := strings.TrimSpace(yearRe.ReplaceAllString(part, "")); rest != "" {
				details = append(details, rest)
			}
		case e.Credential == "" && containsAny(low, credentialMarkers):
			e.Credential = part
		case e.School == "" && containsAny(low, schoolMarkers):
			e.School = part
		default:
			details = append(details, part)
		}
	}
	if e.School == "" && e.Credential == "" && len(details) > 0 {
		e.School, details = details[0], details[1:]
	}
	e.Details = strings.Join(details, ", ")
	return e
}

// sectionHeading reports whether line is a bare resume section heading such as
// "Education:" and returns its lower-cased name.
func sectionHeading(line string) (string, bool) {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	name := strings.ToLower(normalize.NormWS(m[1]))
	return name, sectionNames[name]
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
