package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxBulletWords is the word cap CleanBullet applies.
const MaxBulletWords = 24

var (
	multiSpace   = regexp.MustCompile(`\s+`)
	fillerLeads  = regexp.MustCompile(`(?i)^\s*(responsible for|duties included|tasked with|in charge of)\s*:?\s*`)
	trailingDots = regexp.MustCompile(`\.+$`)
	nonDigits    = regexp.MustCompile(`\D+`)
	listSplit    = regexp.MustCompile(`[,;\n•]+`)
)

// NormWS trims s and collapses internal whitespace runs to one space.
func NormWS(s string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// CapFirst normalizes whitespace and upper-cases the first letter.
func CapFirst(s string) string {
	s = NormWS(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// CleanBullet strips filler leads such as "Responsible for", trailing periods,
// applies sentence case and caps the bullet at MaxBulletWords words.
func CleanBullet(s string) string {
	s = NormWS(s)
	s = fillerLeads.ReplaceAllString(s, "")
	s = trailingDots.ReplaceAllString(s, "")
	s = CapFirst(s)
	words := strings.Fields(s)
	if len(words) > MaxBulletWords {
		return strings.Join(words[:MaxBulletWords], " ")
	}
	return s
}

// CleanPhone formats a 10-digit US number, or 11 digits with a leading 1, as
// "(206) 555-1234". Anything else is returned whitespace-normalized.
func CleanPhone(s string) string {
	digits := nonDigits.ReplaceAllString(s, "")
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}
	if len(digits) == 10 {
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
	return NormWS(s)
}

// CleanEmail trims and lower-cases an address.
func CleanEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitList splits free text on commas, semicolons, newlines and "•".
func SplitList(raw string) []string {
	var out []string
	for _, p := range listSplit.Split(raw, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseDates splits a range like "2023-06 – 2024-05" or "2022 - Present" into
// start and end. An en dash takes precedence over a hyphen, so hyphenated
// dates survive when the range uses an en dash.
func ParseDates(raw string) (start, end string) {
	raw = NormWS(raw)
	sep := ""
	switch {
	case strings.Contains(raw, "–"):
		sep = "–"
	case strings.Contains(raw, " - "):
		sep = " - "
	case strings.Contains(raw, "-"):
		sep = "-"
	}
	if sep != "" {
		parts := strings.SplitN(raw, sep, 2)
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return raw, ""
}
