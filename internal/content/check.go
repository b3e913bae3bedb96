package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mandy1eigh007/resume-workshop-app/internal/parsing"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/validation"
)

const checkSection = "library"

// CheckLibrary reports library entries that break the resume limits or carry
// banned terms. Offending entries are kept; the warnings let an editor fix the source.
func CheckLibrary(lib Library, filter *rewriting.NeutralFilter, limits validation.Limits) []parsing.Warning {
	if filter == nil {
		filter = rewriting.DefaultNeutralFilter()
	}
	limits = limits.MergeWithDefaults()
	maxChars := limits.MaxObjectiveChars
	maxWords := limits.MaxBulletWords

	var warnings []parsing.Warning
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, parsing.Warning{Section: checkSection, Message: fmt.Sprintf(format, args...)})
	}

	for _, o := range lib.Objectives {
		for i, text := range o.All() {
			if n := utf8.RuneCountInString(text); n > maxChars {
				warn("trade %q objective %d is %d characters (max %d)", o.Trade, i+1, n, maxChars)
			}
			if terms := filter.FindBannedTerms(text); len(terms) > 0 {
				warn("trade %q objective %d contains banned terms: %s", o.Trade, i+1, strings.Join(terms, ", "))
			}
		}
	}

	for _, r := range lib.Roles {
		for i, text := range r.Bullets {
			if n := len(strings.Fields(text)); n > maxWords {
				warn("role %q bullet %d is %d words (max %d)", r.Role, i+1, n, maxWords)
			}
		}
	}

	for _, b := range lib.Badges {
		if terms := filter.FindBannedTerms(b.ResumePhrase); len(terms) > 0 {
			warn("badge %q resume phrase contains banned terms: %s", b.Name, strings.Join(terms, ", "))
		}
	}

	return warnings
}
