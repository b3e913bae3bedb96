// Package validation checks a resume draft against the one-page layout limits,
// required fields, and neutral-language rules. Findings are returned as data;
// nothing here rejects a draft.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// Options selects the checks Validate runs beyond the layout limits.
type Options struct {
	Limits Limits
	Filter *rewriting.NeutralFilter  // banned-term checks when set
	Certs  *normalize.CertNormalizer // unrecognized-certification checks when set
}

// Validate runs every check and collects the findings.
func Validate(draft *types.ResumeDraft, opts Options) *types.Violations {
	var all []types.Violation
	all = append(all, ValidateRequired(draft)...)
	all = append(all, ValidateDraft(draft, opts.Limits)...)
	if opts.Filter != nil {
		all = append(all, CheckBannedTerms(draft, opts.Filter)...)
	}
	if opts.Certs != nil {
		all = append(all, CheckCertifications(draft, opts.Certs)...)
	}
	if all == nil {
		all = []types.Violation{}
	}
	return &types.Violations{Violations: all}
}

// ValidateDraft checks the layout limits. Every check runs regardless of earlier
// findings. Zero limits fall back to the defaults.
func ValidateDraft(draft *types.ResumeDraft, limits Limits) []types.Violation {
	if draft == nil {
		return nil
	}
	limits = limits.MergeWithDefaults()

	var v []types.Violation
	v = append(v, checkSkills(draft, limits)...)
	v = append(v, checkObjective(draft, limits)...)
	v = append(v, checkJobs(draft, limits)...)
	v = append(v, checkEducation(draft, limits)...)
	v = append(v, checkCertCount(draft, limits)...)
	return v
}

func checkSkills(draft *types.ResumeDraft, limits Limits) []types.Violation {
	n := len(draft.Skills.Aggregate())
	if n <= limits.MaxSkills {
		return nil
	}
	return []types.Violation{tooMany(types.FieldSkills, "skills", limits.MaxSkills, n)}
}

func checkObjective(draft *types.ResumeDraft, limits Limits) []types.Violation {
	n := utf8.RuneCountInString(strings.TrimSpace(draft.Objective))
	if n <= limits.MaxObjectiveChars {
		return nil
	}
	return []types.Violation{{
		Field:    types.FieldObjective,
		Type:     types.ViolationTooLong,
		Severity: types.SeverityError,
		Details:  fmt.Sprintf("objective is %d characters; keep it to %d", n, limits.MaxObjectiveChars),
		Limit:    intPtr(limits.MaxObjectiveChars),
		Actual:   intPtr(n),
		Value:    draft.Objective,
	}}
}

func checkJobs(draft *types.ResumeDraft, limits Limits) []types.Violation {
	var v []types.Violation

	filled := 0
	for i, job := range draft.Jobs {
		if job.IsEmpty() {
			continue
		}
		filled++

		count := len(job.BulletTexts())
		switch {
		case count > limits.MaxBulletsPerJob:
			v = append(v, tooMany(types.JobField(i), "bullets", limits.MaxBulletsPerJob, count))
		case count < limits.MinBulletsPerJob:
			v = append(v, types.Violation{
				Field:    types.JobField(i),
				Type:     types.ViolationTooFew,
				Severity: types.SeverityWarning,
				Details:  fmt.Sprintf("%d bullets; %d to %d read best", count, limits.MinBulletsPerJob, limits.MaxBulletsPerJob),
				Limit:    intPtr(limits.MinBulletsPerJob),
				Actual:   intPtr(count),
			})
		}

		for j, b := range job.Bullets {
			v = append(v, checkBulletWords(types.BulletField(i, j), b.Text(), limits)...)
		}
		for j, d := range job.Duties {
			v = append(v, checkBulletWords(types.DutyField(i, j), d, limits)...)
		}
	}

	if filled > limits.MaxJobs {
		v = append(v, tooMany(types.FieldJobs, "jobs", limits.MaxJobs, filled))
	}
	return v
}

func checkBulletWords(field, text string, limits Limits) []types.Violation {
	n := len(strings.Fields(text))
	if n <= limits.MaxBulletWords {
		return nil
	}
	return []types.Violation{{
		Field:    field,
		Type:     types.ViolationTooLong,
		Severity: types.SeverityError,
		Details:  fmt.Sprintf("bullet is %d words; keep it to %d", n, limits.MaxBulletWords),
		Limit:    intPtr(limits.MaxBulletWords),
		Actual:   intPtr(n),
		Value:    text,
	}}
}

func checkEducation(draft *types.ResumeDraft, limits Limits) []types.Violation {
	var v []types.Violation
	filled := 0
	for i, e := range draft.Education {
		if e.IsEmpty() {
			continue
		}
		filled++
		n := utf8.RuneCountInString(strings.TrimSpace(e.Details))
		if n > limits.MaxEducationDetailChars {
			v = append(v, types.Violation{
				Field:    types.EducationField(i) + ".details",
				Type:     types.ViolationTooLong,
				Severity: types.SeverityError,
				Details:  fmt.Sprintf("details are %d characters; keep them to %d", n, limits.MaxEducationDetailChars),
				Limit:    intPtr(limits.MaxEducationDetailChars),
				Actual:   intPtr(n),
				Value:    e.Details,
			})
		}
	}
	if filled > limits.MaxEducation {
		v = append(v, tooMany(types.FieldEducation, "education entries", limits.MaxEducation, filled))
	}
	return v
}

func checkCertCount(draft *types.ResumeDraft, limits Limits) []types.Violation {
	n := 0
	for _, c := range draft.Certifications {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	if n <= limits.MaxCerts {
		return nil
	}
	return []types.Violation{tooMany(types.FieldCertifications, "certifications", limits.MaxCerts, n)}
}

// CheckBannedTerms reports banned terms in the objective and bullets as warnings,
// ordered by field path.
func CheckBannedTerms(draft *types.ResumeDraft, filter *rewriting.NeutralFilter) []types.Violation {
	found := rewriting.CheckBannedTermsInDraft(draft, filter)
	if len(found) == 0 {
		return nil
	}

	fields := make([]string, 0, len(found))
	for f := range found {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	v := make([]types.Violation, 0, len(fields))
	for _, f := range fields {
		v = append(v, types.Violation{
			Field:    f,
			Type:     types.ViolationBannedTerm,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("use neutral wording instead of: %s", strings.Join(found[f], ", ")),
			Value:    strings.Join(found[f], ", "),
		})
	}
	return v
}

// CheckCertifications flags certifications missing from the normalization table.
// An entry may list several certifications separated by commas. They are kept as entered.
func CheckCertifications(draft *types.ResumeDraft, certs *normalize.CertNormalizer) []types.Violation {
	if draft == nil {
		return nil
	}
	var v []types.Violation
	for i, raw := range draft.Certifications {
		for _, part := range normalize.SplitList(raw) {
			res := certs.Normalize(part)
			if res.Recognized {
				continue
			}
			v = append(v, types.Violation{
				Field:    fmt.Sprintf("%s[%d]", types.FieldCertifications, i),
				Type:     types.ViolationUnrecognized,
				Severity: types.SeverityWarning,
				Details:  "not in the certification list; kept as entered",
				Value:    res.Canonical,
			})
		}
	}
	return v
}

func tooMany(field, what string, limit, actual int) types.Violation {
	return types.Violation{
		Field:    field,
		Type:     types.ViolationTooMany,
		Severity: types.SeverityError,
		Details:  fmt.Sprintf("%d %s; the limit is %d", actual, what, limit),
		Limit:    intPtr(limit),
		Actual:   intPtr(actual),
	}
}
