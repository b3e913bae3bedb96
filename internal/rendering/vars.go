package rendering

import (
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/skills"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
	"github.com/mandy1eigh007/resume-workshop-app/internal/validation"
)

// MaxSummaryChars caps the summary after the other-work and volunteer tail is added.
const MaxSummaryChars = 450

const tailSeparator = "  •  "

// TemplateVars is the flat variable set a resume template consumes. The JSON
// names are the template's variable names.
type TemplateVars struct {
	Name       string       `json:"Name"`
	City       string       `json:"City"`
	State      string       `json:"State"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	Summary    string       `json:"summary"`
	TradeLabel string       `json:"trade_label"`
	Skills     []string     `json:"skills"`
	Certs      []string     `json:"certs"`
	Jobs       []JobVars    `json:"jobs"`
	Schools    []SchoolVars `json:"schools"`
}

// JobVars is one rendered work-experience entry.
type JobVars struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	City    string   `json:"city"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Bullets []string `json:"bullets"`
}

// SchoolVars is one rendered education entry.
type SchoolVars struct {
	School     string `json:"school"`
	Credential string `json:"credential"`
	Year       string `json:"year"`
	Details    string `json:"details"`
}

// Map returns the variables as a generic map for template engines that take one.
func (v *TemplateVars) Map() map[string]interface{} {
	jobs := make([]map[string]interface{}, 0, len(v.Jobs))
	for _, j := range v.Jobs {
		jobs = append(jobs, map[string]interface{}{
			"company": j.Company, "role": j.Role, "city": j.City,
			"start": j.Start, "end": j.End, "bullets": j.Bullets,
		})
	}
	schools := make([]map[string]interface{}, 0, len(v.Schools))
	for _, s := range v.Schools {
		schools = append(schools, map[string]interface{}{
			"school": s.School, "credential": s.Credential, "year": s.Year, "details": s.Details,
		})
	}
	return map[string]interface{}{
		"Name":        v.Name,
		"City":        v.City,
		"State":       v.State,
		"phone":       v.Phone,
		"email":       v.Email,
		"summary":     v.Summary,
		"trade_label": v.TradeLabel,
		"skills":      v.Skills,
		"certs":       v.Certs,
		"jobs":        jobs,
		"schools":     schools,
	}
}

// Deps are the content-backed helpers the builder uses. Nil helpers are skipped,
// except Filter which falls back to the default filter.
type Deps struct {
	Filter     *rewriting.NeutralFilter
	Certs      *normalize.CertNormalizer
	Skills     *normalize.SkillLabeler
	Engine     *skills.Engine
	Translator *rewriting.Translator
	Limits     validation.Limits
}

// BuildTemplateVars turns a draft into template variables. The draft is checked
// first and the findings returned; the output is then capped to the one-page
// limits so the hand-off always fits.
func BuildTemplateVars(draft *types.ResumeDraft, deps Deps) (*TemplateVars, []types.Violation) {
	if deps.Filter == nil {
		deps.Filter = rewriting.DefaultNeutralFilter()
	}
	limits := deps.Limits.MergeWithDefaults()

	violations := validation.Validate(draft, validation.Options{
		Limits: limits,
		Filter: deps.Filter,
		Certs:  deps.Certs,
	}).Violations
	if draft == nil {
		return &TemplateVars{Skills: []string{}, Certs: []string{}, Jobs: []JobVars{}, Schools: []SchoolVars{}}, violations
	}

	industry := draft.PriorIndustry
	vars := &TemplateVars{
		Name:       normalize.CapFirst(normalize.NormWS(draft.Header.Name)),
		City:       normalize.CapFirst(normalize.NormWS(draft.Header.City)),
		State:      strings.ToUpper(normalize.NormWS(draft.Header.State)),
		Phone:      normalize.CleanPhone(draft.Header.Phone),
		Email:      normalize.CleanEmail(draft.Header.Email),
		TradeLabel: deps.Filter.Filter(normalize.NormWS(draft.Trade)),
	}

	vars.Summary = buildSummary(deps.Filter.Filter(draft.Objective), draft.OtherWork, draft.Volunteer)
	vars.Skills = buildSkills(draft, deps, limits.MaxSkills)
	vars.Certs = buildCerts(draft.Certifications, deps.Certs, limits.MaxCerts)
	vars.Jobs = buildJobs(draft.Jobs, deps.Translator, industry, limits)
	vars.Schools = buildSchools(draft.Education, limits.MaxEducation)

	return vars, violations
}

func buildSummary(objective, otherWork, volunteer string) string {
	summary := truncateRunes(normalize.NormWS(objective), MaxSummaryChars)

	var tail []string
	if w := normalize.NormWS(otherWork); w != "" {
		tail = append(tail, "Other work: "+w)
	}
	if v := normalize.NormWS(volunteer); v != "" {
		tail = append(tail, "Volunteer: "+v)
	}
	if len(tail) > 0 {
		summary = truncateRunes(strings.TrimSpace(summary+" "+strings.Join(tail, tailSeparator)), MaxSummaryChars)
	}
	return summary
}

// buildSkills normalizes the student's labels, appends the trade canon and
// translates the result for the prior industry.
func buildSkills(draft *types.ResumeDraft, deps Deps, limit int) []string {
	var labels []string
	for _, s := range draft.Skills.Aggregate() {
		if label := deps.Skills.Normalize(s); label != "" {
			labels = append(labels, label)
		}
	}
	if deps.Engine != nil && strings.TrimSpace(draft.Trade) != "" {
		labels = append(labels, deps.Engine.CanonSkillsForTrade(draft.Trade)...)
	}
	out := deps.Translator.TranslateSkills(types.DedupeFold(labels), draft.PriorIndustry, limit)
	if out == nil {
		return []string{}
	}
	return out
}

func buildCerts(raw []string, certs *normalize.CertNormalizer, limit int) []string {
	var flat []string
	for _, c := range raw {
		flat = append(flat, normalize.SplitList(c)...)
	}
	out := []string{}
	for _, res := range certs.NormalizeAll(flat) {
		if len(out) == limit {
			break
		}
		out = append(out, res.Canonical)
	}
	return out
}

func buildJobs(jobs []types.Job, translator *rewriting.Translator, industry string, limits validation.Limits) []JobVars {
	out := []JobVars{}
	for _, j := range jobs {
		if j.IsEmpty() {
			continue
		}
		if len(out) == limits.MaxJobs {
			break
		}
		start, end := normalize.ParseDates(j.Dates)
		bullets := types.DedupeFold(translator.TranslateBullets(j.BulletTexts(), industry))
		if len(bullets) > limits.MaxBulletsPerJob {
			bullets = bullets[:limits.MaxBulletsPerJob]
		}
		if bullets == nil {
			bullets = []string{}
		}
		out = append(out, JobVars{
			Company: normalize.CapFirst(normalize.NormWS(j.Company)),
			Role:    normalize.CapFirst(normalize.NormWS(j.Role)),
			City:    normalize.CapFirst(normalize.NormWS(j.City)),
			Start:   normalize.NormWS(start),
			End:     normalize.NormWS(end),
			Bullets: bullets,
		})
	}
	return out
}

func buildSchools(entries []types.Education, limit int) []SchoolVars {
	out := []SchoolVars{}
	for _, e := range entries {
		if e.IsEmpty() {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, SchoolVars{
			School:     normalize.CapFirst(normalize.NormWS(e.School)),
			Credential: normalize.CapFirst(normalize.NormWS(e.Credential)),
			Year:       normalize.NormWS(e.Year),
			Details:    normalize.CapFirst(normalize.NormWS(e.Details)),
		})
	}
	return out
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit]))
}
