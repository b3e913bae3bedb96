package types

import "strings"

// ApplicationType selects between apprenticeship-track and job-track content.
type ApplicationType string

const (
	ApplicationApprenticeship ApplicationType = "apprenticeship"
	ApplicationJob            ApplicationType = "job"
)

// ParseApplicationType maps free text to an ApplicationType, defaulting to apprenticeship.
func ParseApplicationType(s string) ApplicationType {
	if strings.EqualFold(strings.TrimSpace(s), string(ApplicationJob)) {
		return ApplicationJob
	}
	return ApplicationApprenticeship
}

// ResumeDraft is the in-progress resume a student is editing.
// It is never written back into the content library.
type ResumeDraft struct {
	ID              string          `json:"id,omitempty"`
	ApplicationType ApplicationType `json:"application_type,omitempty"`
	Trade           string          `json:"trade,omitempty"`
	PriorIndustry   string          `json:"prior_industry,omitempty"`

	Header         Header      `json:"header"`
	Objective      string      `json:"objective" validate:"required"`
	Skills         SkillSet    `json:"skills"`
	Jobs           []Job       `json:"jobs" validate:"dive"`
	Certifications []string    `json:"certifications,omitempty"`
	Education      []Education `json:"education,omitempty"`
	OtherWork      string      `json:"other_work,omitempty"`
	Volunteer      string      `json:"volunteer,omitempty"`
}

// Header carries the contact block. At least one of phone or email is required.
type Header struct {
	Name  string `json:"name" validate:"required"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
	Phone string `json:"phone,omitempty" validate:"required_without=Email"`
	Email string `json:"email,omitempty" validate:"required_without=Phone,omitempty,email"`
}

// Job is one work-experience entry.
type Job struct {
	Company string             `json:"company,omitempty"`
	Role    string             `json:"role,omitempty"`
	City    string             `json:"city,omitempty"`
	Dates   string             `json:"dates,omitempty"`
	Bullets []MeasurableBullet `json:"bullets,omitempty" validate:"dive"`
	Duties  []string           `json:"duties,omitempty"`
}

// IsEmpty reports whether the entry carries nothing worth rendering.
func (j Job) IsEmpty() bool {
	return strings.TrimSpace(j.Company) == "" && strings.TrimSpace(j.Role) == "" &&
		len(j.Bullets) == 0 && len(j.Duties) == 0
}

// BulletTexts returns the resume-visible text of every bullet, measurable bullets first.
func (j Job) BulletTexts() []string {
	out := make([]string, 0, len(j.Bullets)+len(j.Duties))
	for _, b := range j.Bullets {
		if text := b.Text(); text != "" {
			out = append(out, text)
		}
	}
	for _, d := range j.Duties {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// MeasurableBullet is a bullet built from four required parts.
type MeasurableBullet struct {
	Action       string `json:"action" validate:"required"`
	Quantity     string `json:"quantity" validate:"required"`
	Safety       string `json:"safety" validate:"required"`
	Verification string `json:"verification" validate:"required"`
}

// Text joins the non-empty parts with "; ".
func (b MeasurableBullet) Text() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{b.Action, b.Quantity, b.Safety, b.Verification} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "; ")
}

// WordCount counts words in the concatenated bullet text.
func (b MeasurableBullet) WordCount() int {
	return len(strings.Fields(b.Text()))
}

// Education is one school or training program.
type Education struct {
	School     string `json:"school,omitempty"`
	Credential string `json:"credential,omitempty"`
	Year       string `json:"year,omitempty"`
	Details    string `json:"details,omitempty"`
}

// IsEmpty reports whether every field is blank.
func (e Education) IsEmpty() bool {
	return strings.TrimSpace(e.School+e.Credential+e.Year+e.Details) == ""
}

// SkillSet groups a student's skills by where they came from.
type SkillSet struct {
	Suggested []string `json:"suggested,omitempty"`
	Inferred  []string `json:"inferred,omitempty"`
	QuickAdd  []string `json:"quick_add,omitempty"`
}

// Aggregate deduplicates across all three collections in first-seen order.
// It never truncates; the skill limit is reported by the validator.
func (s SkillSet) Aggregate() []string {
	return DedupeFold(s.Suggested, s.Inferred, s.QuickAdd)
}

// AddSuggested appends labels to the suggested-from-text collection.
func (s *SkillSet) AddSuggested(labels ...string) {
	s.Suggested = DedupeFold(s.Suggested, labels)
}

// AddInferred appends labels to the inferred-from-bullets collection.
func (s *SkillSet) AddInferred(labels ...string) {
	s.Inferred = DedupeFold(s.Inferred, labels)
}

// AddQuickAdd appends labels picked from the canon.
func (s *SkillSet) AddQuickAdd(labels ...string) {
	s.QuickAdd = DedupeFold(s.QuickAdd, labels)
}
