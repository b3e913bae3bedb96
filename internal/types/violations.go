package types

import "fmt"

// Violation types reported by the constraint validator.
const (
	ViolationTooMany      = "too_many"
	ViolationTooFew       = "too_few"
	ViolationTooLong      = "too_long"
	ViolationRequired     = "required"
	ViolationInvalid      = "invalid"
	ViolationBannedTerm   = "banned_term"
	ViolationUnrecognized = "unrecognized_certification"
	ViolationIncomplete   = "incomplete"
)

// Severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single validation finding for one field
type Violation struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Limit    *int   `json:"limit,omitempty"`
	Actual   *int   `json:"actual,omitempty"`
	Value    string `json:"value,omitempty"`
}

// Violations represents a collection of validation findings
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity.
func (v Violations) HasErrors() bool {
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ForField returns the violations reported against one field path.
func (v Violations) ForField(field string) []Violation {
	var out []Violation
	for _, violation := range v.Violations {
		if violation.Field == field {
			out = append(out, violation)
		}
	}
	return out
}

// Field paths used in violations and banned-term reports.
const (
	FieldObjective      = "objective"
	FieldSkills         = "skills"
	FieldJobs           = "jobs"
	FieldEducation      = "education"
	FieldCertifications = "certifications"
	FieldName           = "header.name"
	FieldContact        = "header.contact"
	FieldEmail          = "header.email"
)

// JobField returns the path of a job entry, e.g. "jobs[0]".
func JobField(job int) string {
	return fmt.Sprintf("%s[%d]", FieldJobs, job)
}

// BulletField returns the path of a measurable bullet, e.g. "jobs[0].bullets[2]".
func BulletField(job, bullet int) string {
	return fmt.Sprintf("%s.bullets[%d]", JobField(job), bullet)
}

// DutyField returns the path of a free-text duty line, e.g. "jobs[1].duties[0]".
func DutyField(job, duty int) string {
	return fmt.Sprintf("%s.duties[%d]", JobField(job), duty)
}

// EducationField returns the path of an education entry, e.g. "education[1]".
func EducationField(entry int) string {
	return fmt.Sprintf("%s[%d]", FieldEducation, entry)
}
