package validation

import (
	"github.com/go-playground/validator/v10"
)

// Limits are the one-page layout constraints. They are advisory: the validator
// reports them and never truncates.
type Limits struct {
	MaxSkills               int `json:"max_skills" validate:"gt=0"`
	MaxBulletWords          int `json:"max_bullet_words" validate:"gt=0"`
	MaxObjectiveChars       int `json:"max_objective_chars" validate:"gt=0"`
	MaxJobs                 int `json:"max_jobs" validate:"gt=0"`
	MaxBulletsPerJob        int `json:"max_bullets_per_job" validate:"gt=0"`
	MinBulletsPerJob        int `json:"min_bullets_per_job" validate:"gte=0,ltefield=MaxBulletsPerJob"`
	MaxEducation            int `json:"max_education" validate:"gt=0"`
	MaxEducationDetailChars int `json:"max_education_detail_chars" validate:"gt=0"`
	MaxCerts                int `json:"max_certs" validate:"gt=0"`
}

// DefaultLimits returns the standard one-page limits.
func DefaultLimits() Limits {
	return Limits{
		MaxSkills:               12,
		MaxBulletWords:          24,
		MaxObjectiveChars:       200,
		MaxJobs:                 3,
		MaxBulletsPerJob:        4,
		MinBulletsPerJob:        3,
		MaxEducation:            2,
		MaxEducationDetailChars: 50,
		MaxCerts:                6,
	}
}

// MergeWithDefaults fills zero fields from DefaultLimits.
func (l Limits) MergeWithDefaults() Limits {
	d := DefaultLimits()
	fill := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&l.MaxSkills, d.MaxSkills)
	fill(&l.MaxBulletWords, d.MaxBulletWords)
	fill(&l.MaxObjectiveChars, d.MaxObjectiveChars)
	fill(&l.MaxJobs, d.MaxJobs)
	fill(&l.MaxBulletsPerJob, d.MaxBulletsPerJob)
	fill(&l.MinBulletsPerJob, d.MinBulletsPerJob)
	fill(&l.MaxEducation, d.MaxEducation)
	fill(&l.MaxEducationDetailChars, d.MaxEducationDetailChars)
	fill(&l.MaxCerts, d.MaxCerts)
	return l
}

// Validate checks that every limit is usable.
func (l Limits) Validate() error {
	if err := validator.New().Struct(l); err != nil {
		return &Error{Message: "invalid limits", Cause: err}
	}
	return nil
}

func intPtr(i int) *int {
	return &i
}
