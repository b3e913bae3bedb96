package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()
	assert.Equal(t, 12, l.MaxSkills)
	assert.Equal(t, 24, l.MaxBulletWords)
	assert.Equal(t, 200, l.MaxObjectiveChars)
	assert.Equal(t, 3, l.MaxJobs)
	assert.Equal(t, 4, l.MaxBulletsPerJob)
	assert.Equal(t, 2, l.MaxEducation)
	assert.Equal(t, 50, l.MaxEducationDetailChars)
	require.NoError(t, l.Validate())
}

func TestLimits_MergeWithDefaults(t *testing.T) {
	l := Limits{MaxSkills: 10, MaxBulletWords: 20}.MergeWithDefaults()
	assert.Equal(t, 10, l.MaxSkills)
	assert.Equal(t, 20, l.MaxBulletWords)
	assert.Equal(t, 200, l.MaxObjectiveChars)
	assert.Equal(t, 6, l.MaxCerts)
}

func TestLimits_Validate(t *testing.T) {
	l := DefaultLimits()
	l.MaxJobs = -1
	err := l.Validate()
	require.Error(t, err)
	var vErr *Error
	assert.ErrorAs(t, err, &vErr)

	l = DefaultLimits()
	l.MinBulletsPerJob = 5
	assert.Error(t, l.Validate())
}
