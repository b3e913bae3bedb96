package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_TargetedReplacement(t *testing.T) {
	f := DefaultNeutralFilter()

	out := f.Filter("Apply to union apprenticeship program")
	assert.Contains(t, out, "registered apprenticeship")
	assert.NotContains(t, out, "union")
	assert.False(t, f.ContainsBannedTerms(out))
}

func TestFilter(t *testing.T) {
	f := DefaultNeutralFilter()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"non-union apprenticeship", "Seeking a non-union apprenticeship.", "Seeking a registered apprenticeship."},
		{"nonunion apprenticeship", "Seeking a Nonunion Apprenticeship", "Seeking a registered apprenticeship"},
		{"union job", "Looking for a union job in Seattle", "Looking for a job in Seattle"},
		{"generic removal", "Inside wireman with IBEW Local 46 experience", "with experience"},
		{"punctuation tidy", "Worked residential , commercial sites", "Worked, commercial sites"},
		{"orphaned comma before period", "Seeking a non-union apprenticeship with IBEW Local 46, union.", "Seeking a registered apprenticeship with."},
		{"doubled comma", "Framing, union, and drywall", "Framing, and drywall"},
		{"leading separator", "Union, commercial and industrial sites", "commercial and industrial sites"},
		{"trailing separator", "Commercial sites; residential", "Commercial sites"},
		{"numbers and ellipsis kept", "Moved 1,000 lbs... daily", "Moved 1,000 lbs... daily"},
		{"low voltage", "Pulled low-voltage cable", "Pulled cable"},
		{"sound and communication", "Sound and Communications helper", "helper"},
		{"whole word only", "Reunion planning and unionized pay", "Reunion planning and unionized pay"},
		{"clean text untouched", "Staged hardware by circuit", "Staged hardware by circuit"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Filter(tt.in))
		})
	}
}

func TestFilter_ReplacementRunsBeforeRemoval(t *testing.T) {
	f := DefaultNeutralFilter()
	// Removal first would leave "Apply to apprenticeship program".
	assert.Equal(t, "Apply to registered apprenticeship program", f.Filter("Apply to union apprenticeship program"))
}

func TestStrip(t *testing.T) {
	f := DefaultNeutralFilter()
	assert.Equal(t, "This is  work", f.Strip("This is union work"))
}

func TestFindBannedTerms(t *testing.T) {
	f := DefaultNeutralFilter()

	found := f.FindBannedTerms("Non-union shop, then UNION job at Local  46; union again")
	assert.Equal(t, []string{"non-union", "union", "local 46"}, found)

	assert.Nil(t, f.FindBannedTerms("Measured and marked 20+ EMT runs"))
}

func TestContainsBannedTerms_OriginalText(t *testing.T) {
	f := DefaultNeutralFilter()
	text := "Apply to union apprenticeship program"
	assert.True(t, f.ContainsBannedTerms(text))
	_ = f.Filter(text)
	assert.True(t, f.ContainsBannedTerms(text))
}

func TestNewNeutralFilter_BadPattern(t *testing.T) {
	_, err := NewNeutralFilter(nil, []string{"("})
	require.Error(t, err)
	var filterErr *FilterError
	assert.ErrorAs(t, err, &filterErr)
}
