package packet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

type fakeContent struct{}

func (fakeContent) ObjectivesForTrade(trade string) (types.TradeObjectives, bool) {
	if !strings.EqualFold(trade, "Carpenter") {
		return types.TradeObjectives{}, false
	}
	return types.TradeObjectives{
		Trade:          "Carpenter",
		Apprenticeship: []string{"Seeking a carpentry apprenticeship."},
		Job:            []string{"Entry-level carpentry helper.", "Ready to stage lumber."},
	}, true
}

func (fakeContent) BadgesForTrade(trade string) []types.CredentialBadge {
	if !strings.EqualFold(trade, "Carpenter") {
		return []types.CredentialBadge{}
	}
	return []types.CredentialBadge{{Trade: "Carpenter", Name: "OSHA 10", ResumePhrase: "OSHA Outreach 10-Hour (Construction)", Proof: "DOL card"}}
}

func (fakeContent) TemplateByName(name string) (types.ArtifactTemplate, bool) {
	if !strings.EqualFold(name, "Attendance Record") {
		return types.ArtifactTemplate{}, false
	}
	return types.ArtifactTemplate{Name: "Attendance Record", Fields: []string{"Week", "Days present", "Verifier"}}, true
}

func TestAssemble(t *testing.T) {
	p := Assemble(fakeContent{}, Request{
		Student:         " Jordan Rivera ",
		Trade:           "carpenter",
		ApplicationType: types.ApplicationJob,
		Artifacts: map[string]map[string]string{
			"Attendance Record": {"week": "1", "Days present": "5", "Verifier": "Ms. Lee"},
			"Photo Log":         {"Date": "2025-03-03"},
		},
	})

	_, err := uuid.Parse(p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Jordan Rivera", p.Student)
	assert.Equal(t, []string{"Entry-level carpentry helper.", "Ready to stage lumber."}, p.Objectives)
	assert.Len(t, p.Badges, 1)
	assert.False(t, p.GeneratedAt.IsZero())

	require.Len(t, p.Artifacts, 2)
	assert.Equal(t, "Attendance Record", p.Artifacts[0].Template)
	assert.True(t, p.Artifacts[0].Complete)
	assert.Equal(t, "Photo Log", p.Artifacts[1].Template)
	assert.False(t, p.Artifacts[1].Complete, "unknown template has no fields")

	complete, total := Progress(p)
	assert.Equal(t, 1, complete)
	assert.Equal(t, 2, total)
}

func TestAssemble_DefaultsAndUnknownTrade(t *testing.T) {
	p := Assemble(fakeContent{}, Request{Trade: "Boilermaker"})
	assert.Equal(t, types.ApplicationApprenticeship, p.ApplicationType)
	assert.NotNil(t, p.Objectives)
	assert.Empty(t, p.Objectives)
	assert.Empty(t, p.Artifacts)
}

func TestArtifactStatus(t *testing.T) {
	tmpl := types.ArtifactTemplate{Name: "Traffic Control Log", Fields: []string{"Date", "Location", "Hours"}}

	tests := []struct {
		name        string
		values      map[string]string
		wantDone    bool
		wantMissing []string
	}{
		{name: "all filled", values: map[string]string{"Date": "3/3", "Location": "I-5", "Hours": "8"}, wantDone: true},
		{name: "blank value", values: map[string]string{"Date": "3/3", "Location": "  ", "Hours": "8"}, wantMissing: []string{"Location"}},
		{name: "nothing entered", values: nil, wantMissing: []string{"Date", "Location", "Hours"}},
		{name: "case-insensitive names", values: map[string]string{"date": "3/3", "LOCATION": "I-5", " hours ": "8"}, wantDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ArtifactStatus(tmpl, tt.values)
			assert.Equal(t, tt.wantDone, rec.Complete)
			assert.Equal(t, tt.wantMissing, rec.Missing)
		})
	}
}

func TestWriteText(t *testing.T) {
	p := Assemble(fakeContent{}, Request{
		Student:   "Jordan",
		Trade:     "Carpenter",
		Artifacts: map[string]map[string]string{"Attendance Record": {"Week": "1"}},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, p, []SourceDoc{
		{Name: "Carpenters roadmap.pdf", Text: "Line one\nLine two"},
		{Name: "scan.pdf"},
	}))

	out := buf.String()
	assert.Contains(t, out, "Student: Jordan | Trade: Carpenter | Application type: apprenticeship")
	assert.Contains(t, out, "  1. Seeking a carpentry apprenticeship.")
	assert.Contains(t, out, "    Resume phrase: OSHA Outreach 10-Hour (Construction)")
	assert.Contains(t, out, "ARTIFACT TRACKER (0 of 1 complete)")
	assert.Contains(t, out, "missing: Days present, Verifier")
	assert.Contains(t, out, "Line one\nLine two")
	assert.Contains(t, out, "(no text could be extracted)")
}
