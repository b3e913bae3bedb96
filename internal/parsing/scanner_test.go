package parsing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = SectionSpec{Name: "test", Start: "Objective Starters", GroupLevel: 3, SublistA: "Apprenticeship", SublistB: "Job"}

func TestScanGroups_IgnoresLinesBeforeSection(t *testing.T) {
	text := `# Library
### Not a trade
1. ignored

## Objective Starters Bank
### Carpenter
**Apprenticeship**
1. Build forms
`
	res := ScanGroups(text, testSpec)
	require.True(t, res.Found)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "Carpenter", res.Groups[0].Name)
	assert.Equal(t, []string{"Build forms"}, res.Groups[0].A)
}

func TestScanGroups_FlushesFinalGroup(t *testing.T) {
	text := `## Objective Starters
### Carpenter
**Job**
1. One
### Laborer
**Job**
1. Two
2. Three`
	res := ScanGroups(text, testSpec)
	require.Len(t, res.Groups, 2)
	assert.Equal(t, "Laborer", res.Groups[1].Name)
	assert.Equal(t, []string{"Two", "Three"}, res.Groups[1].B)
}

func TestScanGroups_KeepsEmptyGroups(t *testing.T) {
	text := `## Objective Starters
### Ironworker
### Glazier
**Apprenticeship**
`
	res := ScanGroups(text, testSpec)
	require.Len(t, res.Groups, 2)
	assert.Empty(t, res.Groups[0].A)
	assert.Empty(t, res.Groups[1].A)
	assert.Equal(t, "Glazier", res.Groups[1].Name)
}

func TestScanGroups_StopsAtSiblingSection(t *testing.T) {
	text := `## Objective Starters
### Painter
**Apprenticeship**
1. Prep surfaces
## Role Bullets
### Line Cook
1. Kept stations clean`
	res := ScanGroups(text, testSpec)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, "Painter", res.Groups[0].Name)
}

func TestScanGroups_StopsAtEndMarker(t *testing.T) {
	spec := testSpec
	spec.End = "Appendix"
	text := `## Objective Starters
### Painter
**Job**
1. Prep surfaces
### Appendix
1. not an objective`
	res := ScanGroups(text, spec)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"Prep surfaces"}, res.Groups[0].B)
}

func TestScanGroups_SkipsMalformedLines(t *testing.T) {
	text := `## Objective Starters
1. orphan item
###
1. item under nameless heading
### Roofer
**Apprenticeship**
1.
* Work at heights safely
`
	res := ScanGroups(text, testSpec)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"Work at heights safely"}, res.Groups[0].A)
	assert.Len(t, res.Warnings, 4)
}

func TestScanGroups_SectionNotFound(t *testing.T) {
	res := ScanGroups("## Something Else\n### A\n1. x", testSpec)
	assert.False(t, res.Found)
	assert.Empty(t, res.Groups)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Message, "not found")
}

func TestScanGroups_WholeDocumentWhenNoStart(t *testing.T) {
	res := ScanGroups("# Forms\n### Daily Log\nDescribe the day.\n- Date", SectionSpec{Name: "forms", GroupLevel: 3})
	require.True(t, res.Found)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, []string{"Describe the day."}, res.Groups[0].Text)
	assert.Equal(t, []string{"Date"}, res.Groups[0].Items)
}

func TestScanGroups_OtherLabelsBecomeBlocks(t *testing.T) {
	text := `## Credential Badges
### Electrician
**OSHA 10**
- Resume phrase: OSHA Outreach 10-Hour (Construction)
**Flagger**
- Resume phrase: WA Flagger`
	res := ScanGroups(text, SectionSpec{Start: "Credential Badges", GroupLevel: 3})
	require.Len(t, res.Groups, 1)
	want := []Block{
		{Label: "OSHA 10", Items: []string{"Resume phrase: OSHA Outreach 10-Hour (Construction)"}},
		{Label: "Flagger", Items: []string{"Resume phrase: WA Flagger"}},
	}
	if diff := cmp.Diff(want, res.Groups[0].Blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestScanGroups_SublistLabelNeedsWordBoundary(t *testing.T) {
	text := `## Objective Starters
### Carpenter
**Apprenticeship:**
1. A
**Job (entry-level)**
1. B
**Jobsite notes**
- Bring boots`
	res := ScanGroups(text, testSpec)
	require.Len(t, res.Groups, 1)
	g := res.Groups[0]
	assert.Equal(t, []string{"A"}, g.A)
	assert.Equal(t, []string{"B"}, g.B)
	want := []Block{{Label: "Jobsite notes", Items: []string{"Bring boots"}}}
	if diff := cmp.Diff(want, g.Blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelMatches(t *testing.T) {
	tests := []struct {
		label string
		want  string
		match bool
	}{
		{"Job", "Job", true},
		{"job", "Job", true},
		{"Job (entry-level)", "Job", true},
		{"Apprenticeship:", "Apprenticeship", true},
		{"Jobsite notes", "Job", false},
		{"Jobs", "Job", false},
		{"Job2", "Job", false},
		{"Job", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.label+"/"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.match, labelMatches(tt.label, tt.want))
		})
	}
}

func TestScanGroups_Deterministic(t *testing.T) {
	text := `## Objective Starters
### Carpenter
**Apprenticeship**
1. A
**Job**
1. B`
	first := ScanGroups(text, testSpec)
	second := ScanGroups(text, testSpec)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("scan not deterministic (-first +second):\n%s", diff)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "seeking_section", StateSeekingSection.String())
	assert.Equal(t, "in_sublist_b", StateInSublistB.String())
	assert.Equal(t, "unknown", State(42).String())
}
