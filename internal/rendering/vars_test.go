package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/skills"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	table, err := skills.ParseKeywordTable([]byte(`
keywords:
  conduit: [Conduit bending & layout]
  circuit: [Basic electrical]
trade_families:
  - name: Electrical
    match: [ELECTRIC]
    skills: [Conduit bending & layout, Blueprint reading]
general: [Safety awareness]
skill_synonyms:
  teamwork: Teamwork & collaboration
  blueprints: Reading blueprints & specs
`))
	require.NoError(t, err)
	canon := []string{"Teamwork & collaboration", "Reading blueprints & specs", "Rigging basics", "Working at heights"}
	return Deps{
		Filter: rewriting.DefaultNeutralFilter(),
		Skills: normalize.NewSkillLabeler(append(canon, table.Labels()...), table.SkillSynonyms),
		Certs: normalize.NewCertNormalizer([]types.CertificationEntry{
			{Variants: []string{"OSHA 10"}, Canonical: "OSHA Outreach 10-Hour (Construction)"},
		}),
		Engine: skills.NewEngine(table),
		Translator: rewriting.NewTranslator([]rewriting.TranslationRule{
			{Industry: "food service", Keyword: "line cook", ReplaceWith: "kitchen crew member"},
		}),
	}
}

func sampleDraft() *types.ResumeDraft {
	return &types.ResumeDraft{
		Trade:         "Electrician",
		PriorIndustry: "food service",
		Header: types.Header{
			Name: "jordan rivera", City: "seattle", State: "wa",
			Phone: "206.555.1234", Email: " Jordan@Example.com ",
		},
		Objective: "Seeking a union apprenticeship in inside wireman work.",
		Skills: types.SkillSet{
			Suggested: []string{"teamwork"},
			QuickAdd:  []string{"Teamwork & collaboration", "blueprints"},
		},
		Jobs: []types.Job{
			{
				Company: "acme foods", Role: "line cook", Dates: "2022 – Present",
				Duties: []string{"Responsible for line cook prep.", "Cleaned stations"},
			},
			{},
		},
		Certifications: []string{"osha-10, Flagger"},
		Education:      []types.Education{{School: "seattle central", Year: "2024"}},
		OtherWork:      "Weekend moving crew",
		Volunteer:      "Food bank",
	}
}

func TestBuildTemplateVars(t *testing.T) {
	vars, _ := BuildTemplateVars(sampleDraft(), testDeps(t))

	assert.Equal(t, "Jordan rivera", vars.Name)
	assert.Equal(t, "Seattle", vars.City)
	assert.Equal(t, "WA", vars.State)
	assert.Equal(t, "(206) 555-1234", vars.Phone)
	assert.Equal(t, "jordan@example.com", vars.Email)
	assert.Equal(t, "Electrician", vars.TradeLabel)

	assert.Equal(t,
		"Seeking a registered apprenticeship in work. Other work: Weekend moving crew  •  Volunteer: Food bank",
		vars.Summary)
	assert.Equal(t,
		[]string{"Teamwork & collaboration", "Reading blueprints & specs", "Conduit bending & layout", "Blueprint reading"},
		vars.Skills)
	assert.Equal(t, []string{"OSHA Outreach 10-Hour (Construction)", "Flagger"}, vars.Certs)

	require.Len(t, vars.Jobs, 1, "empty jobs are dropped")
	job := vars.Jobs[0]
	assert.Equal(t, "Acme foods", job.Company)
	assert.Equal(t, "2022", job.Start)
	assert.Equal(t, "Present", job.End)
	assert.Equal(t, []string{"Kitchen crew member prep", "Cleaned stations"}, job.Bullets)

	require.Len(t, vars.Schools, 1)
	assert.Equal(t, "Seattle central", vars.Schools[0].School)
}

func TestBuildTemplateVars_LibraryLabelsKeepSpelling(t *testing.T) {
	draft := &types.ResumeDraft{
		Header: types.Header{Name: "Sam"},
		Skills: types.SkillSet{
			Inferred: []string{"Conduit bending & layout", "basic electrical"},
			QuickAdd: []string{"Rigging basics", "Working at heights", "scaffold erection"},
		},
	}

	vars, _ := BuildTemplateVars(draft, testDeps(t))

	assert.Equal(t,
		[]string{"Conduit bending & layout", "Basic electrical", "Rigging basics", "Working at heights", "Scaffold Erection"},
		vars.Skills)
}

func TestBuildTemplateVars_ReportsViolations(t *testing.T) {
	_, violations := BuildTemplateVars(sampleDraft(), testDeps(t))

	var banned, unrecognized int
	for _, v := range violations {
		switch v.Type {
		case types.ViolationBannedTerm:
			banned++
		case types.ViolationUnrecognized:
			unrecognized++
		}
	}
	assert.Equal(t, 1, banned, "objective carries banned terms")
	assert.Equal(t, 1, unrecognized, "Flagger is not in the test table")
}

func TestBuildTemplateVars_Caps(t *testing.T) {
	draft := &types.ResumeDraft{Header: types.Header{Name: "Sam", Phone: "2065551234"}, Objective: "Ready to work."}
	for i := 0; i < 5; i++ {
		draft.Jobs = append(draft.Jobs, types.Job{
			Company: "Co",
			Duties:  []string{"One a", "Two b", "Three c", "Four d", "Five e", "Six f"},
		})
	}
	for i := 0; i < 20; i++ {
		draft.Skills.QuickAdd = append(draft.Skills.QuickAdd, "Skill "+strings.Repeat("x", i+1))
	}
	for i := 0; i < 9; i++ {
		draft.Certifications = append(draft.Certifications, "Cert "+strings.Repeat("y", i+1))
	}
	for i := 0; i < 4; i++ {
		draft.Education = append(draft.Education, types.Education{School: "School"})
	}

	vars, violations := BuildTemplateVars(draft, Deps{})

	assert.Len(t, vars.Jobs, 3)
	for _, j := range vars.Jobs {
		assert.Len(t, j.Bullets, 4)
	}
	assert.Len(t, vars.Skills, 12)
	assert.Len(t, vars.Certs, 6)
	assert.Len(t, vars.Schools, 2)
	assert.NotEmpty(t, violations, "the draft itself is over the limits")
	assert.Len(t, draft.Jobs, 5, "the draft is never truncated")
}

func TestBuildTemplateVars_SummaryCap(t *testing.T) {
	draft := &types.ResumeDraft{
		Objective: strings.Repeat("a", 300),
		OtherWork: strings.Repeat("b ", 150),
	}
	vars, _ := BuildTemplateVars(draft, Deps{})
	assert.LessOrEqual(t, len([]rune(vars.Summary)), MaxSummaryChars)
	assert.True(t, strings.HasPrefix(vars.Summary, strings.Repeat("a", 300)+" Other work: "))
}

func TestBuildTemplateVars_NilDraft(t *testing.T) {
	vars, violations := BuildTemplateVars(nil, Deps{})
	require.NotNil(t, vars)
	assert.Empty(t, vars.Jobs)
	assert.NotEmpty(t, violations)
}

func TestTemplateVars_Map(t *testing.T) {
	m := sampleVars().Map()
	assert.Equal(t, "Jordan Rivera", m["Name"])
	assert.Equal(t, "(206) 555-1234", m["phone"])
	jobs, ok := m["jobs"].([]map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Acme Foods", jobs[0]["company"])
}
