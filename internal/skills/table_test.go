package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywordTable_LowercasesKeywords(t *testing.T) {
	table, err := ParseKeywordTable([]byte(fixtureTable))
	require.NoError(t, err)
	assert.Contains(t, table.Keywords, "emt")
	assert.NotContains(t, table.Keywords, "EMT")
	require.Len(t, table.TradeFamilies, 3)
	assert.Equal(t, "Electrical", table.TradeFamilies[0].Name)
	assert.Len(t, table.Trades, 4)
}

func TestParseKeywordTable_NormalizesSynonymsAndPathways(t *testing.T) {
	table, err := ParseKeywordTable([]byte(fixtureTable))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"teamwork": "Teamwork & collaboration"}, table.SkillSynonyms)
	assert.Equal(t, "general roadmap", table.Pathways.Roadmap)
	assert.Equal(t, map[string][]string{"ironworker": {"iron", "rebar"}}, table.Pathways.Trades)
}

func TestKeywordTable_Labels(t *testing.T) {
	table, err := ParseKeywordTable([]byte(fixtureTable))
	require.NoError(t, err)

	labels := table.Labels()
	assert.Equal(t, []string{"Basic electrical", "Conduit bending & layout", "Pipe cutting & fitting", "Working at heights"}, labels[:4])
	assert.Contains(t, labels, "Layout & leveling")
	assert.Contains(t, labels, "Operating machinery (e.g., forklifts)")

	var empty *KeywordTable
	assert.Nil(t, empty.Labels())
}

func TestParseKeywordTable_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "keywords: [unclosed"},
		{"keyword without skills", "keywords:\n  conduit: []\n"},
		{"family without match", "trade_families:\n  - name: Electrical\n    skills: [x]\n"},
		{"profile without trade", "trade_profiles:\n  - stubs: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeywordTable([]byte(tt.yaml))
			require.Error(t, err)
			var tableErr *TableError
			assert.ErrorAs(t, err, &tableErr)
		})
	}
}

func TestLoadKeywordTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureTable), 0644))

	table, err := LoadKeywordTable(path)
	require.NoError(t, err)
	assert.NotEmpty(t, table.Keywords)

	_, err = LoadKeywordTable(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
