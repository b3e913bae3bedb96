package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		kind  LineKind
		level int
		text  string
	}{
		{"blank", "   ", LineBlank, 0, ""},
		{"rule", "---", LineBlank, 0, ""},
		{"section heading", "## Objective Starters Bank", LineHeading, 2, "Objective Starters Bank"},
		{"group heading", "### Electrician – Inside (01)", LineHeading, 3, "Electrician – Inside (01)"},
		{"closed heading", "### Carpenter ###", LineHeading, 3, "Carpenter"},
		{"empty heading", "###", LineHeading, 3, ""},
		{"hashtag is text", "#safetyfirst", LineText, 0, "#safetyfirst"},
		{"bold label", "**Apprenticeship**", LineBoldLabel, 0, "Apprenticeship"},
		{"bold label with colon", "**Job:**", LineBoldLabel, 0, "Job"},
		{"numbered", "1. Seeking a registered apprenticeship", LineNumbered, 0, "Seeking a registered apprenticeship"},
		{"numbered paren", "2) Second item", LineNumbered, 0, "Second item"},
		{"numbered empty", "3.", LineNumbered, 0, ""},
		{"star bullet", "* Safety awareness", LineBulleted, 0, "Safety awareness"},
		{"dash bullet", "  - Hand & power tools  ", LineBulleted, 0, "Hand & power tools"},
		{"dot bullet", "• Teamwork", LineBulleted, 0, "Teamwork"},
		{"empty bullet", "-", LineBulleted, 0, ""},
		{"decimal is text", "1.5 hours of training", LineText, 0, "1.5 hours of training"},
		{"bold inside text", "Bring **steel-toe** boots", LineText, 0, "Bring steel-toe boots"},
		{"bom", "\ufeff## Skills Canon", LineHeading, 2, "Skills Canon"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line := ClassifyLine(tc.input)
			assert.Equal(t, tc.kind, line.Kind)
			assert.Equal(t, tc.level, line.Level)
			assert.Equal(t, tc.text, line.Text)
		})
	}
}

func TestLine_IsListItem(t *testing.T) {
	assert.True(t, ClassifyLine("1. a").IsListItem())
	assert.True(t, ClassifyLine("* a").IsListItem())
	assert.False(t, ClassifyLine("**a**").IsListItem())
	assert.False(t, ClassifyLine("a").IsListItem())
}

func TestSplitLines_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("a\r\nb\rc"))
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "heading", LineHeading.String())
	assert.Equal(t, "unknown", LineKind(99).String())
}
