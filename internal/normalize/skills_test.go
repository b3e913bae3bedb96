package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLabeler() *SkillLabeler {
	return NewSkillLabeler(
		[]string{"Problem-solving", "Teamwork & collaboration", "Safety awareness", "Hand & power tools", "Rigging basics", "Basic electrical"},
		map[string]string{
			"problem solving": "Problem-solving",
			"teamwork":        "Teamwork & collaboration",
			"safety":          "Safety awareness",
			"tools":           "Hand & power tools",
			"wiring":          "Not a label",
		},
	)
}

func TestSkillLabeler_Normalize(t *testing.T) {
	l := testLabeler()

	tests := []struct {
		in   string
		want string
	}{
		{"problem solving", "Problem-solving"},
		{"  Teamwork ", "Teamwork & collaboration"},
		{"SAFETY", "Safety awareness"},
		{"tools", "Hand & power tools"},
		{"hand & power tools", "Hand & power tools"},
		{"Rigging basics", "Rigging basics"},
		{"basic  ELECTRICAL", "Basic electrical"},
		{"forklift   operation", "Forklift Operation"},
		{"wiring", "Wiring"}, // synonym of an unknown label is dropped
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Normalize(tt.in))
		})
	}
}

func TestSkillLabeler_Nil(t *testing.T) {
	var l *SkillLabeler

	assert.Equal(t, "rigging basics", l.Normalize(" rigging   basics "))
	assert.Empty(t, l.Normalize("  "))
}
