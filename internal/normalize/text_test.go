package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormWS(t *testing.T) {
	assert.Equal(t, "a b c", NormWS("  a \t b\n\nc "))
	assert.Equal(t, "", NormWS("   "))
}

func TestCapFirst(t *testing.T) {
	assert.Equal(t, "Seattle", CapFirst("seattle"))
	assert.Equal(t, "Élan", CapFirst("élan"))
	assert.Equal(t, "", CapFirst(""))
}

func TestCleanBullet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"filler lead", "responsible for stocking shelves.", "Stocking shelves"},
		{"filler with colon", "Duties included: cleaning   the line...", "Cleaning the line"},
		{"tasked with", "TASKED WITH closing the store", "Closing the store"},
		{"plain", "staged hardware by circuit", "Staged hardware by circuit"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanBullet(tt.in))
		})
	}
}

func TestCleanBullet_CapsWords(t *testing.T) {
	long := strings.Repeat("word ", 30)
	assert.Len(t, strings.Fields(CleanBullet(long)), MaxBulletWords)
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "(206) 555-1234", CleanPhone("206.555.1234"))
	assert.Equal(t, "(206) 555-1234", CleanPhone("+1 (206) 555 1234"))
	assert.Equal(t, "555-1234", CleanPhone(" 555-1234 "))
}

func TestCleanEmail(t *testing.T) {
	assert.Equal(t, "john.doe@example.com", CleanEmail("  John.Doe@Example.com "))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"OSHA-10", "Forklift", "First Aid", "CPR", "Flagger"},
		SplitList("OSHA-10, Forklift;First Aid\nCPR • Flagger,,"))
	assert.Nil(t, SplitList(""))
}

func TestParseDates(t *testing.T) {
	tests := []struct {
		in         string
		start, end string
	}{
		{"2023-06 – 2024-05", "2023-06", "2024-05"},
		{"2022 - Present", "2022", "Present"},
		{"2021-2022", "2021", "2022"},
		{"Summer 2020", "Summer 2020", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			start, end := ParseDates(tt.in)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
