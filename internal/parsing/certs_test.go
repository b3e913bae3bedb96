package parsing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCertifications(t *testing.T) {
	csvText := `variant,canonical,note
OSHA 10|OSHA-10|OSHA10|OSHA 10 hour,OSHA Outreach 10-Hour (Construction),DOL card; does not expire
Flagger,WA Flagger,"Valid 3 years, renew before expiry"
# comment line
,Missing Variant,
Forklift
First Aid|CPR,First Aid/CPR/AED
`
	entries, warnings, err := ParseCertifications(strings.NewReader(csvText))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Len(t, warnings, 2)

	assert.Equal(t, []string{"OSHA 10", "OSHA-10", "OSHA10", "OSHA 10 hour"}, entries[0].Variants)
	assert.Equal(t, "OSHA Outreach 10-Hour (Construction)", entries[0].Canonical)
	assert.Equal(t, "DOL card; does not expire", entries[0].Note)
	assert.Equal(t, "Valid 3 years, renew before expiry", entries[1].Note)
	assert.Empty(t, entries[2].Note)
}

func TestParseCertifications_NoHeader(t *testing.T) {
	entries, warnings, err := ParseCertifications(strings.NewReader("OSHA 30,OSHA Outreach 30-Hour (Construction)\n"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, entries, 1)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestParseCertifications_ReadFailure(t *testing.T) {
	_, _, err := ParseCertifications(failingReader{})
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "disk gone")
}
