package parsing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

const certSection = "certifications"

// ParseCertifications reads the certification normalization table.
// Columns are variant, canonical phrase and an optional note; a variant cell may
// hold a family of spellings separated by "|". A header row is skipped.
// Malformed rows are reported as warnings; only a read failure is an error.
func ParseCertifications(r io.Reader) ([]types.CertificationEntry, []Warning, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var (
		entries  []types.CertificationEntry
		warnings []Warning
	)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				warnings = append(warnings, Warning{Section: certSection, Line: csvErr.Line, Message: csvErr.Err.Error()})
				continue
			}
			return nil, warnings, &ParseError{Message: "failed to read certification table", Cause: err}
		}

		if row == 1 && isCertHeader(record) {
			continue
		}
		entry, ok := certEntryFromRecord(record)
		if !ok {
			warnings = append(warnings, Warning{Section: certSection, Line: row, Message: fmt.Sprintf("row needs a variant and a canonical phrase: %q", strings.Join(record, ","))})
			continue
		}
		entries = append(entries, entry)
	}
	return entries, warnings, nil
}

func isCertHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "variant")
}

func certEntryFromRecord(record []string) (types.CertificationEntry, bool) {
	if len(record) < 2 {
		return types.CertificationEntry{}, false
	}
	canonical := strings.TrimSpace(record[1])
	var variants []string
	for _, v := range strings.Split(record[0], "|") {
		if v = strings.TrimSpace(v); v != "" {
			variants = append(variants, v)
		}
	}
	if canonical == "" || len(variants) == 0 {
		return types.CertificationEntry{}, false
	}

	entry := types.CertificationEntry{Variants: variants, Canonical: canonical}
	if len(record) > 2 {
		entry.Note = strings.TrimSpace(strings.Join(record[2:], ","))
	}
	return entry, true
}
