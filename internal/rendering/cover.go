package rendering

import (
	"bytes"
	"strings"
	"time"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

// CoverLetterInput is what the student fills in for a cover letter.
type CoverLetterInput struct {
	Name            string                `json:"name"`
	City            string                `json:"city,omitempty"`
	State           string                `json:"state,omitempty"`
	Phone           string                `json:"phone,omitempty"`
	Email           string                `json:"email,omitempty"`
	Company         string                `json:"company,omitempty"`
	Location        string                `json:"location,omitempty"`
	Role            string                `json:"role,omitempty"`
	Trade           string                `json:"trade,omitempty"`
	Strengths       string                `json:"strengths,omitempty"`
	ApplicationType types.ApplicationType `json:"application_type,omitempty"`
	Date            time.Time             `json:"date,omitempty"`
}

type coverLetterData struct {
	Name, City, State, Phone, Email string
	Date                            string
	Company, Location               string
	Role, Position, Trade           string
	Strengths                       []string
}

// BuildCoverLetter renders a plain-text cover letter. Banned terms are stripped
// from the role, company, trade and strengths before they reach the letter.
func BuildCoverLetter(in CoverLetterInput, filter *rewriting.NeutralFilter) (string, error) {
	if filter == nil {
		filter = rewriting.DefaultNeutralFilter()
	}
	strip := func(s string) string {
		return normalize.NormWS(filter.Strip(s))
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	position := "apprenticeship"
	if in.ApplicationType == types.ApplicationJob {
		position = "position"
	}
	role := strip(in.Role)
	if role == "" {
		role = "entry-level"
	}

	var strengths []string
	for _, line := range normalize.SplitList(in.Strengths) {
		if line = strip(line); line != "" {
			strengths = append(strengths, line)
		}
	}

	data := coverLetterData{
		Name:      normalize.NormWS(in.Name),
		City:      normalize.CapFirst(normalize.NormWS(in.City)),
		State:     strings.ToUpper(normalize.NormWS(in.State)),
		Phone:     normalize.CleanPhone(in.Phone),
		Email:     normalize.CleanEmail(in.Email),
		Date:      date.Format("January 2, 2006"),
		Company:   strip(in.Company),
		Location:  normalize.NormWS(in.Location),
		Role:      role,
		Position:  position,
		Trade:     strip(in.Trade),
		Strengths: strengths,
	}

	tmpl, err := parseEmbedded("cover_letter.txt.tmpl")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &TemplateError{Message: "failed to execute cover letter template", Cause: err}
	}
	return buf.String(), nil
}
