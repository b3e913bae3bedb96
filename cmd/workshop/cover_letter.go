package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mandy1eigh007/resume-workshop-app/internal/rendering"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Write a plain-text cover letter",
	Long:  "Writes a cover letter from a draft's header and trade plus the target company and role. Banned terms are removed from every field that reaches the letter.",
	RunE:  runCoverLetter,
}

var (
	coverDraft     string
	coverCompany   string
	coverLocation  string
	coverRole      string
	coverTrade     string
	coverStrengths string
	coverType      string
	coverDate      string
	coverOutput    string
)

func init() {
	f := coverLetterCmd.Flags()
	f.StringVarP(&coverDraft, "draft", "d", "", "Draft JSON supplying the header, trade and application type")
	f.StringVar(&coverCompany, "company", "", "Company applied to")
	f.StringVar(&coverLocation, "location", "", "Company location")
	f.StringVar(&coverRole, "role", "", "Role applied for")
	f.StringVar(&coverTrade, "trade", "", "Trade (overrides the draft)")
	f.StringVar(&coverStrengths, "strengths", "", "Strengths, comma or newline separated")
	f.StringVar(&coverType, "type", "", "Application type: apprenticeship or job (overrides the draft)")
	f.StringVar(&coverDate, "date", "", "Letter date as YYYY-MM-DD (default: today)")
	f.StringVarP(&coverOutput, "out", "o", "", "Output path (default: stdout)")

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, _ []string) error {
	in := rendering.CoverLetterInput{
		Company:   coverCompany,
		Location:  coverLocation,
		Role:      coverRole,
		Trade:     coverTrade,
		Strengths: coverStrengths,
	}

	if coverDraft != "" {
		draft, err := readDraft(coverDraft)
		if err != nil {
			return err
		}
		h := draft.Header
		in.Name, in.City, in.State, in.Phone, in.Email = h.Name, h.City, h.State, h.Phone, h.Email
		in.ApplicationType = draft.ApplicationType
		if in.Trade == "" {
			in.Trade = draft.Trade
		}
	}
	if coverType != "" {
		in.ApplicationType = types.ParseApplicationType(coverType)
	}
	if coverDate != "" {
		d, err := time.Parse("2006-01-02", coverDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		in.Date = d
	}

	letter, err := rendering.BuildCoverLetter(in, rewriting.DefaultNeutralFilter())
	if err != nil {
		return err
	}
	return writeOutput(cmd, coverOutput, []byte(letter))
}
