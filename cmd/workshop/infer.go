package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandy1eigh007/resume-workshop-app/internal/ingestion"
	"github.com/mandy1eigh007/resume-workshop-app/internal/observability"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

var inferCmd = &cobra.Command{
	Use:   "infer [bullet...]",
	Short: "Infer transferable skills from duty bullets or free text",
	Long: `Infers skills from the keyword table. Each argument is one duty bullet; --file reads
bullets one per line, or any document (PDF, DOCX, HTML, text) as free text.

With --job, the job description is scanned too and the result is a skill set:
skills suggested by the posting and skills inferred from the bullets.`,
	RunE: runInfer,
}

var (
	inferFile string
	inferJob  string
	inferJSON bool
)

func init() {
	inferCmd.Flags().StringVarP(&inferFile, "file", "f", "", "Bullets or document to infer from")
	inferCmd.Flags().StringVarP(&inferJob, "job", "j", "", "Job description to suggest skills from")
	inferCmd.Flags().BoolVar(&inferJSON, "json", false, "Print as JSON")

	rootCmd.AddCommand(inferCmd)
}

func runInfer(cmd *cobra.Command, args []string) error {
	reg := loadRegistry(cmd.Context())
	engine := reg.Engine()

	bullets := args
	if inferFile != "" {
		text, _, err := ingestion.IngestFile(inferFile)
		if err != nil {
			return err
		}
		bullets = strings.Split(text, "\n")
	}

	if inferJob != "" {
		jobText, _, err := ingestion.IngestFile(inferJob)
		if err != nil {
			return err
		}
		var set types.SkillSet
		engine.Populate(&set, jobText, bullets)
		if inferJSON {
			return writeJSON(cmd, "", set)
		}
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintSkills("suggested skills", set.Suggested)
		printer.PrintSkills("inferred skills", set.Inferred)
		return nil
	}

	found := engine.InferFromBullets(bullets)

	if inferJSON {
		if found == nil {
			found = []string{}
		}
		return writeJSON(cmd, "", found)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintSkills("inferred skills", found)
	return nil
}
