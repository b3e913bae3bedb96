package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mandy1eigh007/resume-workshop-app/internal/ingestion"
	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>...",
	Short: "Extract clean text from uploaded documents",
	Long: `Extracts clean text from PDF, DOCX, HTML or text files. With --out each file is
written as <name>.cleaned.txt plus <name>.meta.json. With --resume the text is read
as a pasted resume and its header, certifications and education are printed as JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

var (
	extractOutDir string
	extractResume bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractOutDir, "out", "o", "", "Output directory")
	extractCmd.Flags().BoolVar(&extractResume, "resume", false, "Parse the text as a pasted resume")

	rootCmd.AddCommand(extractCmd)
}

type parsedResume struct {
	File           string                 `json:"file"`
	Header         types.Header           `json:"header"`
	Certifications []normalize.CertResult `json:"certifications"`
	Education      []types.Education      `json:"education"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	docs, err := ingestion.ExtractAll(ctx, args)
	if err != nil {
		return err
	}

	var (
		failed  int
		resumes []parsedResume
		certs   *normalize.CertNormalizer
	)
	if extractResume {
		certs = loadRegistry(ctx).CertNormalizer()
	}
	out := cmd.OutOrStdout()
	for _, d := range docs {
		if d.Err != nil {
			failed++
			logger.Warn("extraction failed", zap.String("file", d.Path), zap.Error(d.Err))
			continue
		}

		switch {
		case extractResume:
			education := ingestion.ParseEducation(d.Text)
			if education == nil {
				education = []types.Education{}
			}
			resumes = append(resumes, parsedResume{
				File:           d.Path,
				Header:         ingestion.ParseHeader(d.Text),
				Certifications: certs.NormalizeAll(ingestion.ParseCerts(d.Text)),
				Education:      education,
			})
		case extractOutDir != "":
			if err := ingestion.WriteOutput(extractOutDir, d.Text, d.Meta); err != nil {
				return err
			}
			printf(out, "%s -> %s (%d chars)\n", d.Path, extractOutDir, d.Meta.Chars)
		default:
			printf(out, "==> %s <==\n%s\n\n", d.Path, d.Text)
		}
	}

	if extractResume {
		if err := writeJSON(cmd, "", resumes); err != nil {
			return err
		}
	}
	if failed == len(docs) {
		return fmt.Errorf("no file could be extracted")
	}
	return nil
}
