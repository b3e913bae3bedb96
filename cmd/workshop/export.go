package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandy1eigh007/resume-workshop-app/internal/observability"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rendering"
	"github.com/mandy1eigh007/resume-workshop-app/internal/schemas"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build the template variables for a resume draft",
	Long: `Turns a draft JSON file into the flat variable set a resume template consumes,
checks it against the template-variables schema, and optionally renders a
plain-text preview.`,
	RunE: runExport,
}

var (
	exportDraft    string
	exportOutput   string
	exportPreview  string
	exportTemplate string
)

func init() {
	exportCmd.Flags().StringVarP(&exportDraft, "draft", "d", "", "Path to draft JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to output template variables JSON (default: stdout)")
	exportCmd.Flags().StringVar(&exportPreview, "preview", "", "Write a plain-text preview to this path")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Text template for the preview (default: built-in)")

	if err := exportCmd.MarkFlagRequired("draft"); err != nil {
		panic(fmt.Sprintf("failed to mark draft flag as required: %v", err))
	}
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	draft, err := readDraft(exportDraft)
	if err != nil {
		return err
	}
	reg := loadRegistry(ctx)

	vars, violations := rendering.BuildTemplateVars(draft, renderDeps(reg))
	if err := schemas.ValidateTemplateVars(vars); err != nil {
		return fmt.Errorf("template variables failed schema check: %w", err)
	}
	if err := writeJSON(cmd, exportOutput, vars); err != nil {
		return err
	}

	if exportPreview != "" {
		gen, err := previewGenerator()
		if err != nil {
			return err
		}
		text, err := gen.Generate(ctx, vars)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, exportPreview, text); err != nil {
			return err
		}
	}

	if len(violations) > 0 {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintViolations(&types.Violations{Violations: violations})
	}
	return nil
}

func previewGenerator() (rendering.DocumentGenerator, error) {
	path := exportTemplate
	if path == "" {
		path = cfg.Template
	}
	var (
		gen *rendering.TextGenerator
		err error
	)
	if path != "" {
		gen, err = rendering.LoadTextGenerator(path)
	} else {
		gen, err = rendering.NewTextGenerator()
	}
	if err != nil {
		return nil, err
	}
	return gen, nil
}
