package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mandy1eigh007/resume-workshop-app/internal/observability"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/schemas"
	"github.com/mandy1eigh007/resume-workshop-app/internal/validation"
	bundled "github.com/mandy1eigh007/resume-workshop-app/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a resume draft against the one-page constraints",
	Long: `Validates a draft JSON file against the layout limits, required fields, banned
terms and the certification table, and writes the violations as JSON. Limits are
advisory: only error-severity findings fail the command.`,
	RunE: runValidate,
}

var (
	validateDraft  string
	validateOutput string
)

func init() {
	validateCmd.Flags().StringVarP(&validateDraft, "draft", "d", "", "Path to draft JSON file (required)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to output violations JSON file (default: stdout)")

	if err := validateCmd.MarkFlagRequired("draft"); err != nil {
		panic(fmt.Sprintf("failed to mark draft flag as required: %v", err))
	}
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	draft, err := readDraft(validateDraft)
	if err != nil {
		return err
	}
	reg := loadRegistry(cmd.Context())

	violations := validation.Validate(draft, validation.Options{
		Limits: cfg.Limits,
		Filter: rewriting.DefaultNeutralFilter(),
		Certs:  reg.CertNormalizer(),
	})

	// Schema check is non-fatal.
	if err := schemas.ValidateValue(bundled.Violations, violations); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			logger.Warn("violations do not match schema", zap.Error(err))
		} else {
			logger.Warn("could not check violations against schema", zap.Error(err))
		}
	}

	if err := writeJSON(cmd, validateOutput, violations); err != nil {
		return err
	}
	if cfg.Verbose || validateOutput != "" {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintViolations(violations)
	}

	if violations.HasErrors() {
		return fmt.Errorf("validation found %d violation(s)", len(violations.Violations))
	}
	return nil
}
