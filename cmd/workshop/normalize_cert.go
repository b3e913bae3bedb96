package main

import (
	"github.com/spf13/cobra"

	"github.com/mandy1eigh007/resume-workshop-app/internal/normalize"
	"github.com/mandy1eigh007/resume-workshop-app/internal/observability"
)

var normalizeCertCmd = &cobra.Command{
	Use:   "normalize-cert [certification...]",
	Short: "Resolve certification names to their canonical form",
	Long:  `Resolves each certification, or comma-separated list of them, against the certification table. For example: workshop normalize-cert "osha 10, flagger card".`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalizeCert,
}

var normalizeCertJSON bool

func init() {
	normalizeCertCmd.Flags().BoolVar(&normalizeCertJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(normalizeCertCmd)
}

func runNormalizeCert(cmd *cobra.Command, args []string) error {
	reg := loadRegistry(cmd.Context())

	var raws []string
	for _, a := range args {
		raws = append(raws, normalize.SplitList(a)...)
	}
	results := reg.CertNormalizer().NormalizeAll(raws)

	if normalizeCertJSON {
		return writeJSON(cmd, "", results)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintCertResults(results)
	return nil
}
