package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
)

var filterCmd = &cobra.Command{
	Use:   "filter [text...]",
	Short: "Rewrite text into neutral language",
	Long:  "Applies the neutral-language filter to text from the arguments or --file and reports the banned terms it found.",
	RunE:  runFilter,
}

var (
	filterFile  string
	filterStrip bool
)

func init() {
	filterCmd.Flags().StringVarP(&filterFile, "file", "f", "", "Read text from a file")
	filterCmd.Flags().BoolVar(&filterStrip, "strip", false, "Only remove banned terms, without replacements")

	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	text, err := readInput(args, filterFile)
	if err != nil {
		return err
	}

	f := rewriting.DefaultNeutralFilter()
	out := f.Filter(text)
	if filterStrip {
		out = f.Strip(text)
	}
	printf(cmd.OutOrStdout(), "%s\n", out)

	if found := f.FindBannedTerms(text); len(found) > 0 {
		printf(cmd.ErrOrStderr(), "removed: %s\n", strings.Join(found, ", "))
	}
	return nil
}
