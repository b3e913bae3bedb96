package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mandy1eigh007/resume-workshop-app/internal/content"
	"github.com/mandy1eigh007/resume-workshop-app/internal/observability"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Load the content library and summarize it",
	Long:  "Loads the content library, reports its load state, counts and parse warnings, and optionally lists trades and roles.",
	RunE:  runContent,
}

var (
	contentJSON  bool
	contentLists bool
)

func init() {
	contentCmd.Flags().BoolVar(&contentJSON, "json", false, "Print counts as JSON")
	contentCmd.Flags().BoolVar(&contentLists, "list", false, "List trades and roles")

	rootCmd.AddCommand(contentCmd)
}

type contentReport struct {
	Source   string        `json:"source"`
	State    string        `json:"state"`
	LoadedAt string        `json:"loaded_at,omitempty"`
	Error    string        `json:"error,omitempty"`
	Stats    content.Stats `json:"stats"`
	Warnings []string      `json:"warnings"`
	Trades   []string      `json:"trades,omitempty"`
	Roles    []string      `json:"roles,omitempty"`
}

func runContent(cmd *cobra.Command, _ []string) error {
	reg := loadRegistry(cmd.Context())

	if contentJSON {
		report := contentReport{
			Source:   reg.Source(),
			State:    reg.State().String(),
			Error:    reg.LoadError(),
			Stats:    reg.Stats(),
			Warnings: []string{},
		}
		if at := reg.LoadedAt(); !at.IsZero() {
			report.LoadedAt = at.UTC().Format(time.RFC3339)
		}
		for _, w := range reg.Warnings() {
			report.Warnings = append(report.Warnings, w.String())
		}
		if contentLists {
			report.Trades = reg.Trades()
			report.Roles = reg.Roles()
		}
		if err := writeJSON(cmd, "", report); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		observability.NewPrinter(out).PrintContentSummary(reg)
		if contentLists {
			printf(out, "\nTrades:\n")
			for _, t := range reg.Trades() {
				printf(out, "  %s\n", t)
			}
			printf(out, "\nRoles:\n")
			for _, r := range reg.Roles() {
				printf(out, "  %s\n", r)
			}
		}
	}

	if msg := reg.LoadError(); msg != "" {
		return fmt.Errorf("content library unavailable: %s", msg)
	}
	return nil
}
