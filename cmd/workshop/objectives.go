package main

import (
	"github.com/spf13/cobra"

	"github.com/mandy1eigh007/resume-workshop-app/internal/observability"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

var objectivesCmd = &cobra.Command{
	Use:   "objectives",
	Short: "List objective starters for a trade",
	Long:  "Prints the objective starters for a trade and application type, passed through the neutral-language filter. An unknown trade prints an empty list.",
	RunE:  runObjectives,
}

var (
	objectivesTrade string
	objectivesType  string
	objectivesJSON  bool
)

func init() {
	objectivesCmd.Flags().StringVarP(&objectivesTrade, "trade", "t", "", "Trade name (required)")
	objectivesCmd.Flags().StringVar(&objectivesType, "type", string(types.ApplicationApprenticeship), "Application type: apprenticeship or job")
	objectivesCmd.Flags().BoolVar(&objectivesJSON, "json", false, "Print as JSON")

	if err := objectivesCmd.MarkFlagRequired("trade"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(objectivesCmd)
}

func runObjectives(cmd *cobra.Command, _ []string) error {
	reg := loadRegistry(cmd.Context())
	appType := types.ParseApplicationType(objectivesType)
	filter := rewriting.DefaultNeutralFilter()

	objectives := []string{}
	if found, ok := reg.ObjectivesForTrade(objectivesTrade); ok {
		for _, o := range found.ForApplication(appType) {
			objectives = append(objectives, filter.Filter(o))
		}
	}

	if objectivesJSON {
		return writeJSON(cmd, "", objectives)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintObjectives(objectivesTrade, appType, objectives)
	return nil
}
