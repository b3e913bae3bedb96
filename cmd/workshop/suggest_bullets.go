package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mandy1eigh007/resume-workshop-app/internal/ingestion"
	"github.com/mandy1eigh007/resume-workshop-app/internal/observability"
)

var suggestBulletsCmd = &cobra.Command{
	Use:   "suggest-bullets <job-description>...",
	Short: "Suggest duty bullets and skills from job descriptions",
	Long: `Extracts text from uploaded job descriptions (PDF, DOCX, HTML or text) and suggests
trade duty bullets and skills. A file that cannot be read is skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggestBullets,
}

var (
	suggestTrade string
	suggestJSON  bool
)

func init() {
	suggestBulletsCmd.Flags().StringVarP(&suggestTrade, "trade", "t", "", "Trade to suggest for (default: discovered from the text)")
	suggestBulletsCmd.Flags().BoolVar(&suggestJSON, "json", false, "Print as JSON")

	rootCmd.AddCommand(suggestBulletsCmd)
}

type suggestion struct {
	Trade   string   `json:"trade"`
	Bullets []string `json:"bullets"`
	Skills  []string `json:"skills"`
	Trades  []string `json:"discovered_trades"`
	Skipped []string `json:"skipped,omitempty"`
}

func runSuggestBullets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	docs, err := ingestion.ExtractAll(ctx, args)
	if err != nil {
		return err
	}

	var (
		texts   []string
		skipped []string
	)
	for _, d := range docs {
		if d.Err != nil {
			logger.Warn("job description skipped", zap.String("file", d.Path), zap.Error(d.Err))
			skipped = append(skipped, d.Path)
			continue
		}
		texts = append(texts, d.Text)
	}
	if len(texts) == 0 {
		return fmt.Errorf("no readable job descriptions")
	}
	text := strings.Join(texts, "\n\n")

	reg := loadRegistry(ctx)
	engine := reg.Engine()

	s := suggestion{
		Trade:   suggestTrade,
		Trades:  engine.DiscoverTrades(text, nil),
		Skills:  engine.SuggestFromText(text),
		Skipped: skipped,
	}
	if s.Trade == "" && len(s.Trades) > 0 {
		s.Trade = s.Trades[0]
	}
	s.Bullets = engine.SuggestBulletsFromText(text, s.Trade)

	if suggestJSON {
		s.Bullets = nonNil(s.Bullets)
		s.Skills = nonNil(s.Skills)
		s.Trades = nonNil(s.Trades)
		return writeJSON(cmd, "", s)
	}

	p := observability.NewPrinter(cmd.OutOrStdout())
	trade := s.Trade
	if trade == "" {
		trade = "General"
	}
	p.PrintBulletSuggestions(trade, s.Bullets)
	p.PrintSkills("suggested skills", s.Skills)
	if len(s.Trades) > 0 {
		printf(cmd.OutOrStdout(), "Trades mentioned: %s\n", strings.Join(s.Trades, ", "))
	}
	return nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
