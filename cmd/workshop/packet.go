package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mandy1eigh007/resume-workshop-app/internal/ingestion"
	"github.com/mandy1eigh007/resume-workshop-app/internal/observability"
	"github.com/mandy1eigh007/resume-workshop-app/internal/packet"
	"github.com/mandy1eigh007/resume-workshop-app/internal/schemas"
	"github.com/mandy1eigh007/resume-workshop-app/internal/skills"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
	bundled "github.com/mandy1eigh007/resume-workshop-app/schemas"
)

var packetCmd = &cobra.Command{
	Use:   "packet",
	Short: "Assemble an instructor pathway packet",
	Long: `Assembles a pathway packet for one student and trade: objective starters, credential
badges, the artifact tracker and the relevant pathway source documents. Source
documents that cannot be read are skipped.`,
	RunE: runPacket,
}

var (
	packetStudent   string
	packetTrade     string
	packetType      string
	packetArtifacts string
	packetSources   string
	packetOutput    string
	packetJSON      bool
)

func init() {
	f := packetCmd.Flags()
	f.StringVarP(&packetStudent, "student", "s", "", "Student name (required)")
	f.StringVarP(&packetTrade, "trade", "t", "", "Trade (required)")
	f.StringVar(&packetType, "type", string(types.ApplicationApprenticeship), "Application type: apprenticeship or job")
	f.StringVar(&packetArtifacts, "artifacts", "", "JSON file mapping artifact template names to entered field values")
	f.StringVar(&packetSources, "sources", "", "Directory of pathway source documents (default: config sources_dir)")
	f.StringVarP(&packetOutput, "out", "o", "", "Output path (default: stdout)")
	f.BoolVar(&packetJSON, "json", false, "Write the packet as JSON without source text")

	for _, name := range []string{"student", "trade"} {
		if err := packetCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	rootCmd.AddCommand(packetCmd)
}

func runPacket(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	reg := loadRegistry(ctx)

	artifacts := map[string]map[string]string{}
	if packetArtifacts != "" {
		data, err := os.ReadFile(packetArtifacts)
		if err != nil {
			return fmt.Errorf("failed to read artifacts file: %w", err)
		}
		if err := json.Unmarshal(data, &artifacts); err != nil {
			return fmt.Errorf("failed to unmarshal artifacts JSON: %w", err)
		}
	}

	dir := packetSources
	if dir == "" {
		dir = cfg.SourcesDir
	}
	docs, err := readPathwaySources(cmd, dir, reg.Pathways())
	if err != nil {
		return err
	}
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}

	p := packet.Assemble(reg, packet.Request{
		Student:         packetStudent,
		Trade:           packetTrade,
		ApplicationType: types.ParseApplicationType(packetType),
		Artifacts:       artifacts,
		Sources:         names,
	})

	if err := schemas.ValidateValue(bundled.Packet, p); err != nil {
		logger.Warn("packet does not match schema", zap.Error(err))
	}
	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintPacket(p)
	}

	if packetJSON {
		return writeJSON(cmd, packetOutput, p)
	}
	var buf bytes.Buffer
	if err := packet.WriteText(&buf, p, docs); err != nil {
		return fmt.Errorf("failed to write packet: %w", err)
	}
	return writeOutput(cmd, packetOutput, buf.Bytes())
}

// readPathwaySources extracts the documents in dir relevant to the packet trade.
func readPathwaySources(cmd *cobra.Command, dir string, pathways skills.PathwayFiles) ([]packet.SourceDoc, error) {
	if dir == "" {
		return nil, nil
	}
	if _, ok := pathways.Fragments(packetTrade); !ok {
		logger.Warn("no pathway fragments for trade",
			zap.String("trade", packetTrade),
			zap.Strings("known", pathways.TradeNames()))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	selected := make(map[string]bool)
	for _, n := range packet.SelectPathwayFiles(packetTrade, names, pathways) {
		selected[n] = true
	}
	ok, failed, err := ingestion.ReadSources(cmd.Context(), dir, func(name string) bool { return selected[name] })
	if err != nil {
		return nil, err
	}
	for _, d := range failed {
		logger.Warn("pathway source skipped", zap.String("file", d.Path), zap.Error(d.Err))
	}

	docs := make([]packet.SourceDoc, 0, len(ok))
	for _, d := range ok {
		docs = append(docs, packet.SourceDoc{Name: filepath.Base(d.Path), Text: d.Text})
	}
	return docs, nil
}
