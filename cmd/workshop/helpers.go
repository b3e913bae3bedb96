package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mandy1eigh007/resume-workshop-app/internal/content"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rendering"
	"github.com/mandy1eigh007/resume-workshop-app/internal/rewriting"
	"github.com/mandy1eigh007/resume-workshop-app/internal/types"
)

func newLoader() *content.Loader {
	return content.NewLoader(cfg.ContentSource(),
		content.WithLogger(logger),
		content.WithLimits(cfg.Limits),
	)
}

// loadRegistry loads the library once. An unreadable library yields an empty
// registry, so queries still answer with empty results.
func loadRegistry(ctx context.Context) *content.Registry {
	reg := newLoader().Load(ctx)
	logger.Debug("registry ready", zap.Stringer("state", reg.State()), zap.String("source", reg.Source()))
	return reg
}

func renderDeps(reg *content.Registry) rendering.Deps {
	return rendering.Deps{
		Filter:     rewriting.DefaultNeutralFilter(),
		Certs:      reg.CertNormalizer(),
		Skills:     reg.SkillLabeler(),
		Engine:     reg.Engine(),
		Translator: reg.Translator(),
		Limits:     cfg.Limits,
	}
}

// readDraft reads a draft JSON file, assigning an ID when it has none.
func readDraft(path string) (*types.ResumeDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}
	var draft types.ResumeDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft JSON: %w", err)
	}
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	return &draft, nil
}

// readInput returns the joined args, or the text of file when set.
func readInput(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("provide text as arguments or with --file")
	}
	return strings.Join(args, " "), nil
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(cmd, path, append(b, '\n'))
}

func printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
