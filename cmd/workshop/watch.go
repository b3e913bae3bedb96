package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mandy1eigh007/resume-workshop-app/internal/config"
	"github.com/mandy1eigh007/resume-workshop-app/internal/content"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the content library whenever its files change",
	Long:  "Loads the content directory and reloads it after each change, logging the new counts, until interrupted.",
	RunE:  runWatch,
}

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Quiet period before a reload")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if cfg.ContentDir == "" {
		return fmt.Errorf("watch needs --content-dir or %s; the embedded library never changes", config.EnvContentDir)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := newLoader()
	reg := loader.Load(ctx)
	out := cmd.OutOrStdout()
	printf(out, "watching %s (%s)\n", cfg.ContentDir, reg.State())

	w, err := content.NewWatcher(cfg.ContentDir, loader,
		content.WithDebounce(watchDebounce),
		content.WithWatcherLogger(logger),
		content.OnReload(func(r *content.Registry) {
			s := r.Stats()
			printf(out, "reloaded: %s, %d trades, %d roles, %d warnings\n", r.State(), s.Trades, s.Roles, len(r.Warnings()))
		}),
	)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	<-ctx.Done()
	logger.Info("watch stopped", zap.Int64("loads", loader.Loads()), zap.Any("stats", w.Stats()))
	return nil
}
