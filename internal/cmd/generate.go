package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	podiumerrors "github.com/felixgeelhaar/podium/internal/errors"
	"github.com/felixgeelhaar/podium/internal/log"
	"github.com/felixgeelhaar/podium/internal/report"
	"github.com/felixgeelhaar/podium/internal/status"
	"github.com/felixgeelhaar/podium/internal/telemetry"
	"github.com/felixgeelhaar/podium/internal/ux"
	"github.com/felixgeelhaar/podium/internal/watch"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a report deck from a status file",
	Long: `Load a project status file (YAML or XML), compute schedule and risk
metrics, and write the assembled deck content manifest.

Examples:
  # Generate a deck manifest from a status file
  podium generate --input status.yaml --output deck.yaml

  # Regenerate automatically while editing the status file
  podium generate --input status.yaml --output deck.yaml --watch
`,
	RunE: runGenerate,
}

var (
	generateInput  string
	generateOutput string
	generateWatch  bool
	generateForce  bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "path to the status file (required)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "deck.yaml", "path for the deck manifest")
	generateCmd.Flags().BoolVar(&generateWatch, "watch", false, "regenerate when the status file changes")
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "overwrite the output file without asking")
	_ = generateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	if !generateForce {
		if _, err := os.Stat(generateOutput); err == nil {
			if !ux.Confirm(fmt.Sprintf("Output file %s exists. Overwrite?", generateOutput), true) {
				fmt.Println("Aborted.")
				return nil
			}
		}
	}

	if err := generateOnce(cmdCtx); err != nil {
		return ux.FormatError(err, "generating deck")
	}

	if !generateWatch {
		return nil
	}

	logger := log.DefaultLogger()
	metrics := telemetry.GetDefault()
	fmt.Printf("Watching %s for changes (Ctrl+C to stop)...\n", generateInput)

	err = watch.Files(cmd.Context(), []string{generateInput}, watch.DefaultDebounce, func() {
		rebuildErr := generateOnce(cmdCtx)
		metrics.WatchRebuilds.WithLabelValues(strconv.FormatBool(rebuildErr == nil)).Inc()
		if rebuildErr != nil {
			logger.WithError(rebuildErr).Error("rebuild failed")
			fmt.Fprintln(os.Stderr, ux.FormatError(rebuildErr, "regenerating deck"))
			return
		}
		logger.Info("deck regenerated", "output", generateOutput)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func generateOnce(cmdCtx *CommandContext) error {
	logger := log.DefaultLogger()
	metrics := telemetry.GetDefault()
	start := time.Now()

	file, err := status.Load(generateInput)
	format := strings.TrimPrefix(filepath.Ext(generateInput), ".")
	metrics.StatusLoads.WithLabelValues(format, strconv.FormatBool(err == nil)).Inc()
	if err != nil {
		var podErr *podiumerrors.PodiumError
		if errors.As(err, &podErr) {
			metrics.StatusLoadErrors.WithLabelValues(string(podErr.Code)).Inc()
		}
		metrics.DeckGenerations.WithLabelValues("false").Inc()
		return err
	}

	totalMilestones := 0
	for _, p := range file.Projects {
		totalMilestones += len(p.Milestones)
	}
	metrics.StatusMilestones.WithLabelValues().Observe(float64(totalMilestones))
	metrics.StatusRisks.WithLabelValues().Observe(float64(len(file.Risks)))

	deck := report.Build(file, generateInput, time.Now())
	if err := report.WriteManifest(deck, generateOutput); err != nil {
		metrics.DeckGenerations.WithLabelValues("false").Inc()
		return err
	}

	metrics.DeckGenerations.WithLabelValues("true").Inc()
	metrics.DeckDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	metrics.DeckSlideCount.WithLabelValues().Observe(float64(len(deck.Slides)))

	logger.Debug("deck generated",
		"deck_id", deck.ID,
		"slides", len(deck.Slides),
		"duration", time.Since(start),
	)

	if !cmdCtx.Quiet {
		fmt.Printf("✓ Generated %s (%d slides, program %q)\n", generateOutput, len(deck.Slides), deck.Program)
	}
	return nil
}
