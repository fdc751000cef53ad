package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/podium/internal/metrics"
	"github.com/felixgeelhaar/podium/internal/status"
	"github.com/felixgeelhaar/podium/internal/ux"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Compute schedule metrics from a status file",
	Long: `Load a status file and print the program-level schedule metrics:
completion rate, Schedule Performance Index (SPI), milestone health
buckets, and the four-week SPI trend.

Examples:
  # Human-readable metrics table
  podium metrics --input status.yaml

  # JSON for scripting
  podium metrics --input status.yaml --format json
`,
	RunE: runMetrics,
}

var metricsInput string

func init() {
	metricsCmd.Flags().StringVarP(&metricsInput, "input", "i", "", "path to the status file (required)")
	_ = metricsCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	file, err := status.Load(metricsInput)
	if err != nil {
		return ux.FormatError(err, "loading status file")
	}

	program := metrics.ComputeProgramMetrics(file.Projects, time.Now())

	if cmdCtx.Format == "json" || cmdCtx.Format == "yaml" {
		formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{
			NoColor: cmdCtx.NoColor,
		})
		if err != nil {
			return err
		}
		return formatter.Format(program)
	}

	printProgramMetrics(file.Program, program)
	return nil
}

func printProgramMetrics(programName string, m metrics.ProgramMetrics) {
	if programName == "" {
		programName = "Status Report"
	}
	fmt.Println(ux.RenderTitle(programName))
	fmt.Println()

	fmt.Println(ux.RenderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Projects", fmt.Sprintf("%d", m.TotalProjects)},
			{"Milestones", fmt.Sprintf("%d", m.TotalMilestones)},
			{"Completion", fmt.Sprintf("%.1f%%", m.CompletionRate)},
			{"SPI", ux.RenderSPI(m.SPI)},
		},
	))

	fmt.Println("Milestone Health:")
	fmt.Printf("  Completed:   %d\n", m.Health.Completed)
	fmt.Printf("  In Progress: %d\n", m.Health.InProgress)
	fmt.Printf("  Not Started: %d\n", m.Health.NotStarted)
	fmt.Printf("  Late:        %d\n", m.Health.Late)
	fmt.Println()

	fmt.Println("Schedule Trend (SPI):")
	for i, label := range m.Trend.Labels {
		fmt.Printf("  %s: %.1f\n", label, m.Trend.Values[i])
	}
}
