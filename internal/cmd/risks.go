package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/podium/internal/metrics"
	"github.com/felixgeelhaar/podium/internal/status"
	"github.com/felixgeelhaar/podium/internal/ux"
)

var risksCmd = &cobra.Command{
	Use:   "risks",
	Short: "Compute risk metrics from a status file",
	Long: `Load a status file and print the aggregate risk picture: the weighted
risk score (0-100) and the distribution of risks by severity.

Examples:
  # Human-readable risk summary
  podium risks --input status.yaml

  # YAML output
  podium risks --input status.yaml --format yaml
`,
	RunE: runRisks,
}

var risksInput string

func init() {
	risksCmd.Flags().StringVarP(&risksInput, "input", "i", "", "path to the status file (required)")
	_ = risksCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(risksCmd)
}

func runRisks(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	file, err := status.Load(risksInput)
	if err != nil {
		return ux.FormatError(err, "loading status file")
	}

	risk := metrics.ComputeRiskMetrics(file.Risks)

	if cmdCtx.Format == "json" || cmdCtx.Format == "yaml" {
		formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{
			NoColor: cmdCtx.NoColor,
		})
		if err != nil {
			return err
		}
		return formatter.Format(risk)
	}

	fmt.Println(ux.RenderTitle("Risk Summary"))
	fmt.Println()
	fmt.Printf("Risk Score: %s / 100\n\n", ux.RenderRiskScore(risk.Score))

	fmt.Println(ux.RenderTable(
		[]string{"Severity", "Count"},
		[][]string{
			{"Critical", fmt.Sprintf("%d", risk.Distribution.Critical)},
			{"High", fmt.Sprintf("%d", risk.Distribution.High)},
			{"Medium", fmt.Sprintf("%d", risk.Distribution.Medium)},
			{"Low", fmt.Sprintf("%d", risk.Distribution.Low)},
		},
	))

	fmt.Printf("Open: %d  Closed: %d  Total: %d\n", risk.OpenRisks, risk.ClosedRisks, risk.TotalRisks)
	return nil
}
