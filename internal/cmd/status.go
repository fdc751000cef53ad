package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/podium/internal/status"
	"github.com/felixgeelhaar/podium/internal/ux"
)

var statusCmd = &cobra.Command{
	Use:   "status <file>",
	Short: "Inspect a status file",
	Long: `Load a status file, verify it parses, and print a summary of what it
contains: program name, projects, milestones, risks and the content
fingerprint used for change detection.

Examples:
  podium status status.yaml
  podium status status.xml --format json
`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

// statusSummary is the inspection result for a loaded status file.
type statusSummary struct {
	Path        string `json:"path" yaml:"path"`
	Program     string `json:"program" yaml:"program"`
	Projects    int    `json:"projects" yaml:"projects"`
	Milestones  int    `json:"milestones" yaml:"milestones"`
	Risks       int    `json:"risks" yaml:"risks"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return fmt.Errorf("failed to create command context: %w", err)
	}

	path := args[0]
	file, err := status.Load(path)
	if err != nil {
		return ux.FormatError(err, "loading status file")
	}

	milestones := 0
	for _, p := range file.Projects {
		milestones += len(p.Milestones)
	}

	summary := statusSummary{
		Path:        path,
		Program:     file.Program,
		Projects:    len(file.Projects),
		Milestones:  milestones,
		Risks:       len(file.Risks),
		Fingerprint: file.Fingerprint,
	}

	if cmdCtx.Format == "json" || cmdCtx.Format == "yaml" {
		formatter, err := ux.NewFormatter(cmdCtx.Format, &ux.FormatterOptions{
			NoColor: cmdCtx.NoColor,
		})
		if err != nil {
			return err
		}
		return formatter.Format(summary)
	}

	fmt.Printf("✓ %s parses cleanly\n\n", path)
	fmt.Printf("  Program:     %s\n", summary.Program)
	fmt.Printf("  Projects:    %d\n", summary.Projects)
	fmt.Printf("  Milestones:  %d\n", summary.Milestones)
	fmt.Printf("  Risks:       %d\n", summary.Risks)
	fmt.Printf("  Fingerprint: %s\n", summary.Fingerprint)
	return nil
}
