package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/podium/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "podium",
	Short: "Status report deck generator",
	Long: `podium turns project status files into presentation-ready report decks.
It reads milestone and risk data from YAML or XML status files, computes
schedule and risk metrics (completion rate, SPI, milestone health, risk
score), and assembles the deck content a presentation layer consumes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context so commands
// stop when the process receives an interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("format", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
}

func configureLogging(cmd *cobra.Command) {
	levelStr, _ := cmd.Flags().GetString("log-level")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := log.DefaultConfig()
	cfg.Level = log.ParseLevel(levelStr)
	cfg.Format = log.FormatText
	cfg.Output = log.OutputStderr()
	if verbose {
		cfg.Level = log.LevelDebug
	}
	log.SetDefaultLogger(log.New(cfg))
}
