package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cosmoos/voicegen/internal/stats"
)

var statsDir string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report on generated corpus files",
	Long: `Report record counts, envelope health, and per-function distribution
for the train and validation files of a generated corpus.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDir, "dir", "d", "training_data", "Corpus directory to report on")
}

func runStats(cmd *cobra.Command, args []string) error {
	reporter, err := stats.NewReporter()
	if err != nil {
		return err
	}
	defer reporter.Close()

	for _, name := range []string{"train.jsonl", "valid.jsonl"} {
		path := filepath.Join(statsDir, name)
		report, err := reporter.Report(path)
		if err != nil {
			return fmt.Errorf("report %s: %w", path, err)
		}

		fmt.Printf("%s\n", report.Path)
		fmt.Printf("  Records:     %d\n", report.Records)
		fmt.Printf("  Well-formed: %d\n", report.WellFormed)
		fmt.Printf("  Functions:\n")
		for _, fc := range report.FunctionCounts {
			fmt.Printf("    %-30s %d\n", fc.Name, fc.Count)
		}
	}

	return nil
}
