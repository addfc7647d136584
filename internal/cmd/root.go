package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "voicegen",
	Short: "Training corpus generator for the CosmoOS voice dispatcher",
	Long: `voicegen generates natural-language command examples paired with
canonical function calls, formatted for fine-tuning the on-device
command-dispatch model.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = false
}
