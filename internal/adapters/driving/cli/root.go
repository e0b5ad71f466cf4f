// Package cli wires the Docfolio commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/docfolio/docfolio/internal/logger"
)

var (
	// cfgPath is the --config flag.
	cfgPath string
	// verboseFlag is the --verbose flag.
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "docfolio",
	Short: "Publish a folder of documents as a browsable site",
	Long: `Docfolio publishes a curated set of documents (a Google Drive
folder or a JSON manifest of links) as a browsable menu with
per-document embed pages and QR codes.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config.toml")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
