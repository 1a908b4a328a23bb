package main

import (
	"github.com/spf13/cobra"

	"github.com/grimoire-tools/grimoire/internal/api"
	"github.com/grimoire-tools/grimoire/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "Tabletop sourcebook digitization pipeline",
	Long: `Grimoire turns loosely structured tabletop-game text (pasted blocks,
text files, or PDF extraction output) into typed game-content records.

The pipeline includes:
  - Block detection: splitting a raw text stream into candidate entries
  - Classification into spells, items, monsters, feats, and backgrounds
  - Structural statblock decoding into fully populated creature records
  - Export to YAML/JSON for review before import into a game system`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.grimoire/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "grimoire home directory (default: ~/.grimoire)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
