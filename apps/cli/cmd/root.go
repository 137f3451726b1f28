package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/testkit-dev/testkit/packages/config"
)

var (
	version   = "dev"
	buildTime = "unknown"

	configFlag  string
	noColorFlag bool

	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "testkit",
	Short: "Test data and CSV tooling for automated tests.",
	Long: `testkit generates test data (card numbers, passwords, emails,
phone numbers, names) and works with CSV fixtures: parse, convert,
validate, and load them into SQLite.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
		if noColorFlag || cfg.GetNoColor() {
			color.NoColor = true
		}
		return nil
	},
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a .testkit.yaml config file")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(csvCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}
