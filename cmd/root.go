package cmd

import (
	"dirdiff/cmd/global"
	"dirdiff/internal"
	"dirdiff/internal/configuration"
	"dirdiff/internal/logging"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dirdiff [config file]",
	Short: "Compare two directory trees and report added, deleted and changed files.",
	Long:  ``,
	Args:  cobra.MaximumNArgs(1),
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			// a positional argument takes precedence over --config
			configuration.InitConfig(args[0])
		}

		configPath := configuration.DetectAndReadConfigFile()
		if configPath == "" {
			logging.FatalWithoutStacktrace("No configuration file found. Create one with: dirdiff init")
			return
		}
		logging.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		if !configuration.CurrentConfig.Output.Color {
			pterm.DisableColor()
		}
		err := configuration.Validate(configPath)
		if err != nil {
			logging.FatalWithoutStacktrace("Config Error: %s", err.Error())
			return
		}

		internal.RunApplication()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is ./dirdiff.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")
	rootCmd.PersistentFlags().BoolVarP(&global.Watch, "watch", "w", false, "Re-run the comparison whenever one of the trees changes")
}

func setupUi() {
	logging.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
		setupUi()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
