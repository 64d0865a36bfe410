package cmd

import (
	"dirdiff/internal/configuration"
	"dirdiff/internal/logging"
	"os"

	"github.com/spf13/cobra"
)

var force bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate an example configuration file in the current directory",
	Run: func(cmd *cobra.Command, args []string) {
		target := configuration.DefaultConfigFileName
		if _, err := os.Stat(target); err == nil && !force {
			logging.FatalWithoutStacktrace("'%s' already exists, use --force to overwrite it", target)
			return
		}
		err := os.WriteFile(target, []byte(configuration.ExampleConfig), 0644)
		if err != nil {
			logging.FatalWithoutStacktrace("Unable to write '%s': %s", target, err.Error())
			return
		}
		logging.Success("'%s' created. Adjust the paths and then run: dirdiff", target)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	rootCmd.AddCommand(initCmd)
}
