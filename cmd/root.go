package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logbook",
	Short: "daily journal management tool",
	Example: `logbook save -u <user-id> -d 2025-09-16 -s MORNING -m happy -c <summary>
logbook show -u <user-id> -d 2025-09-16
logbook history -u <user-id> --from 2025-09-10 --to 2025-09-16
logbook graph -u <user-id>
logbook person add -u <user-id> -n <full-name>
logbook person list -u <user-id>`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}

func checkMissingFlags(cmd *cobra.Command, required []string) bool {
	missing := make([]string, 0)
	for _, name := range required {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}

	if len(missing) > 0 {
		for _, name := range missing {
			color.Red("missing: %s", name)
		}
		return true
	}

	return false
}
