// internal/cli/show_config.go
package benchsum

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd prints the merged configuration so flag/config/default
// precedence can be verified at a glance.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := viper.ConfigFileUsed()
		if file == "" {
			fmt.Println("No config file loaded (using defaults).")
		} else {
			fmt.Printf("Config file: %s\n\n", file)
		}

		cfg := GetConfig()
		fmt.Println("Current configuration:")
		fmt.Printf("  Results Dir: %s\n", cfg.ResultsDir)
		fmt.Printf("  ACK Glob:    %s\n", cfg.AckGlob)
		fmt.Printf("  E2E Glob:    %s\n", cfg.E2EGlob)
		fmt.Printf("  Log File:    %s\n", cfg.LogFile)
		fmt.Printf("  Debug:       %v\n", DebugEnabled())
		fmt.Printf("  JSON Mode:   %v\n", JSONModeEnabled())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
