// internal/cli/show.go
package benchsum

import (
	"github.com/spf13/cobra"
)

// showCmd groups read-only inspection subcommands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show application settings",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
