// internal/cli/summary.go
package benchsum

import (
	"os"

	"github.com/mwiater/benchsum/internal/report"
	"github.com/spf13/cobra"
)

// summaryCmd renders the ack-only and end-to-end summary tables from the
// result files in the configured results directory.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize ghz result files into per-mode tables",
	Long: `Discover ack_*.json and e2e_*.json result files in the results
directory, normalize each one, and print one summary table per test mode.
Connection count and target QPS come from the filenames; a file that fails
to parse is reported inline without aborting the batch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.Run(os.Stdout, GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
