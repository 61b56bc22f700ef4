// internal/cli/validate.go
package benchsum

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/mwiater/benchsum/internal/ghz"
	"github.com/spf13/cobra"
)

// validateCmd checks result files against the nominal ghz report schema.
// Drifted files are reported, not failed: summarization stays tolerant
// of historical shapes either way.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check result files against the nominal ghz report schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		var paths []string
		for _, glob := range []string{cfg.AckGlob, cfg.E2EGlob} {
			matches, err := filepath.Glob(filepath.Join(cfg.ResultsDir, glob))
			if err != nil {
				return fmt.Errorf("bad results glob %q: %w", glob, err)
			}
			paths = append(paths, matches...)
		}
		sort.Strings(paths)

		if len(paths) == 0 {
			cmd.Printf("No result files found in %s\n", cfg.ResultsDir)
			return nil
		}

		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("unable to read result file %s: %w", path, err)
			}

			issues, err := ghz.ValidateReport(data)
			if err != nil {
				return fmt.Errorf("unable to validate %s: %w", path, err)
			}

			name := filepath.Base(path)
			if len(issues) == 0 {
				cmd.Printf("%s: ok\n", name)
				continue
			}
			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "%s: %d issue(s)\n", name, len(issues))
			for _, issue := range issues {
				cmd.Printf("  - %s\n", issue)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
