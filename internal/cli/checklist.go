// internal/cli/checklist.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/law-makers/locator/internal/utils/output"
)

// checklistOptions holds the flags of the checklist command
type checklistOptions struct {
	first  string
	last   string
	manual string
}

var checklistOpts checklistOptions

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Write the manual search checklist without contacting any registry",
	Example: `  locator checklist --first John --last Doe
  locator checklist --first John --last Doe --manual doe.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChecklist(cmd, checklistOpts)
	},
}

func init() {
	rootCmd.AddCommand(checklistCmd)

	checklistCmd.Flags().StringVar(&checklistOpts.first, "first", "", "First name (required)")
	checklistCmd.Flags().StringVar(&checklistOpts.last, "last", "", "Last name (required)")
	checklistCmd.Flags().StringVar(&checklistOpts.manual, "manual", defaultManualOut, "File to write the checklist to")
	_ = checklistCmd.MarkFlagRequired("first")
	_ = checklistCmd.MarkFlagRequired("last")
}

func runChecklist(cmd *cobra.Command, opts checklistOptions) error {
	q, err := newQuery(opts.first, opts.last)
	if err != nil {
		return err
	}
	if err := output.SaveChecklist(opts.manual, q.FirstName, q.LastName); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.manual, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[ok] wrote %s with next steps\n", opts.manual)
	return nil
}
