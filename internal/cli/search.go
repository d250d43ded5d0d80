// internal/cli/search.go
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/law-makers/locator/internal/locator"
	"github.com/law-makers/locator/internal/ui"
	"github.com/law-makers/locator/internal/utils/output"
	"github.com/law-makers/locator/pkg/models"
)

const (
	defaultCSVOut    = "results.csv"
	defaultJSONOut   = "results.json"
	defaultManualOut = "manual_checklist.md"
)

var (
	firstName  string
	lastName   string
	outPath    string
	manualPath string
	format     string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the offender registry for a name",
	Long: `Searches the North Carolina offender registry for the given name, enriches
each match with date of birth and custody status from its detail page, and
writes the deduplicated records together with a checklist of sources to
search by hand.

A registry whose robots.txt disallows the search produces an empty result
file, not an error.`,
	Example: `  # Search and write results.csv and manual_checklist.md
  locator search --first John --last Doe

  # Write JSON instead of CSV
  locator search --first John --last Doe --format json --out doe.json

  # Slow down further and log every request
  locator search --first John --last Doe --delay 5s -v`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&firstName, "first", "", "First name to search for (required)")
	searchCmd.Flags().StringVar(&lastName, "last", "", "Last name to search for (required)")
	searchCmd.Flags().StringVarP(&outPath, "out", "o", defaultCSVOut, "File to write the records to")
	searchCmd.Flags().StringVar(&manualPath, "manual", defaultManualOut, "File to write the manual checklist to")
	searchCmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv or json")
	_ = searchCmd.MarkFlagRequired("first")
	_ = searchCmd.MarkFlagRequired("last")
}

func runSearch(cmd *cobra.Command, args []string) error {
	q, err := newQuery(firstName, lastName)
	if err != nil {
		return err
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format != "csv" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be csv or json)", format)
	}
	if format == "json" && !cmd.Flags().Changed("out") {
		outPath = defaultJSONOut
	}

	appCtx := GetAppFromCmd(cmd)
	if appCtx == nil {
		return fmt.Errorf("application not initialized")
	}

	ctx := commandContext(cmd)

	var opts []locator.Option
	var bar *progressbar.ProgressBar
	if appCtx.Config.Progress {
		bar = newProgressBar(cmd.ErrOrStderr())
		opts = append(opts, locator.WithProgress(func(done, total int) {
			bar.ChangeMax(total)
			_ = bar.Set(done)
		}))
	}

	report, err := appCtx.NewLocator(opts...).Run(ctx, q)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !report.SearchAllowed {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Info("robots.txt disallows automated search of "+report.Source+"; writing empty results"))
	} else if !report.DetailsAllowed {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Info("robots.txt disallows detail pages; records were not enriched"))
	}

	if err := writeRecords(report.Records, outPath, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	if err := output.SaveChecklist(manualPath, q.FirstName, q.LastName); err != nil {
		return fmt.Errorf("failed to write %s: %w", manualPath, err)
	}

	log.Info().
		Str("out", outPath).
		Str("manual", manualPath).
		Int("records", len(report.Records)).
		Int("duplicates", report.Duplicates).
		Msg("Results written")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[ok] wrote %s with %d rows\n", outPath, len(report.Records))
	fmt.Fprintf(out, "[ok] wrote %s with next steps\n", manualPath)
	return nil
}

// newQuery trims first and last and rejects blank names
func newQuery(first, last string) (models.Query, error) {
	q := models.Query{
		FirstName: strings.TrimSpace(first),
		LastName:  strings.TrimSpace(last),
	}
	if q.FirstName == "" || q.LastName == "" {
		return q, fmt.Errorf("both --first and --last must be non-empty")
	}
	return q, nil
}

func writeRecords(records []models.Record, path, format string) error {
	if format == "json" {
		return output.SaveJSON(records, path)
	}
	return output.SaveCSV(records, path)
}

func newProgressBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Fetching detail pages"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
