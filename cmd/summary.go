package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/report"
)

// summaryCmd is the cobra command for displaying a high-level shot log overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the shot log",
	Long: `Display aggregate statistics about the loaded shot log:
record, game, shooter, team and defender counts, followed by
made/attempted breakdowns per shot type and per period.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	report.PrintOverview(out, report.DatasetOverview{
		Path:      cfg.Data,
		Records:   stats.Len(),
		Games:     stats.Games(),
		Players:   len(stats.Players()),
		Teams:     len(stats.Teams()),
		Defenders: len(stats.Defenders()),
	})
	if stats.Len() == 0 {
		return nil
	}

	db, err := mirror(stats)
	if err != nil {
		return err
	}
	defer db.Close()

	types, err := db.ShotTypeBreakdown()
	if err != nil {
		return fmt.Errorf("shot type breakdown: %w", err)
	}
	fmt.Fprintf(out, "\n--- Shot types ---\n\n")
	report.PrintShotTypes(out, types)

	periods, err := db.PeriodBreakdown()
	if err != nil {
		return fmt.Errorf("period breakdown: %w", err)
	}
	fmt.Fprintf(out, "\n--- Periods ---\n\n")
	report.PrintPeriods(out, periods)
	return nil
}
