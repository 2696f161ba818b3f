package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/report"
)

var trendJSON bool

var trendCmd = &cobra.Command{
	Use:   "trend <name>",
	Short: "Per-game shooting trend for a player",
	Long: `Print one shooting line per game for a player, in the order the games
appear in the shot log: attempts, makes, FG% and average shot distance.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().BoolVar(&trendJSON, "json", false, "print JSON instead of a table")
}

func runTrend(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	stats, err := loadStats()
	if err != nil {
		return err
	}
	p := stats.Player(name)
	trend := p.Trend()
	if len(trend) == 0 {
		log.WithField("player", name).Warn("Player not found in shot log")
	}
	if trendJSON {
		return report.PrintJSON(cmd.OutOrStdout(), trend)
	}
	report.PrintTrendTable(cmd.OutOrStdout(), p.Name(), trend)
	return nil
}
