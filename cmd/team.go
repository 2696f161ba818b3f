package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/report"
)

var (
	teamGame string
	teamJSON bool
)

var teamCmd = &cobra.Command{
	Use:   "team <code>",
	Short: "Per-game scores and results for one team",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeam,
}

func init() {
	teamCmd.Flags().StringVar(&teamGame, "game", "", "print only the average score for this game id")
	teamCmd.Flags().BoolVar(&teamJSON, "json", false, "print JSON instead of tables")
}

func runTeam(cmd *cobra.Command, args []string) error {
	code := strings.ToUpper(args[0])
	stats, err := loadStats()
	if err != nil {
		return err
	}
	t := stats.Team(code)
	if t.GameCount() == 0 {
		log.WithField("team", t.Code()).Warn("Team not found in shot log")
	}

	out := cmd.OutOrStdout()
	if teamGame != "" {
		avg := t.AverageScore(teamGame)
		if teamJSON {
			return report.PrintJSON(out, map[string]any{"team": code, "game_id": teamGame, "average_score": avg})
		}
		fmt.Fprintf(out, "%s average score (game %s): %.1f\n", code, teamGame, avg)
		return nil
	}

	summary := t.Summary()
	if teamJSON {
		return report.PrintJSON(out, summary)
	}
	report.PrintTeam(out, summary)
	return nil
}
