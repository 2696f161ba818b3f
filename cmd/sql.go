package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/report"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the loaded shot log",
	Long: `Load the shot log into an in-memory SQLite database, run an arbitrary
SQL query against it and print the results as a table.

Schema overview:
  shots(seq, game_id, matchup, location, shot_number, period, game_clock,
    shot_clock, dribbles, touch_time, shot_dist, pts_type, made,
    closest_defender, closest_defender_id, close_def_dist, pts,
    player_name, player_id)
  team_games(team, game_id, matchup, game_date, opponent, home,
    team_score, opponent_score)

Note: made and home are stored as 0/1. seq is the row's position in the CSV.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	stats, err := loadStats()
	if err != nil {
		return err
	}
	db, err := mirror(stats)
	if err != nil {
		return err
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "(no rows)")
		return nil
	}
	report.PrintRaw(out, cols, rows)
	fmt.Fprintf(out, "\n(%d rows)\n", len(rows))
	return nil
}
