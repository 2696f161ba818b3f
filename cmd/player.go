package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/model"
	"github.com/pable/go-nba-metrics/internal/report"
)

var (
	playerGame       string
	playerPeriod     int
	playerResult     string
	playerMaxDefDist float64
	playerAttacker   string
	playerJSON       bool
)

// playerCmd prints shooting, distance, dribble and defence statistics for one shooter.
var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Shooting and defence statistics for one player",
	Long: `Print shooting, distance, dribble and defence statistics for one player.

Names are matched exactly as they appear in the shot log, e.g.
  nbametrics player brian roberts
  nbametrics player "stephen curry" --period 4 --result made`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlayer,
}

func init() {
	playerCmd.Flags().StringVar(&playerGame, "game", "", "only shots from this game id")
	playerCmd.Flags().IntVar(&playerPeriod, "period", 0, "only shots from this period (1-4, 5+ for overtime)")
	playerCmd.Flags().StringVar(&playerResult, "result", "", "only made or missed shots")
	playerCmd.Flags().Float64Var(&playerMaxDefDist, "max-def-dist", -1, "defence: only shots contested within this many feet")
	playerCmd.Flags().StringVar(&playerAttacker, "attacker", "", "defence: only shots taken by this player")
	playerCmd.Flags().BoolVar(&playerJSON, "json", false, "print JSON instead of tables")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	f, err := buildFilter(playerGame, playerPeriod, playerResult)
	if err != nil {
		return err
	}
	df := buildDefenceFilter(playerMaxDefDist, playerAttacker)

	stats, err := loadStats()
	if err != nil {
		return err
	}
	p := stats.Player(name)
	if p.ShotCount(model.Filter{}) == 0 && p.DefenceCount() == 0 {
		log.WithField("player", name).Warn("Player not found in shot log")
	}

	summary := p.Summary(f, df)
	if playerJSON {
		return report.PrintJSON(cmd.OutOrStdout(), summary)
	}
	report.PrintPlayer(cmd.OutOrStdout(), summary, f)
	return nil
}

// buildFilter turns player flags into a shot filter. Zero values leave a field unset.
func buildFilter(game string, period int, result string) (model.Filter, error) {
	var f model.Filter
	if game != "" {
		f = f.WithGame(game)
	}
	if period < 0 {
		return f, fmt.Errorf("invalid --period %d", period)
	}
	if period > 0 {
		f = f.WithPeriod(period)
	}
	switch strings.ToLower(result) {
	case "":
	case "made":
		f = f.WithMade(true)
	case "missed":
		f = f.WithMade(false)
	default:
		return f, fmt.Errorf("invalid --result %q: want made or missed", result)
	}
	return f, nil
}

// buildDefenceFilter turns defence flags into a filter. A negative distance means no limit.
func buildDefenceFilter(maxDist float64, attacker string) model.DefenceFilter {
	var df model.DefenceFilter
	if maxDist >= 0 {
		df.MaxDistance = &maxDist
	}
	df.Attacker = attacker
	return df
}
