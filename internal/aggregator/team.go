package aggregator

import "github.com/pable/go-nba-metrics/internal/model"

// Team is a read-only view over one team's per-game aggregates.
type Team struct {
	code  string
	games []model.GameAggregate
}

// Code returns the team code.
func (t *Team) Code() string { return t.code }

// GameCount returns the number of games the team has shots in.
func (t *Team) GameCount() int { return len(t.games) }

// AverageScore returns the mean team score over all games, or the score of one
// game when gameID is non-empty, rounded to 0.1. Missing games and empty teams yield 0.
func (t *Team) AverageScore(gameID string) float64 {
	var scores []float64
	for _, g := range t.games {
		if gameID == "" || g.GameID == gameID {
			scores = append(scores, float64(g.TeamScore))
		}
	}
	return round(mean(scores), 1)
}

// GameResults lists each game in first-seen order. A game is a win only when
// the team outscored the opponent.
func (t *Team) GameResults() []model.GameResult {
	out := make([]model.GameResult, 0, len(t.games))
	for _, g := range t.games {
		res := "L"
		if g.TeamScore > g.OpponentScore {
			res = "W"
		}
		out = append(out, model.GameResult{
			GameID:        g.GameID,
			Score:         g.TeamScore,
			OpponentScore: g.OpponentScore,
			Opponent:      g.Opponent,
			Result:        res,
			Date:          g.Date,
		})
	}
	return out
}

// Record returns wins and losses across GameResults.
func (t *Team) Record() (wins, losses int) {
	for _, r := range t.GameResults() {
		if r.Result == "W" {
			wins++
		} else {
			losses++
		}
	}
	return wins, losses
}

// Summary bundles the team statistics.
func (t *Team) Summary() model.TeamSummary {
	wins, losses := t.Record()
	return model.TeamSummary{
		Code:         t.code,
		Games:        t.GameCount(),
		Wins:         wins,
		Losses:       losses,
		AverageScore: t.AverageScore(""),
		Results:      t.GameResults(),
	}
}
