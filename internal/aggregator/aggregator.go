package aggregator

import (
	"fmt"
	"sort"

	"github.com/pable/go-nba-metrics/internal/model"
	"github.com/pable/go-nba-metrics/internal/parser"
)

// Stats is an indexed, read-only view of one shot log. It is built once by New
// and never mutated afterwards, so it is safe for concurrent readers.
type Stats struct {
	records []model.ShotRecord

	players map[string][]model.ShotRecord
	teams   map[string][]model.GameAggregate
	defence map[string][]model.ShotRecord
}

// Load reads the shot log at path and indexes it.
func Load(path string) (*Stats, error) {
	records, err := parser.LoadRecords(path)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// New indexes records by shooter, team and closest defender.
// A malformed matchup string fails the whole build with model.ErrInvalidFormat.
func New(records []model.ShotRecord) (*Stats, error) {
	s := &Stats{
		records: append([]model.ShotRecord(nil), records...),
		players: make(map[string][]model.ShotRecord),
		defence: make(map[string][]model.ShotRecord),
	}

	for _, r := range s.records {
		s.players[r.PlayerName] = append(s.players[r.PlayerName], r)
		s.defence[r.ClosestDefender] = append(s.defence[r.ClosestDefender], r)
	}

	teams, err := buildTeamIndex(s.records)
	if err != nil {
		return nil, err
	}
	s.teams = teams
	return s, nil
}

// buildTeamIndex accumulates one GameAggregate per (team, game), in first-seen order.
func buildTeamIndex(records []model.ShotRecord) (map[string][]model.GameAggregate, error) {
	type gameKey struct{ team, gameID string }

	teams := make(map[string][]model.GameAggregate)
	pos := make(map[gameKey]int) // index into teams[team]
	parsed := make(map[string]model.Matchup)

	// ---- Pass 1: team scores from made shots. ----
	for i, r := range records {
		m, ok := parsed[r.Matchup]
		if !ok {
			var err error
			m, err = ParseMatchup(r.Matchup)
			if err != nil {
				return nil, fmt.Errorf("record %d (game %s): %w", i+1, r.GameID, err)
			}
			parsed[r.Matchup] = m
		}

		k := gameKey{m.Team, r.GameID}
		p, ok := pos[k]
		if !ok {
			p = len(teams[m.Team])
			pos[k] = p
			teams[m.Team] = append(teams[m.Team], model.GameAggregate{
				Team:     m.Team,
				GameID:   r.GameID,
				Matchup:  r.Matchup,
				Date:     m.Date,
				Opponent: m.Opponent,
				Home:     m.Home,
			})
		}
		if r.Made {
			teams[m.Team][p].TeamScore += r.Points
		}
	}

	// ---- Pass 2: opponent scores mirror the opponent's own aggregate for the game. ----
	for team, games := range teams {
		for i := range games {
			g := &teams[team][i]
			if p, ok := pos[gameKey{g.Opponent, g.GameID}]; ok {
				g.OpponentScore = teams[g.Opponent][p].TeamScore
			}
		}
	}
	return teams, nil
}

// Len returns the number of records in the batch.
func (s *Stats) Len() int { return len(s.records) }

// Records returns a copy of the batch in source order.
func (s *Stats) Records() []model.ShotRecord {
	return append([]model.ShotRecord(nil), s.records...)
}

// Player returns the view for one shooter. Unknown names yield an empty view.
func (s *Stats) Player(name string) *Player {
	return NewPlayer(name, s.players[name], s)
}

// Team returns the view for one team code. Unknown codes yield an empty view.
func (s *Stats) Team(code string) *Team {
	return &Team{code: code, games: s.teams[code]}
}

// Defence returns the shots where name was the closest defender.
func (s *Stats) Defence(name string) []model.ShotRecord {
	return s.defence[name]
}

// TeamGames returns every team aggregate, ordered by team code then first-seen game.
func (s *Stats) TeamGames() []model.GameAggregate {
	var out []model.GameAggregate
	for _, code := range s.Teams() {
		out = append(out, s.teams[code]...)
	}
	return out
}

// Players returns all shooter names, sorted.
func (s *Stats) Players() []string { return sortedKeys(s.players) }

// Teams returns all team codes, sorted.
func (s *Stats) Teams() []string { return sortedKeys(s.teams) }

// Defenders returns all closest-defender names, sorted.
func (s *Stats) Defenders() []string { return sortedKeys(s.defence) }

// Games returns the number of distinct game ids in the batch.
func (s *Stats) Games() int {
	seen := make(map[string]struct{})
	for _, r := range s.records {
		seen[r.GameID] = struct{}{}
	}
	return len(seen)
}

// Leaders ranks shooters by shooting percentage. Players with fewer than
// minShots attempts are skipped; limit <= 0 returns everyone.
// Ties go to the player with more attempts, then by name.
func (s *Stats) Leaders(minShots, limit int) []model.PlayerLeader {
	var out []model.PlayerLeader
	for name, shots := range s.players {
		if len(shots) < minShots {
			continue
		}
		made := countMade(shots)
		out = append(out, model.PlayerLeader{
			Name:               name,
			Shots:              len(shots),
			Made:               made,
			ShootingPercentage: round(rate(made, len(shots))*100, 1),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ShootingPercentage != out[j].ShootingPercentage {
			return out[i].ShootingPercentage > out[j].ShootingPercentage
		}
		if out[i].Shots != out[j].Shots {
			return out[i].Shots > out[j].Shots
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
