package model

import "time"

// ---- Raw records emitted by the parser ----

// ShotRecord is one shot attempt from the shot log.
type ShotRecord struct {
	GameID     string
	Matchup    string // "MAR 04, 2015 - CHA @ BKN"
	Location   string // "H" or "A"
	ShotNumber int
	Period     int
	GameClock  string
	ShotClock  *float64 // nil when the source field is empty
	Dribbles   int
	TouchTime  float64
	ShotDist   float64 // feet
	PtsType    int     // 2 or 3
	Made       bool

	ClosestDefender   string
	ClosestDefenderID int
	CloseDefDist      float64 // feet

	Points     int
	PlayerName string
	PlayerID   int
}

// Matchup is the parsed form of a matchup string.
type Matchup struct {
	Date     time.Time
	Team     string
	Opponent string
	Home     bool // "vs" matchups are home games, "@" away
}

// ---- Aggregated metrics ----

// GameAggregate is one team's totals for one game.
type GameAggregate struct {
	Team          string
	GameID        string
	Matchup       string
	Date          time.Time
	Opponent      string
	Home          bool
	TeamScore     int
	OpponentScore int
}

// Filter restricts a player's shots. Nil fields match everything.
type Filter struct {
	GameID *string
	Period *int
	Made   *bool
}

// WithGame returns a copy of f restricted to one game.
func (f Filter) WithGame(id string) Filter {
	f.GameID = &id
	return f
}

// WithPeriod returns a copy of f restricted to one period.
func (f Filter) WithPeriod(p int) Filter {
	f.Period = &p
	return f
}

// WithMade returns a copy of f restricted to made (true) or missed (false) shots.
func (f Filter) WithMade(made bool) Filter {
	f.Made = &made
	return f
}

// Match reports whether s satisfies every set field of f.
func (f Filter) Match(s ShotRecord) bool {
	if f.GameID != nil && s.GameID != *f.GameID {
		return false
	}
	if f.Period != nil && s.Period != *f.Period {
		return false
	}
	if f.Made != nil && s.Made != *f.Made {
		return false
	}
	return true
}

// DefenceFilter restricts the shots a player defended.
type DefenceFilter struct {
	MaxDistance *float64 // closest-defender distance <= MaxDistance
	Attacker    string   // shooter name; empty matches all
}

// Match reports whether s satisfies the filter.
func (f DefenceFilter) Match(s ShotRecord) bool {
	if f.MaxDistance != nil && s.CloseDefDist > *f.MaxDistance {
		return false
	}
	if f.Attacker != "" && s.PlayerName != f.Attacker {
		return false
	}
	return true
}

// DistanceDistribution counts shots per distance bucket.
type DistanceDistribution struct {
	UpTo5    int `json:"0-5"`
	UpTo15   int `json:"5-15"`
	UpTo22   int `json:"15-22"`
	Beyond22 int `json:"22+"`
}

// Total returns the sum of all buckets.
func (d DistanceDistribution) Total() int {
	return d.UpTo5 + d.UpTo15 + d.UpTo22 + d.Beyond22
}

type DistanceStats struct {
	Average      float64              `json:"average"`
	Median       float64              `json:"median"`
	Min          float64              `json:"min"`
	Max          float64              `json:"max"`
	Distribution DistanceDistribution `json:"distribution"`
}

type DribbleStats struct {
	TotalDribbles    int     `json:"total_dribbles"`
	DribbleInstances int     `json:"dribble_instances"`
	AveragePerShot   float64 `json:"average_per_shot"`
	SuccessRate      float64 `json:"success_rate"` // made rate among shots with at least one dribble
}

// DefenceSummary holds a player's defensive numbers.
type DefenceSummary struct {
	Situations int     `json:"situations"`
	Stops      int     `json:"stops"`
	Efficiency float64 `json:"efficiency"`
}

// PlayerSummary bundles every player statistic for one filter.
type PlayerSummary struct {
	Name               string         `json:"name"`
	Shots              int            `json:"shots"`
	Made               int            `json:"made"`
	Missed             int            `json:"missed"`
	ShootingPercentage float64        `json:"shooting_percentage"`
	AverageDistance    float64        `json:"average_distance"`
	Distance           DistanceStats  `json:"distance"`
	Dribbles           DribbleStats   `json:"dribbles"`
	Defence            DefenceSummary `json:"defence"`
}

// PlayerLeader is one row of the shooting leaderboard.
type PlayerLeader struct {
	Name               string  `json:"name"`
	Shots              int     `json:"shots"`
	Made               int     `json:"made"`
	ShootingPercentage float64 `json:"shooting_percentage"`
}

// GameTrend is one player's shooting line for a single game.
type GameTrend struct {
	GameID             string  `json:"game_id"`
	Matchup            string  `json:"matchup"`
	Shots              int     `json:"shots"`
	Made               int     `json:"made"`
	ShootingPercentage float64 `json:"shooting_percentage"`
	AverageDistance    float64 `json:"average_distance"`
}

// GameResult is a team's outcome in one game.
type GameResult struct {
	GameID        string    `json:"game_id"`
	Score         int       `json:"score"`
	OpponentScore int       `json:"opponent_score"`
	Opponent      string    `json:"opponent"`
	Result        string    `json:"result"` // "W" or "L"
	Date          time.Time `json:"date"`
}

// TeamSummary bundles a team's statistics.
type TeamSummary struct {
	Code         string       `json:"code"`
	Games        int          `json:"games"`
	Wins         int          `json:"wins"`
	Losses       int          `json:"losses"`
	AverageScore float64      `json:"average_score"`
	Results      []GameResult `json:"results"`
}

// ShotTypeTotals is made/attempted totals for one points type.
type ShotTypeTotals struct {
	PtsType   int
	Attempts  int
	Made      int
	AvgDist   float64
	AvgDefDst float64
}

// PeriodTotals is made/attempted totals for one period.
type PeriodTotals struct {
	Period   int
	Attempts int
	Made     int
}
