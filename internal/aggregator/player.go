package aggregator

import "github.com/pable/go-nba-metrics/internal/model"

// DefenceSource looks up the shots a player defended.
type DefenceSource interface {
	Defence(name string) []model.ShotRecord
}

// Player is a read-only view over one shooter's records. Every method filters
// then reduces on demand; nothing is cached.
type Player struct {
	name    string
	shots   []model.ShotRecord
	defence DefenceSource
}

// NewPlayer builds a view from an explicit record set. defence may be nil.
func NewPlayer(name string, shots []model.ShotRecord, defence DefenceSource) *Player {
	return &Player{name: name, shots: shots, defence: defence}
}

// Name returns the shooter's name.
func (p *Player) Name() string { return p.name }

// Shots returns the shots matching f in source order.
func (p *Player) Shots(f model.Filter) []model.ShotRecord {
	return filterShots(p.shots, f.Match)
}

func (p *Player) ShotCount(f model.Filter) int { return len(p.Shots(f)) }

func (p *Player) MadeCount(f model.Filter) int { return countMade(p.Shots(f)) }

func (p *Player) MissedCount(f model.Filter) int {
	shots := p.Shots(f)
	return len(shots) - countMade(shots)
}

// ShootingPercentage returns made/attempts*100 rounded to 0.1, or 0 with no attempts.
func (p *Player) ShootingPercentage(f model.Filter) float64 {
	shots := p.Shots(f)
	return round(rate(countMade(shots), len(shots))*100, 1)
}

// AverageDistance returns the mean shot distance rounded to 0.1.
func (p *Player) AverageDistance(f model.Filter) float64 {
	return round(mean(sortedDistances(p.Shots(f))), 1)
}

// DistanceStats summarises shot distances. The zero value is returned for no shots.
func (p *Player) DistanceStats(f model.Filter) model.DistanceStats {
	d := sortedDistances(p.Shots(f))
	if len(d) == 0 {
		return model.DistanceStats{}
	}
	return model.DistanceStats{
		Average:      round(mean(d), 1),
		Median:       round(median(d), 1),
		Min:          d[0],
		Max:          d[len(d)-1],
		Distribution: distribution(d),
	}
}

func (p *Player) TotalDribbles(f model.Filter) int {
	total := 0
	for _, s := range p.Shots(f) {
		total += s.Dribbles
	}
	return total
}

// DribbleStats reports dribble volume and the make rate on shots off the dribble.
func (p *Player) DribbleStats(f model.Filter) model.DribbleStats {
	shots := p.Shots(f)
	var total, instances, madeOffDribble int
	for _, s := range shots {
		total += s.Dribbles
		if s.Dribbles > 0 {
			instances++
			if s.Made {
				madeOffDribble++
			}
		}
	}
	return model.DribbleStats{
		TotalDribbles:    total,
		DribbleInstances: instances,
		AveragePerShot:   round(rate(total, len(shots)), 1),
		SuccessRate:      round(rate(madeOffDribble, instances), 3),
	}
}

func (p *Player) defended() []model.ShotRecord {
	if p.defence == nil {
		return nil
	}
	return p.defence.Defence(p.name)
}

// DefenceCount returns how many shots this player was the closest defender on.
func (p *Player) DefenceCount() int { return len(p.defended()) }

// DefenceSuccessCount returns how many of those shots were missed.
func (p *Player) DefenceSuccessCount() int {
	shots := p.defended()
	return len(shots) - countMade(shots)
}

// DefenceEfficiency returns the missed fraction among defended shots matching f,
// rounded to 0.001; 0 when nothing matches.
func (p *Player) DefenceEfficiency(f model.DefenceFilter) float64 {
	shots := filterShots(p.defended(), f.Match)
	return round(rate(len(shots)-countMade(shots), len(shots)), 3)
}

// Games returns the distinct game ids this player shot in, in first-seen order.
func (p *Player) Games() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, s := range p.shots {
		if _, ok := seen[s.GameID]; ok {
			continue
		}
		seen[s.GameID] = struct{}{}
		out = append(out, s.GameID)
	}
	return out
}

// Trend returns one shooting line per game, in first-seen order.
func (p *Player) Trend() []model.GameTrend {
	games := p.Games()
	out := make([]model.GameTrend, 0, len(games))
	for _, id := range games {
		f := model.Filter{}.WithGame(id)
		shots := p.Shots(f)
		out = append(out, model.GameTrend{
			GameID:             id,
			Matchup:            shots[0].Matchup,
			Shots:              len(shots),
			Made:               countMade(shots),
			ShootingPercentage: p.ShootingPercentage(f),
			AverageDistance:    p.AverageDistance(f),
		})
	}
	return out
}

// Summary bundles every statistic for f. Defence numbers are not filtered by f.
func (p *Player) Summary(f model.Filter, df model.DefenceFilter) model.PlayerSummary {
	shots := p.Shots(f)
	made := countMade(shots)
	return model.PlayerSummary{
		Name:               p.name,
		Shots:              len(shots),
		Made:               made,
		Missed:             len(shots) - made,
		ShootingPercentage: p.ShootingPercentage(f),
		AverageDistance:    p.AverageDistance(f),
		Distance:           p.DistanceStats(f),
		Dribbles:           p.DribbleStats(f),
		Defence: model.DefenceSummary{
			Situations: p.DefenceCount(),
			Stops:      p.DefenceSuccessCount(),
			Efficiency: p.DefenceEfficiency(df),
		},
	}
}
