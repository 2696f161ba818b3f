package aggregator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-nba-metrics/internal/model"
)

const (
	lalAtGSW = "DEC 25 2015 - LAL @ GSW"
	gswVsLAL = "DEC 25 2015 - GSW vs. LAL"
	lalVsBOS = "JAN 02, 2016 - LAL vs BOS"
)

// shot builds a minimal ShotRecord; callers override fields as needed.
func shot(player, game, matchup string, dist float64, made bool, dribbles int) model.ShotRecord {
	pts := 0
	if made {
		pts = 2
		if dist > 22 {
			pts = 3
		}
	}
	ptsType := 2
	if dist > 22 {
		ptsType = 3
	}
	return model.ShotRecord{
		GameID:          game,
		Matchup:         matchup,
		Period:          1,
		Dribbles:        dribbles,
		ShotDist:        dist,
		PtsType:         ptsType,
		Made:            made,
		ClosestDefender: "D",
		CloseDefDist:    3,
		Points:          pts,
		PlayerName:      player,
	}
}

func mustNew(t *testing.T, recs []model.ShotRecord) *Stats {
	t.Helper()
	s, err := New(recs)
	require.NoError(t, err)
	return s
}

// TestIndex_PreservesSourceOrder: player and defence groups keep insertion order.
func TestIndex_PreservesSourceOrder(t *testing.T) {
	a1 := shot("A", "1", lalAtGSW, 1, true, 0)
	b1 := shot("B", "1", lalAtGSW, 2, true, 0)
	a2 := shot("A", "1", lalAtGSW, 3, false, 0)
	a1.ClosestDefender, b1.ClosestDefender, a2.ClosestDefender = "X", "Y", "X"

	s := mustNew(t, []model.ShotRecord{a1, b1, a2})

	got := s.Player("A").Shots(model.Filter{})
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].ShotDist)
	assert.Equal(t, 3.0, got[1].ShotDist)

	def := s.Defence("X")
	require.Len(t, def, 2)
	assert.Equal(t, 1.0, def[0].ShotDist)
	assert.Equal(t, 3.0, def[1].ShotDist)

	assert.Equal(t, []string{"A", "B"}, s.Players())
	assert.Equal(t, []string{"X", "Y"}, s.Defenders())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.Games())
}

// TestIndex_DoesNotAliasInput: mutating the caller's slice after New has no effect.
func TestIndex_DoesNotAliasInput(t *testing.T) {
	recs := []model.ShotRecord{shot("A", "1", lalAtGSW, 10, true, 0)}
	s := mustNew(t, recs)
	recs[0].PlayerName = "Z"
	recs[0].ShotDist = 99

	assert.Equal(t, 1, s.Player("A").ShotCount(model.Filter{}))
	assert.Equal(t, 10.0, s.Records()[0].ShotDist)
}

// TestTeamIndex_Scores: team score sums made points per game; opponent score
// mirrors the opponent's own aggregate for the same game id.
func TestTeamIndex_Scores(t *testing.T) {
	recs := []model.ShotRecord{
		shot("kobe", "1", lalAtGSW, 10, true, 0),  // LAL +2
		shot("kobe", "1", lalAtGSW, 25, true, 0),  // LAL +3
		shot("kobe", "1", lalAtGSW, 12, false, 0), // miss
		shot("curry", "1", gswVsLAL, 26, true, 0), // GSW +3
		shot("kobe", "2", lalVsBOS, 4, true, 0),   // LAL +2, BOS absent
	}
	s := mustNew(t, recs)

	assert.Equal(t, []string{"GSW", "LAL"}, s.Teams(), "BOS has no shots of its own")

	lal := s.Team("LAL")
	res := lal.GameResults()
	require.Len(t, res, 2)

	assert.Equal(t, "1", res[0].GameID)
	assert.Equal(t, 5, res[0].Score)
	assert.Equal(t, 3, res[0].OpponentScore)
	assert.Equal(t, "GSW", res[0].Opponent)
	assert.Equal(t, "W", res[0].Result)

	assert.Equal(t, "2", res[1].GameID)
	assert.Equal(t, 2, res[1].Score)
	assert.Equal(t, 0, res[1].OpponentScore, "opponent with no shots in the batch scores 0")
	assert.Equal(t, "BOS", res[1].Opponent)

	gsw := s.Team("GSW").GameResults()
	require.Len(t, gsw, 1)
	assert.Equal(t, 3, gsw[0].Score)
	assert.Equal(t, 5, gsw[0].OpponentScore)
	assert.Equal(t, "L", gsw[0].Result)

	agg := s.TeamGames()
	require.Len(t, agg, 3)
	assert.True(t, agg[0].Home, "GSW vs. LAL is a GSW home game")
	assert.False(t, agg[1].Home)
}

// TestTeamIndex_MalformedMatchup: a bad matchup anywhere fails the whole build.
func TestTeamIndex_MalformedMatchup(t *testing.T) {
	recs := []model.ShotRecord{
		shot("A", "1", lalAtGSW, 10, true, 0),
		shot("A", "2", "LAL @ GSW", 10, true, 0),
	}
	_, err := New(recs)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)

	recs[1].Matchup = "FOO 45 2015 - LAL @ GSW"
	_, err = New(recs)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestNew_Empty(t *testing.T) {
	s := mustNew(t, nil)
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Players())
	assert.Empty(t, s.Teams())
	assert.Empty(t, s.Leaders(0, 0))
}

func TestLeaders(t *testing.T) {
	recs := []model.ShotRecord{
		shot("A", "1", lalAtGSW, 10, true, 0),
		shot("A", "1", lalAtGSW, 10, false, 0),
		shot("B", "1", lalAtGSW, 10, true, 0),
		shot("C", "1", lalAtGSW, 10, true, 0),
		shot("C", "1", lalAtGSW, 10, true, 0),
		shot("D", "1", lalAtGSW, 10, false, 0),
		shot("D", "1", lalAtGSW, 10, false, 0),
	}
	s := mustNew(t, recs)

	all := s.Leaders(0, 0)
	require.Len(t, all, 4)
	assert.Equal(t, "C", all[0].Name, "100% on more attempts ranks first")
	assert.Equal(t, "B", all[1].Name)
	assert.Equal(t, "A", all[2].Name)
	assert.Equal(t, 50.0, all[2].ShootingPercentage)
	assert.Equal(t, "D", all[3].Name)

	top := s.Leaders(2, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "C", top[0].Name)
	assert.Equal(t, "A", top[1].Name)
}

// randomRecords builds a reproducible batch for property checks.
func randomRecords(seed int64, n int) []model.ShotRecord {
	rng := rand.New(rand.NewSource(seed))
	players := []string{"A", "B", "C"}
	games := []string{"1", "2", "3"}
	out := make([]model.ShotRecord, n)
	for i := range out {
		made := rng.Intn(2) == 0
		r := shot(players[rng.Intn(len(players))], games[rng.Intn(len(games))], lalAtGSW,
			float64(rng.Intn(300))/10, made, rng.Intn(8))
		r.Period = 1 + rng.Intn(4)
		r.ClosestDefender = players[rng.Intn(len(players))]
		r.CloseDefDist = float64(rng.Intn(100)) / 10
		out[i] = r
	}
	return out
}

func filtersFor() []model.Filter {
	fs := []model.Filter{{}}
	for _, g := range []string{"1", "2", "4"} {
		fs = append(fs, model.Filter{}.WithGame(g))
	}
	for p := 1; p <= 4; p++ {
		fs = append(fs, model.Filter{}.WithPeriod(p), model.Filter{}.WithGame("2").WithPeriod(p))
	}
	fs = append(fs, model.Filter{}.WithMade(true), model.Filter{}.WithMade(false))
	return fs
}

// TestProperties checks the invariants that hold for every filter.
func TestProperties(t *testing.T) {
	s := mustNew(t, randomRecords(7, 400))

	for _, name := range append(s.Players(), "nobody") {
		p := s.Player(name)
		for _, f := range filtersFor() {
			n := p.ShotCount(f)
			assert.Equal(t, n, p.MadeCount(f)+p.MissedCount(f))

			pct := p.ShootingPercentage(f)
			assert.GreaterOrEqual(t, pct, 0.0)
			assert.LessOrEqual(t, pct, 100.0)
			if n == 0 {
				assert.Equal(t, 0.0, pct)
				continue
			}

			ds := p.DistanceStats(f)
			assert.LessOrEqual(t, ds.Min, ds.Median)
			assert.LessOrEqual(t, ds.Median, ds.Max)
			assert.Equal(t, n, ds.Distribution.Total())

			dr := p.DribbleStats(f)
			assert.InDelta(t, float64(dr.TotalDribbles), dr.AveragePerShot*float64(n), 0.05*float64(n)+1e-9)
			assert.Equal(t, dr.TotalDribbles, p.TotalDribbles(f))
		}
	}
}

// TestDeterminism: rebuilding from the same batch yields identical answers.
func TestDeterminism(t *testing.T) {
	recs := randomRecords(42, 300)
	a := mustNew(t, recs)
	b := mustNew(t, recs)

	for _, name := range a.Players() {
		for _, f := range filtersFor() {
			assert.Equal(t, a.Player(name).Summary(f, model.DefenceFilter{}), b.Player(name).Summary(f, model.DefenceFilter{}))
		}
	}
	for _, code := range a.Teams() {
		assert.Equal(t, a.Team(code).Summary(), b.Team(code).Summary())
	}
	assert.Equal(t, a.Leaders(1, 0), b.Leaders(1, 0))
}
