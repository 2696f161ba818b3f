package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-nba-metrics/internal/model"
)

const header = "GAME_ID,MATCHUP,LOCATION,W,FINAL_MARGIN,SHOT_NUMBER,PERIOD,GAME_CLOCK,SHOT_CLOCK,DRIBBLES,TOUCH_TIME,SHOT_DIST,PTS_TYPE,SHOT_RESULT,CLOSEST_DEFENDER,CLOSEST_DEFENDER_PLAYER_ID,CLOSE_DEF_DIST,FGM,PTS,player_name,player_id\n"

func TestReadRecords(t *testing.T) {
	in := header +
		`21400899,"MAR 04, 2015 - CHA @ BKN",A,W,24,1,1,1:09,10.8,2,1.9,7.7,2,made,"Anderson, Alan",101187,1.3,1,2,brian roberts,203148` + "\n" +
		`21400899,"MAR 04, 2015 - CHA @ BKN",A,W,24,2,1,0:14,,0,0.8,28.2,3,missed,"Bogdanovic, Bojan",202711,6.1,0,0,brian roberts,203148` + "\n"

	recs, err := ReadRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	first := recs[0]
	assert.Equal(t, "21400899", first.GameID)
	assert.Equal(t, "MAR 04, 2015 - CHA @ BKN", first.Matchup)
	assert.Equal(t, 1, first.ShotNumber)
	require.NotNil(t, first.ShotClock)
	assert.InDelta(t, 10.8, *first.ShotClock, 1e-9)
	assert.Equal(t, 2, first.Dribbles)
	assert.InDelta(t, 7.7, first.ShotDist, 1e-9)
	assert.True(t, first.Made)
	assert.Equal(t, "Anderson, Alan", first.ClosestDefender)
	assert.Equal(t, 101187, first.ClosestDefenderID)
	assert.Equal(t, 2, first.Points)
	assert.Equal(t, "brian roberts", first.PlayerName)
	assert.Equal(t, 203148, first.PlayerID)

	second := recs[1]
	assert.Nil(t, second.ShotClock, "empty SHOT_CLOCK should be absent")
	assert.False(t, second.Made)
	assert.Equal(t, 3, second.PtsType)
}

func TestReadRecords_LowercaseHeaderAndBoolResult(t *testing.T) {
	in := "game_id,matchup,location,shot_number,period,game_clock,shot_clock,dribbles,shot_dist,pts_type,shot_result,closest_defender,close_def_dist,pts,player_name,player_id\n" +
		"1,DEC 25 2015 - LAL @ GSW,A,1,2,5:00,3.0,0,22.5,3,true,Curry,4.0,3,kobe,8\n"

	recs, err := ReadRecords(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].Made)
	assert.Zero(t, recs[0].TouchTime, "optional column absent")
}

func TestReadRecords_MissingColumn(t *testing.T) {
	in := "GAME_ID,MATCHUP\n1,x\n"
	_, err := ReadRecords(strings.NewReader(in))
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestReadRecords_BadValue(t *testing.T) {
	in := header +
		`1,"MAR 04, 2015 - CHA @ BKN",A,W,24,1,one,1:09,10.8,2,1.9,7.7,2,made,X,1,1.3,1,2,p,1` + "\n"
	_, err := ReadRecords(strings.NewReader(in))
	require.ErrorIs(t, err, model.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "period")
}

// TestReadRecords_OutOfRange: distances and dribbles must be finite and non-negative.
func TestReadRecords_OutOfRange(t *testing.T) {
	row := func(dribbles, touch, dist, defDist string) string {
		return header + fmt.Sprintf(`1,"MAR 04, 2015 - CHA @ BKN",A,W,24,1,1,1:09,10.8,%s,%s,%s,2,made,X,1,%s,1,2,p,1`+"\n",
			dribbles, touch, dist, defDist)
	}
	cases := []struct {
		name, in, col string
	}{
		{"nan distance", row("2", "1.9", "NaN", "1.3"), "shot_dist"},
		{"infinite distance", row("2", "1.9", "+Inf", "1.3"), "shot_dist"},
		{"negative distance", row("2", "1.9", "-4", "1.3"), "shot_dist"},
		{"negative defender distance", row("2", "1.9", "7.7", "-0.5"), "close_def_dist"},
		{"negative dribbles", row("-1", "1.9", "7.7", "1.3"), "dribbles"},
		{"nan touch time", row("2", "nan", "7.7", "1.3"), "touch_time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tc.in))
			require.ErrorIs(t, err, model.ErrInvalidFormat)
			assert.Contains(t, err.Error(), tc.col)
		})
	}

	// The public logs carry small negative touch times; those are kept as-is.
	recs, err := ReadRecords(strings.NewReader(row("0", "-0.3", "0", "0")))
	require.NoError(t, err)
	assert.InDelta(t, -0.3, recs[0].TouchTime, 1e-9)
	assert.Zero(t, recs[0].ShotDist)
}

func TestReadRecords_BadShotResult(t *testing.T) {
	in := header +
		`1,"MAR 04, 2015 - CHA @ BKN",A,W,24,1,1,1:09,10.8,2,1.9,7.7,2,blocked,X,1,1.3,1,2,p,1` + "\n"
	_, err := ReadRecords(strings.NewReader(in))
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestReadRecords_Empty(t *testing.T) {
	_, err := ReadRecords(strings.NewReader(""))
	assert.ErrorIs(t, err, model.ErrInvalidFormat)

	recs, err := ReadRecords(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLoadRecords_NotFound(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLoadRecords_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shots.csv")
	body := header +
		`1,"MAR 04, 2015 - CHA @ BKN",A,W,24,1,1,1:09,10.8,2,1.9,7.7,2,made,X,1,1.3,1,2,p,1` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	recs, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
