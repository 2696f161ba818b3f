package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pable/go-nba-metrics/internal/model"
)

// Column names as they appear in the shot log header (compared case-insensitively).
const (
	colGameID          = "game_id"
	colMatchup         = "matchup"
	colLocation        = "location"
	colShotNumber      = "shot_number"
	colPeriod          = "period"
	colGameClock       = "game_clock"
	colShotClock       = "shot_clock"
	colDribbles        = "dribbles"
	colTouchTime       = "touch_time"
	colShotDist        = "shot_dist"
	colPtsType         = "pts_type"
	colShotResult      = "shot_result"
	colClosestDefender = "closest_defender"
	colDefenderID      = "closest_defender_player_id"
	colCloseDefDist    = "close_def_dist"
	colPts             = "pts"
	colPlayerName      = "player_name"
	colPlayerID        = "player_id"
)

var requiredColumns = []string{
	colGameID, colMatchup, colLocation, colShotNumber, colPeriod, colGameClock,
	colShotClock, colDribbles, colShotDist, colPtsType, colShotResult,
	colClosestDefender, colCloseDefDist, colPts, colPlayerName, colPlayerID,
}

// LoadRecords reads the shot log CSV at path.
func LoadRecords(path string) ([]model.ShotRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("open shot log %s: %w", path, model.ErrNotFound)
		}
		return nil, fmt.Errorf("open shot log: %w", err)
	}
	defer f.Close()

	return ReadRecords(f)
}

// ReadRecords parses a shot log from r. The first row must be the header.
// Either every row parses or an error is returned.
func ReadRecords(r io.Reader) ([]model.ShotRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row: %w", model.ErrInvalidFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("missing column %q: %w", c, model.ErrInvalidFormat)
		}
	}

	var records []model.ShotRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// rowReader pulls typed fields out of one CSV row, keeping the first coercion error.
type rowReader struct {
	row []string
	idx map[string]int
	err error
}

func (r *rowReader) str(col string) string {
	i, ok := r.idx[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r *rowReader) fail(col, val string) {
	if r.err == nil {
		r.err = fmt.Errorf("column %s: bad value %q: %w", col, val, model.ErrInvalidFormat)
	}
}

func (r *rowReader) integer(col string) int {
	v := r.str(col)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Some exports write integral columns as "2.0".
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int(f)) {
			r.fail(col, v)
			return 0
		}
		return int(f)
	}
	return n
}

func (r *rowReader) number(col string) float64 {
	v := r.str(col)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		r.fail(col, v)
		return 0
	}
	return f
}

// count is integer for columns that cannot be negative.
func (r *rowReader) count(col string) int {
	n := r.integer(col)
	if n < 0 {
		r.fail(col, r.str(col))
		return 0
	}
	return n
}

// distance is number for columns measured in feet.
func (r *rowReader) distance(col string) float64 {
	f := r.number(col)
	if f < 0 {
		r.fail(col, r.str(col))
		return 0
	}
	return f
}

func (r *rowReader) optFloat(col string) *float64 {
	if r.str(col) == "" {
		return nil
	}
	f := r.number(col)
	return &f
}

func (r *rowReader) made(col string) bool {
	v := r.str(col)
	switch strings.ToLower(v) {
	case "made", "true", "1":
		return true
	case "missed", "false", "0":
		return false
	}
	r.fail(col, v)
	return false
}

func parseRow(row []string, idx map[string]int) (model.ShotRecord, error) {
	r := &rowReader{row: row, idx: idx}
	rec := model.ShotRecord{
		GameID:            r.str(colGameID),
		Matchup:           r.str(colMatchup),
		Location:          r.str(colLocation),
		ShotNumber:        r.integer(colShotNumber),
		Period:            r.integer(colPeriod),
		GameClock:         r.str(colGameClock),
		ShotClock:         r.optFloat(colShotClock),
		Dribbles:          r.count(colDribbles),
		TouchTime:         r.number(colTouchTime),
		ShotDist:          r.distance(colShotDist),
		PtsType:           r.integer(colPtsType),
		Made:              r.made(colShotResult),
		ClosestDefender:   r.str(colClosestDefender),
		ClosestDefenderID: r.integer(colDefenderID),
		CloseDefDist:      r.distance(colCloseDefDist),
		Points:            r.integer(colPts),
		PlayerName:        r.str(colPlayerName),
		PlayerID:          r.integer(colPlayerID),
	}
	if r.err != nil {
		return model.ShotRecord{}, r.err
	}
	return rec, nil
}
