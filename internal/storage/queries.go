package storage

import (
	"fmt"
	"strconv"

	"github.com/pable/go-nba-metrics/internal/model"
)

// InsertShots bulk-inserts shot records in a transaction. seq preserves source order.
func (db *DB) InsertShots(shots []model.ShotRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO shots(
			game_id, matchup, location, shot_number, period, game_clock, shot_clock,
			dribbles, touch_time, shot_dist, pts_type, made,
			closest_defender, closest_defender_id, close_def_dist,
			pts, player_name, player_id
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, s := range shots {
		var shotClock any
		if s.ShotClock != nil {
			shotClock = *s.ShotClock
		}
		_, err = stmt.Exec(
			s.GameID, s.Matchup, s.Location, s.ShotNumber, s.Period, s.GameClock, shotClock,
			s.Dribbles, s.TouchTime, s.ShotDist, s.PtsType, boolInt(s.Made),
			s.ClosestDefender, s.ClosestDefenderID, s.CloseDefDist,
			s.Points, s.PlayerName, s.PlayerID,
		)
		if err != nil {
			return fmt.Errorf("insert shot %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// InsertTeamGames bulk-inserts per-game team aggregates in a transaction.
func (db *DB) InsertTeamGames(games []model.GameAggregate) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO team_games(
			team, game_id, matchup, game_date, opponent, home, team_score, opponent_score
		) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range games {
		_, err = stmt.Exec(
			g.Team, g.GameID, g.Matchup, g.Date.Format("2006-01-02"), g.Opponent,
			boolInt(g.Home), g.TeamScore, g.OpponentScore,
		)
		if err != nil {
			return fmt.Errorf("insert team_games %s/%s: %w", g.Team, g.GameID, err)
		}
	}
	return tx.Commit()
}

// CountShots returns the number of mirrored shots.
func (db *DB) CountShots() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM shots").Scan(&n)
	return n, err
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = formatValue(v)
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
