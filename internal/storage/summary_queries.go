package storage

import "github.com/pable/go-nba-metrics/internal/model"

// ShotTypeBreakdown groups all mirrored shots by points type.
func (db *DB) ShotTypeBreakdown() ([]model.ShotTypeTotals, error) {
	rows, err := db.conn.Query(`
		SELECT pts_type,
		       COUNT(1),
		       COALESCE(SUM(made), 0),
		       COALESCE(AVG(shot_dist), 0),
		       COALESCE(AVG(close_def_dist), 0)
		FROM shots
		GROUP BY pts_type
		ORDER BY pts_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ShotTypeTotals
	for rows.Next() {
		var r model.ShotTypeTotals
		if err := rows.Scan(&r.PtsType, &r.Attempts, &r.Made, &r.AvgDist, &r.AvgDefDst); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PeriodBreakdown groups all mirrored shots by period.
func (db *DB) PeriodBreakdown() ([]model.PeriodTotals, error) {
	rows, err := db.conn.Query(`
		SELECT period, COUNT(1), COALESCE(SUM(made), 0)
		FROM shots
		GROUP BY period
		ORDER BY period`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PeriodTotals
	for rows.Next() {
		var r model.PeriodTotals
		if err := rows.Scan(&r.Period, &r.Attempts, &r.Made); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
