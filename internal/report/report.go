package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-nba-metrics/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func f1(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
func f3(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }

// PrintJSON writes v as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintPlayerHeader prints a one-line header naming the player and active filter.
func PrintPlayerHeader(w io.Writer, name string, f model.Filter) {
	fmt.Fprintf(w, "\nPlayer: %s  |  Filter: %s\n\n", name, describeFilter(f))
}

func describeFilter(f model.Filter) string {
	s := ""
	if f.GameID != nil {
		s += "game=" + *f.GameID + " "
	}
	if f.Period != nil {
		s += "period=" + strconv.Itoa(*f.Period) + " "
	}
	if f.Made != nil {
		if *f.Made {
			s += "result=made "
		} else {
			s += "result=missed "
		}
	}
	if s == "" {
		return "all shots"
	}
	return s[:len(s)-1]
}

// PrintShootingTable prints attempts, makes and percentages.
func PrintShootingTable(w io.Writer, s model.PlayerSummary) {
	table := newTable(w)
	table.Header("SHOTS", "MADE", "MISSED", "FG%", "AVG_DIST")
	table.Append(
		strconv.Itoa(s.Shots),
		strconv.Itoa(s.Made),
		strconv.Itoa(s.Missed),
		f1(s.ShootingPercentage)+"%",
		f1(s.AverageDistance)+"ft",
	)
	table.Render()
}

// PrintDistanceTable prints distance statistics and the bucket distribution.
// Columns: AVG | MEDIAN | MIN | MAX | 0-5 | 5-15 | 15-22 | 22+
func PrintDistanceTable(w io.Writer, d model.DistanceStats) {
	table := newTable(w)
	table.Header("AVG", "MEDIAN", "MIN", "MAX", "0-5ft", "5-15ft", "15-22ft", "22+ft")
	table.Append(
		f1(d.Average),
		f1(d.Median),
		f1(d.Min),
		f1(d.Max),
		strconv.Itoa(d.Distribution.UpTo5),
		strconv.Itoa(d.Distribution.UpTo15),
		strconv.Itoa(d.Distribution.UpTo22),
		strconv.Itoa(d.Distribution.Beyond22),
	)
	table.Render()
}

// PrintDribbleTable prints dribble volume and the make rate off the dribble.
func PrintDribbleTable(w io.Writer, d model.DribbleStats) {
	table := newTable(w)
	table.Header("DRIBBLES", "SHOTS_OFF_DRIBBLE", "PER_SHOT", "SUCCESS")
	table.Append(
		strconv.Itoa(d.TotalDribbles),
		strconv.Itoa(d.DribbleInstances),
		f1(d.AveragePerShot),
		f3(d.SuccessRate),
	)
	table.Render()
}

// PrintDefenceTable prints how often the player was the closest defender and
// how many of those shots missed.
func PrintDefenceTable(w io.Writer, d model.DefenceSummary) {
	table := newTable(w)
	table.Header("SITUATIONS", "STOPS", "EFFICIENCY")
	eff := "—"
	if d.Situations > 0 {
		eff = f3(d.Efficiency)
	}
	table.Append(strconv.Itoa(d.Situations), strconv.Itoa(d.Stops), eff)
	table.Render()
}

// PrintPlayer prints every player table.
func PrintPlayer(w io.Writer, s model.PlayerSummary, f model.Filter) {
	PrintPlayerHeader(w, s.Name, f)
	PrintShootingTable(w, s)
	fmt.Fprintln(w)
	PrintDistanceTable(w, s.Distance)
	fmt.Fprintln(w)
	PrintDribbleTable(w, s.Dribbles)
	fmt.Fprintln(w)
	PrintDefenceTable(w, s.Defence)
}

// PrintTeam prints the team header and per-game results.
// Columns: DATE | GAME | OPP | SCORE | OPP_SCORE | RESULT
func PrintTeam(w io.Writer, s model.TeamSummary) {
	fmt.Fprintf(w, "\nTeam: %s  |  Games: %d  |  Record: %d-%d  |  Avg score: %s\n\n",
		s.Code, s.Games, s.Wins, s.Losses, f1(s.AverageScore))

	table := newTable(w)
	table.Header("DATE", "GAME", "OPP", "SCORE", "OPP_SCORE", "RESULT")
	for _, r := range s.Results {
		table.Append(
			r.Date.Format("2006-01-02"),
			r.GameID,
			r.Opponent,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.OpponentScore),
			r.Result,
		)
	}
	table.Render()
}

// PrintLeaders prints the shooting leaderboard.
func PrintLeaders(w io.Writer, leaders []model.PlayerLeader) {
	table := newTable(w)
	table.Header("#", "PLAYER", "SHOTS", "MADE", "FG%")
	for i, l := range leaders {
		table.Append(
			strconv.Itoa(i+1),
			l.Name,
			strconv.Itoa(l.Shots),
			strconv.Itoa(l.Made),
			f1(l.ShootingPercentage)+"%",
		)
	}
	table.Render()
}

// PrintTrendTable prints a player's per-game shooting line.
// Columns: GAME | MATCHUP | SHOTS | MADE | FG% | AVG_DIST
func PrintTrendTable(w io.Writer, name string, trend []model.GameTrend) {
	fmt.Fprintf(w, "\nTrend: %s  |  Games: %d\n\n", name, len(trend))
	table := newTable(w)
	table.Header("GAME", "MATCHUP", "SHOTS", "MADE", "FG%", "AVG_DIST")
	for _, g := range trend {
		table.Append(
			g.GameID,
			g.Matchup,
			strconv.Itoa(g.Shots),
			strconv.Itoa(g.Made),
			f1(g.ShootingPercentage)+"%",
			f1(g.AverageDistance)+"ft",
		)
	}
	table.Render()
}

// PrintNames prints one name per line.
func PrintNames(w io.Writer, names []string) {
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

// DatasetOverview is the headline numbers printed by the summary command.
type DatasetOverview struct {
	Path      string
	Records   int
	Games     int
	Players   int
	Teams     int
	Defenders int
}

// PrintOverview prints the dataset headline numbers.
func PrintOverview(w io.Writer, o DatasetOverview) {
	fmt.Fprintf(w, "\n=== Shot Log Summary ===\n\n")
	fmt.Fprintf(w, "  File        : %s\n", o.Path)
	fmt.Fprintf(w, "  Shots       : %d\n", o.Records)
	fmt.Fprintf(w, "  Games       : %d\n", o.Games)
	fmt.Fprintf(w, "  Shooters    : %d\n", o.Players)
	fmt.Fprintf(w, "  Teams       : %d\n", o.Teams)
	fmt.Fprintf(w, "  Defenders   : %d\n", o.Defenders)
}

// PrintShotTypes prints made/attempted totals per points type.
func PrintShotTypes(w io.Writer, rows []model.ShotTypeTotals) {
	table := newTable(w)
	table.Header("TYPE", "ATT", "MADE", "FG%", "AVG_DIST", "AVG_DEF_DIST")
	for _, r := range rows {
		pct := 0.0
		if r.Attempts > 0 {
			pct = 100.0 * float64(r.Made) / float64(r.Attempts)
		}
		table.Append(
			fmt.Sprintf("%dPT", r.PtsType),
			strconv.Itoa(r.Attempts),
			strconv.Itoa(r.Made),
			f1(pct)+"%",
			f1(r.AvgDist),
			f1(r.AvgDefDst),
		)
	}
	table.Render()
}

// PrintPeriods prints made/attempted totals per period.
func PrintPeriods(w io.Writer, rows []model.PeriodTotals) {
	table := newTable(w)
	table.Header("PERIOD", "ATT", "MADE", "FG%")
	for _, r := range rows {
		pct := 0.0
		if r.Attempts > 0 {
			pct = 100.0 * float64(r.Made) / float64(r.Attempts)
		}
		label := strconv.Itoa(r.Period)
		if r.Period > 4 {
			label = fmt.Sprintf("OT%d", r.Period-4)
		}
		table.Append(label, strconv.Itoa(r.Attempts), strconv.Itoa(r.Made), f1(pct)+"%")
	}
	table.Render()
}

// PrintRaw prints string rows under the given column names.
func PrintRaw(w io.Writer, cols []string, rows [][]string) {
	table := newTable(w)
	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)
	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
}
