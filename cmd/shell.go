package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/aggregator"
	"github.com/pable/go-nba-metrics/internal/model"
	"github.com/pable/go-nba-metrics/internal/report"
	"github.com/pable/go-nba-metrics/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Load the shot log once and query it interactively. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

// shell holds the state of one REPL session.
type shell struct {
	stats *aggregator.Stats
	db    *storage.DB
	out   io.Writer
}

func runShell(cmd *cobra.Command, _ []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}
	db, err := mirror(stats)
	if err != nil {
		return err
	}
	defer db.Close()

	sh := &shell{stats: stats, db: db, out: cmd.OutOrStdout()}
	return sh.run(cmd.InOrStdin())
}

func (sh *shell) run(in io.Reader) error {
	cGreeting.Fprintln(sh.out, "nbametrics shell")
	cMuted.Fprintf(sh.out, "%d shots loaded, type 'help' or 'exit'\n\n", sh.stats.Len())

	scanner := bufio.NewScanner(in)
	for {
		cPrompt.Fprint(sh.out, "nbametrics")
		cMuted.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !sh.exec(line) {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one command line and reports whether the session should continue.
func (sh *shell) exec(line string) bool {
	tokens := strings.Fields(line)
	verb, args := tokens[0], tokens[1:]
	rest := strings.Join(args, " ")

	switch verb {
	case "exit", "quit":
		return false
	case "help":
		sh.help()
	case "players":
		report.PrintNames(sh.out, sh.stats.Players())
	case "teams":
		report.PrintNames(sh.out, sh.stats.Teams())
	case "defenders":
		report.PrintNames(sh.out, sh.stats.Defenders())
	case "player":
		name, f, err := parsePlayerArgs(args)
		if err != nil {
			cError.Fprintf(sh.out, "error: %v\n", err)
			break
		}
		if name == "" {
			cError.Fprintln(sh.out, "usage: player <name> [game=<id>] [period=<n>] [result=made|missed]")
			break
		}
		report.PrintPlayer(sh.out, sh.stats.Player(name).Summary(f, model.DefenceFilter{}), f)
	case "trend":
		if rest == "" {
			cError.Fprintln(sh.out, "usage: trend <name>")
			break
		}
		report.PrintTrendTable(sh.out, rest, sh.stats.Player(rest).Trend())
	case "defence":
		if rest == "" {
			cError.Fprintln(sh.out, "usage: defence <name>")
			break
		}
		p := sh.stats.Player(rest)
		report.PrintDefenceTable(sh.out, model.DefenceSummary{
			Situations: p.DefenceCount(),
			Stops:      p.DefenceSuccessCount(),
			Efficiency: p.DefenceEfficiency(model.DefenceFilter{}),
		})
	case "team":
		if len(args) != 1 {
			cError.Fprintln(sh.out, "usage: team <code>")
			break
		}
		report.PrintTeam(sh.out, sh.stats.Team(strings.ToUpper(args[0])).Summary())
	case "leaders":
		minShots, limit := cfg.Leaders.MinShots, cfg.Leaders.Limit
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				cError.Fprintf(sh.out, "invalid min shots %q\n", args[0])
				break
			}
			minShots = n
		}
		report.PrintLeaders(sh.out, sh.stats.Leaders(minShots, limit))
	case "sql":
		cols, rows, err := sh.db.QueryRaw(rest)
		if err != nil {
			cError.Fprintf(sh.out, "error: %v\n", err)
			break
		}
		report.PrintRaw(sh.out, cols, rows)
	default:
		cWarn.Fprintf(sh.out, "unknown command %q, type 'help'\n", verb)
	}
	return true
}

// parsePlayerArgs splits trailing key=value filter tokens from the player name.
func parsePlayerArgs(args []string) (string, model.Filter, error) {
	var name []string
	var game, result string
	var period int
	for _, a := range args {
		key, val, ok := strings.Cut(a, "=")
		if !ok {
			name = append(name, a)
			continue
		}
		switch key {
		case "game":
			game = val
		case "period":
			n, err := strconv.Atoi(val)
			if err != nil {
				return "", model.Filter{}, fmt.Errorf("invalid period %q", val)
			}
			period = n
		case "result":
			result = val
		default:
			return "", model.Filter{}, fmt.Errorf("unknown filter %q", key)
		}
	}
	f, err := buildFilter(game, period, result)
	if err != nil {
		return "", model.Filter{}, err
	}
	return strings.Join(name, " "), f, nil
}

func (sh *shell) help() {
	fmt.Fprintln(sh.out)
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"players | teams | defenders", "list names in the shot log"},
		{"player <name> [key=value...]", "shooting and defence statistics"},
		{"", "keys: game=<id> period=<n> result=made|missed"},
		{"trend <name>", "per-game shooting trend"},
		{"defence <name>", "defence statistics only"},
		{"team <code>", "per-game scores and results"},
		{"leaders [min-shots]", "field goal percentage leaderboard"},
		{"sql <query>", "raw SQL against the shots and team_games tables"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Fprint(sh.out, "  ")
		cCmd.Fprintf(sh.out, "%-32s", r.cmd)
		fmt.Fprintln(sh.out, r.desc)
	}
	fmt.Fprintln(sh.out)
}
