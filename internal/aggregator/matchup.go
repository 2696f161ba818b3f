package aggregator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pable/go-nba-metrics/internal/model"
)

// teamSep splits "CHA @ BKN" and "CHA vs. NYK".
var teamSep = regexp.MustCompile(`\s+(@|vs\.?)\s+`)

var dateLayouts = []string{"Jan 2, 2006", "Jan 2 2006"}

// ParseMatchup parses "MAR 04, 2015 - CHA @ BKN" into its date and team codes.
func ParseMatchup(s string) (model.Matchup, error) {
	head, tail, ok := strings.Cut(s, " - ")
	if !ok {
		return model.Matchup{}, fmt.Errorf("matchup %q: no date separator: %w", s, model.ErrInvalidFormat)
	}

	teams := teamSep.FindStringSubmatchIndex(tail)
	if teams == nil {
		return model.Matchup{}, fmt.Errorf("matchup %q: no team separator: %w", s, model.ErrInvalidFormat)
	}
	team := strings.TrimSpace(tail[:teams[0]])
	opp := strings.TrimSpace(tail[teams[1]:])
	if team == "" || opp == "" || strings.ContainsAny(team, " \t") || strings.ContainsAny(opp, " \t") {
		return model.Matchup{}, fmt.Errorf("matchup %q: bad team codes: %w", s, model.ErrInvalidFormat)
	}

	date, err := parseGameDate(strings.TrimSpace(head))
	if err != nil {
		return model.Matchup{}, fmt.Errorf("matchup %q: %w", s, err)
	}

	return model.Matchup{
		Date:     date,
		Team:     team,
		Opponent: opp,
		Home:     tail[teams[2]:teams[3]] != "@",
	}, nil
}

// parseGameDate accepts "DEC 25 2015" and "MAR 04, 2015"; month names are case-insensitive.
func parseGameDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q: %w", s, model.ErrInvalidFormat)
}
