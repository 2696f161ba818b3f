package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/report"
)

var listCmd = &cobra.Command{
	Use:       "list <players|teams|defenders>",
	Short:     "List the shooters, teams or defenders in the shot log",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"players", "teams", "defenders"},
	RunE:      runList,
}

func runList(cmd *cobra.Command, args []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}

	var names []string
	switch args[0] {
	case "players":
		names = stats.Players()
	case "teams":
		names = stats.Teams()
	case "defenders":
		names = stats.Defenders()
	default:
		return fmt.Errorf("unknown list %q: want players, teams or defenders", args[0])
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to list. The shot log is empty.")
		return nil
	}
	report.PrintNames(cmd.OutOrStdout(), names)
	return nil
}
