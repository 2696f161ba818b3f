package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/report"
)

var leadersJSON bool

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Rank shooters by field goal percentage",
	Long: `Rank shooters by field goal percentage.

Players below --min-shots attempts are skipped. Defaults come from the
leaders.min_shots and leaders.limit config keys.`,
	Args: cobra.NoArgs,
	RunE: runLeaders,
}

func init() {
	leadersCmd.Flags().Int("min-shots", 100, "minimum attempts to qualify")
	leadersCmd.Flags().Int("limit", 10, "rows to print (0 = all)")
	leadersCmd.Flags().BoolVar(&leadersJSON, "json", false, "print JSON instead of a table")
	v.BindPFlag("leaders.min_shots", leadersCmd.Flags().Lookup("min-shots"))
	v.BindPFlag("leaders.limit", leadersCmd.Flags().Lookup("limit"))
}

func runLeaders(cmd *cobra.Command, args []string) error {
	stats, err := loadStats()
	if err != nil {
		return err
	}
	leaders := stats.Leaders(cfg.Leaders.MinShots, cfg.Leaders.Limit)
	if leadersJSON {
		return report.PrintJSON(cmd.OutOrStdout(), leaders)
	}
	report.PrintLeaders(cmd.OutOrStdout(), leaders)
	return nil
}
