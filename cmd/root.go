package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/config"
	"github.com/pable/go-nba-metrics/internal/logging"
	"github.com/pable/go-nba-metrics/internal/model"
)

var (
	cfgFile string
	v       = config.New()
	cfg     = &config.Config{}
	log     = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "nbametrics",
	Short: "NBA shot log metrics tool",
	Long:  "Load an NBA shot log CSV and query player, team and defensive statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		log = logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		log.WithFields(logrus.Fields{
			"data":    cfg.Data,
			"command": cmd.Name(),
		}).Debug("Configuration resolved")
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, model.ErrNotFound) {
			fmt.Fprintln(os.Stderr, "Point --data (or NBAMETRICS_DATA) at a shot log CSV.")
		}
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default .nbametrics.yaml in . or $HOME)")
	pf.String("data", "shot_logs.csv", "path to the shot log CSV")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text or json)")

	v.BindPFlag("data", pf.Lookup("data"))
	v.BindPFlag("log_level", pf.Lookup("log-level"))
	v.BindPFlag("log_format", pf.Lookup("log-format"))

	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(shellCmd)
}
