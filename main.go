// Package main is the entry point for the nbametrics CLI tool, which indexes
// NBA shot logs and computes player, team and defensive metrics.
package main

import "github.com/pable/go-nba-metrics/cmd"

func main() {
	cmd.Execute()
}
