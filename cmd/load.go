package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pable/go-nba-metrics/internal/aggregator"
	"github.com/pable/go-nba-metrics/internal/storage"
)

// loadStats loads and indexes the configured shot log.
func loadStats() (*aggregator.Stats, error) {
	start := time.Now()
	stats, err := aggregator.Load(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("load shot log: %w", err)
	}
	log.WithFields(logrus.Fields{
		"path":    cfg.Data,
		"records": stats.Len(),
		"players": len(stats.Players()),
		"teams":   len(stats.Teams()),
		"elapsed": time.Since(start).Round(time.Millisecond).String(),
	}).Info("Shot log loaded")
	return stats, nil
}

// mirror copies the indexed batch into a fresh in-memory SQLite database.
func mirror(stats *aggregator.Stats) (*storage.DB, error) {
	db, err := storage.Open(storage.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	if err := db.InsertShots(stats.Records()); err != nil {
		db.Close()
		return nil, fmt.Errorf("insert shots: %w", err)
	}
	if err := db.InsertTeamGames(stats.TeamGames()); err != nil {
		db.Close()
		return nil, fmt.Errorf("insert team games: %w", err)
	}
	log.WithField("records", stats.Len()).Debug("SQL mirror ready")
	return db, nil
}
