package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// IndexVersion identifies the schema/stat-blob shape written by this build.
const IndexVersion = "1.0"

// statsKey is the fixed key under which the serialized IndexStats blob lives
// in the index_stats table.
const statsKey = "stats"

// IndexStats summarizes one completed index run.
type IndexStats struct {
	TotalFiles   int            `json:"total_files"`
	TotalLines   int            `json:"total_lines"`
	TotalSize    int64          `json:"total_size"`
	Languages    map[string]int `json:"languages"`
	LastIndexed  time.Time      `json:"last_indexed"`
	IndexVersion string         `json:"index_version"`
	// RunID identifies the indexing pass that produced this blob, for
	// correlating it with that pass's log lines.
	RunID string `json:"run_id"`
}

// PutStats serializes stats as JSON and stores it under the fixed stats key,
// replacing any previous value.
func (s *Store) PutStats(stats IndexStats) error {
	blob, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO index_stats (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, statsKey, string(blob))
	if err != nil {
		return fmt.Errorf("put stats: %w", err)
	}
	return nil
}

// GetStats loads the most recently stored IndexStats. It returns
// ErrNotFound if no index run has completed yet.
func (s *Store) GetStats() (IndexStats, error) {
	var blob string
	err := s.db.QueryRow(`SELECT value FROM index_stats WHERE key = ?`, statsKey).Scan(&blob)
	if err == sql.ErrNoRows {
		return IndexStats{}, ErrNotFound
	}
	if err != nil {
		return IndexStats{}, fmt.Errorf("get stats: %w", err)
	}

	var stats IndexStats
	if err := json.Unmarshal([]byte(blob), &stats); err != nil {
		return IndexStats{}, fmt.Errorf("unmarshal stats: %w", err)
	}
	return stats, nil
}
