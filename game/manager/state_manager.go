package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SessionStats aggregates the runs played during one process lifetime.
type SessionStats struct {
	UUID      string     `json:"uuid"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Runs      []RunStats `json:"runs"`
}

// RunStats describes a single run from spawn to game over.
type RunStats struct {
	Score    int           `json:"score"`
	Length   int           `json:"length"`
	Cause    string        `json:"cause"`
	Duration time.Duration `json:"duration"`
}

// StateManager records run history for the session and saves it as JSON.
// Pure telemetry; gameplay never reads it back.
type StateManager struct {
	stats SessionStats
	dir   string
}

func NewStateManager(dir string) *StateManager {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("could not create data directory")
	}
	return &StateManager{
		dir: dir,
		stats: SessionStats{
			UUID:      uuid.New().String(),
			StartTime: time.Now(),
		},
	}
}

// RecordRun appends one finished run to the session history.
func (sm *StateManager) RecordRun(run RunStats) {
	sm.stats.Runs = append(sm.stats.Runs, run)
}

func (sm *StateManager) Runs() []RunStats {
	return sm.stats.Runs
}

// Save writes the session stats to the data directory, best-effort.
func (sm *StateManager) Save() {
	sm.stats.EndTime = time.Now()
	data, err := json.MarshalIndent(sm.stats, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("could not encode session stats")
		return
	}
	file := filepath.Join(sm.dir, sm.stats.UUID+".json")
	if err := os.WriteFile(file, data, 0644); err != nil {
		log.Warn().Err(err).Str("file", file).Msg("could not save session stats")
	}
}
