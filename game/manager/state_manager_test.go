package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStateManagerSavesSessionJSON(t *testing.T) {
	dir := t.TempDir()
	sm := NewStateManager(dir)

	sm.RecordRun(RunStats{Score: 4, Length: 7, Cause: "wall", Duration: 3 * time.Second})
	sm.RecordRun(RunStats{Score: 1, Length: 4, Cause: "self", Duration: time.Second})
	sm.Save()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("data dir holds %d files, want 1", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	var stats SessionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		t.Fatalf("saved stats not valid JSON: %v", err)
	}
	if stats.UUID == "" {
		t.Error("session uuid missing")
	}
	if len(stats.Runs) != 2 {
		t.Fatalf("saved %d runs, want 2", len(stats.Runs))
	}
	if stats.Runs[0].Score != 4 || stats.Runs[0].Cause != "wall" {
		t.Errorf("first run = %+v", stats.Runs[0])
	}
	if stats.EndTime.Before(stats.StartTime) {
		t.Error("end time precedes start time")
	}
}

func TestSaveIntoUnwritableDirIsSwallowed(t *testing.T) {
	sm := NewStateManager(filepath.Join(t.TempDir(), "a\x00b"))
	sm.RecordRun(RunStats{Score: 1})
	sm.Save() // must not panic
}
