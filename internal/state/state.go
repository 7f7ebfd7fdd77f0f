package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	StatusRunning     = "running"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
	StatusInterrupted = "interrupted"
)

// DirName is the bookkeeping directory inside the output directory.
const DirName = ".coursegen"

// State is the build manifest: one run and the files it produced.
type State struct {
	RunID      string     `json:"run_id"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
	JobsDone   int        `json:"jobs_done"`
	JobsTotal  int        `json:"jobs_total"`
	FailedJob  string     `json:"failed_job,omitempty"`
	Artifacts  []Artifact `json:"artifacts"`
}

// Dir returns the bookkeeping directory for an output directory.
func Dir(outDir string) string {
	return filepath.Join(outDir, DirName)
}

func statePath(outDir string) string {
	return filepath.Join(Dir(outDir), "manifest.json")
}

// New starts a fresh manifest with a new run ID.
func New(jobs int) *State {
	return &State{
		RunID:     uuid.NewString(),
		Status:    StatusRunning,
		StartedAt: time.Now(),
		JobsTotal: jobs,
	}
}

// Load reads the manifest from the output directory. Returns an empty state
// (no RunID) if no build has been recorded yet.
func Load(outDir string) (*State, error) {
	data, err := os.ReadFile(statePath(outDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &State{}, nil
		}
		return nil, err
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return &s, nil
}

// Save writes the manifest to the output directory.
func (s *State) Save(outDir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(statePath(outDir), data, 0644)
}

// Recorded reports whether a build has ever been saved.
func (s *State) Recorded() bool {
	return s.RunID != ""
}

// Advance marks one more job as done.
func (s *State) Advance() {
	s.JobsDone++
}

// Finish records the final status. failedJob is empty unless status is failed.
func (s *State) Finish(status, failedJob string) {
	s.Status = status
	s.FailedJob = failedJob
	s.FinishedAt = time.Now()
}

// Elapsed is the wall time of the run, up to now if it is still running.
func (s *State) Elapsed() time.Duration {
	if s.FinishedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
