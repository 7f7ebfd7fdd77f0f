package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-training/coursegen/internal/state"
)

// mockDispatcher records calls, writes one small file per job and returns
// configurable errors. Jobs listed in partial write their file before
// failing or cancelling and return it along with the error.
type mockDispatcher struct {
	mu      sync.Mutex
	outDir  string
	calls   []string
	errors  map[string]error
	cancel  map[string]context.CancelFunc
	partial map[string]bool
}

func newMock(outDir string) *mockDispatcher {
	return &mockDispatcher{
		outDir:  outDir,
		errors:  make(map[string]error),
		cancel:  make(map[string]context.CancelFunc),
		partial: make(map[string]bool),
	}
}

func (m *mockDispatcher) Dispatch(ctx context.Context, job Job) ([]string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, job.Name)
	m.mu.Unlock()

	var written []string
	if m.partial[job.Name] {
		path, err := m.write(job)
		if err != nil {
			return nil, err
		}
		written = []string{path}
	}
	if cancel, ok := m.cancel[job.Name]; ok {
		cancel()
		return written, ctx.Err()
	}
	if err, ok := m.errors[job.Name]; ok {
		return written, err
	}
	if written != nil {
		return written, nil
	}
	path, err := m.write(job)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func (m *mockDispatcher) write(job Job) (string, error) {
	name := strings.ReplaceAll(job.Name, " ", "-") + ".txt"
	path := filepath.Join(m.outDir, name)
	return path, os.WriteFile(path, []byte(job.Name), 0644)
}

func (m *mockDispatcher) callNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := make([]string, len(m.calls))
	copy(c, m.calls)
	return c
}

func jobs(names ...string) []Job {
	out := make([]Job, len(names))
	for i, n := range names {
		out[i] = Job{Name: n, Kind: KindDeck}
	}
	return out
}

func newTestRunner(t *testing.T, js []Job) (*Runner, *mockDispatcher) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out")
	mock := newMock(out)
	return &Runner{Jobs: js, OutDir: out, Dispatcher: mock}, mock
}

func TestRun_AllJobsSucceed(t *testing.T) {
	r, mock := newTestRunner(t, jobs("a", "b", "c"))

	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if r.State.Status != state.StatusCompleted {
		t.Fatalf("status = %q", r.State.Status)
	}
	if r.State.JobsDone != 3 || r.State.JobsTotal != 3 {
		t.Fatalf("jobs = %d/%d", r.State.JobsDone, r.State.JobsTotal)
	}
	calls := mock.callNames()
	if len(calls) != 3 || calls[0] != "a" || calls[1] != "b" || calls[2] != "c" {
		t.Fatalf("calls = %v", calls)
	}
	if len(r.State.Artifacts) != 3 || r.State.Artifacts[1].Path != "b.txt" || r.State.Artifacts[1].Job != "b" {
		t.Fatalf("artifacts = %+v", r.State.Artifacts)
	}
	if r.State.RunID == "" {
		t.Fatal("run ID not set")
	}
}

func TestRun_FailStops(t *testing.T) {
	r, mock := newTestRunner(t, jobs("a", "b", "c"))
	mock.errors["b"] = fmt.Errorf("disk full")

	err := r.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), `job "b" failed: disk full`) {
		t.Fatalf("expected job b failure, got %v", err)
	}
	if r.State.Status != state.StatusFailed || r.State.FailedJob != "b" {
		t.Fatalf("status = %q, failed job = %q", r.State.Status, r.State.FailedJob)
	}
	for _, c := range mock.callNames() {
		if c == "c" {
			t.Fatal("job c should not have been called")
		}
	}

	saved, err := state.Load(r.OutDir)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != state.StatusFailed || saved.JobsDone != 1 {
		t.Fatalf("saved manifest = %+v", saved)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	r, mock := newTestRunner(t, jobs("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if r.State.Status != state.StatusInterrupted {
		t.Fatalf("status = %q", r.State.Status)
	}
	if len(mock.callNames()) != 0 {
		t.Fatal("no job should run after cancellation")
	}
}

func TestRun_CancelledMidJob(t *testing.T) {
	r, mock := newTestRunner(t, jobs("a", "b", "c"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mock.cancel["b"] = cancel

	err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if r.State.Status != state.StatusInterrupted || r.State.FailedJob != "b" {
		t.Fatalf("status = %q, job = %q", r.State.Status, r.State.FailedJob)
	}
	if calls := mock.callNames(); len(calls) != 2 {
		t.Fatalf("calls = %v", calls)
	}
}

func TestRun_KeepsEarlierArtifacts(t *testing.T) {
	r, _ := newTestRunner(t, jobs("a", "b"))
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	firstRun := r.State.RunID

	r2 := &Runner{Jobs: jobs("b"), OutDir: r.OutDir, Dispatcher: newMock(r.OutDir)}
	if err := r2.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if r2.State.RunID == firstRun {
		t.Fatal("second build should get a new run ID")
	}
	if len(r2.State.Artifacts) != 2 {
		t.Fatalf("artifacts = %+v", r2.State.Artifacts)
	}
}

func TestRun_WritesTiming(t *testing.T) {
	r, _ := newTestRunner(t, jobs("a", "b"))
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	timing, err := state.LoadTiming(r.OutDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(timing.Entries) != 2 || timing.Entries[1].Job != "b" || timing.Entries[1].Duration == "" {
		t.Fatalf("timing = %+v", timing.Entries)
	}
}

func TestRun_TimingOnlyCoversCurrentRun(t *testing.T) {
	r, _ := newTestRunner(t, jobs("a", "b", "c"))
	require.NoError(t, r.Run(context.Background()))

	r2 := &Runner{Jobs: jobs("d"), OutDir: r.OutDir, Dispatcher: newMock(r.OutDir)}
	require.NoError(t, r2.Run(context.Background()))

	timing, err := state.LoadTiming(r.OutDir)
	require.NoError(t, err)
	require.Len(t, timing.Entries, 1)
	assert.Equal(t, "d", timing.Entries[0].Job)
}

func TestRun_RecordsFilesWrittenBeforeFailure(t *testing.T) {
	r, mock := newTestRunner(t, jobs("a", "b"))
	mock.partial["b"] = true
	mock.errors["b"] = fmt.Errorf("pdf export failed")

	err := r.Run(context.Background())
	require.ErrorContains(t, err, "pdf export failed")

	saved, err := state.Load(r.OutDir)
	require.NoError(t, err)
	assert.Equal(t, state.StatusFailed, saved.Status)
	paths := make([]string, len(saved.Artifacts))
	for i, a := range saved.Artifacts {
		paths[i] = a.Path
	}
	assert.Equal(t, []string{"a.txt", "b.txt"}, paths)
	assert.Equal(t, "b", saved.Artifacts[1].Job)
}

func TestRun_RecordsFilesWrittenBeforeInterrupt(t *testing.T) {
	r, mock := newTestRunner(t, jobs("a", "b", "c"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mock.partial["b"] = true
	mock.cancel["b"] = cancel

	err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	saved, err := state.Load(r.OutDir)
	require.NoError(t, err)
	assert.Equal(t, state.StatusInterrupted, saved.Status)
	require.Len(t, saved.Artifacts, 2)
	assert.Equal(t, "b.txt", saved.Artifacts[1].Path)
}

func TestDefaultDispatcher_NoRun(t *testing.T) {
	_, err := DefaultDispatcher{}.Dispatch(context.Background(), Job{Name: "empty"})
	if err == nil || !strings.Contains(err.Error(), "nothing to run") {
		t.Fatalf("got %v", err)
	}
}
