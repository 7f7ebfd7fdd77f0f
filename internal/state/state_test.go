package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoExistingManifest(t *testing.T) {
	st, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if st.Recorded() {
		t.Fatalf("empty output dir should have no recorded build, got %q", st.RunID)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := New(4)
	original.Advance()
	original.Finish(StatusFailed, "deck m03")
	if err := original.Save(dir); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, original.RunID, loaded.RunID)
	assert.Equal(t, StatusFailed, loaded.Status)
	assert.Equal(t, "deck m03", loaded.FailedJob)
	assert.Equal(t, 1, loaded.JobsDone)
	assert.Equal(t, 4, loaded.JobsTotal)

	if _, err := os.Stat(filepath.Join(dir, DirName, "manifest.json")); err != nil {
		t.Fatalf("manifest not under %s: %v", DirName, err)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFileAtomic(statePath(dir), []byte("{"), 0644))
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest")
}

func TestNew_UniqueRunIDs(t *testing.T) {
	a, b := New(1), New(1)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, StatusRunning, a.Status)
}

func TestElapsed(t *testing.T) {
	s := &State{StartedAt: time.Unix(100, 0), FinishedAt: time.Unix(165, 0)}
	assert.Equal(t, 65*time.Second, s.Elapsed())
}

func TestRecord_ReplacesSamePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DecksDir, "Module-01-Slides.pptx")
	require.NoError(t, WriteFileAtomic(path, []byte("one"), 0644))

	s := New(1)
	a, err := s.Record(dir, path, "deck m01")
	require.NoError(t, err)
	assert.Equal(t, "decks/Module-01-Slides.pptx", a.Path)
	assert.Equal(t, KindPPTX, a.Kind)
	assert.EqualValues(t, 3, a.Size)

	require.NoError(t, WriteFileAtomic(path, []byte("longer"), 0644))
	_, err = s.Record(dir, path, "deck m01")
	require.NoError(t, err)
	require.Len(t, s.Artifacts, 1)
	assert.EqualValues(t, 6, s.Artifacts[0].Size)
}

func TestRecord_MissingFile(t *testing.T) {
	s := New(1)
	_, err := s.Record(t.TempDir(), "/nonexistent/file.pdf", "x")
	require.Error(t, err)
}

func TestCheckOutputs(t *testing.T) {
	dir := t.TempDir()
	kept := filepath.Join(dir, "handouts", "Module-02-Outline.pdf")
	require.NoError(t, WriteFileAtomic(kept, []byte("%PDF"), 0644))

	s := New(1)
	_, err := s.Record(dir, kept, "handouts m02")
	require.NoError(t, err)
	s.Artifacts = append(s.Artifacts, Artifact{Path: "decks/gone.pptx", Kind: KindPPTX})

	assert.Equal(t, []string{"decks/gone.pptx"}, s.CheckOutputs(dir))
	assert.Equal(t, map[string]int{KindPDF: 1, KindPPTX: 1}, s.CountByKind())
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, EnsureDir(dir))
	for _, sub := range []string{DirName, DecksDir, HandoutsDir, PacksDir} {
		info, err := os.Stat(filepath.Join(dir, sub))
		require.NoError(t, err, sub)
		assert.True(t, info.IsDir(), sub)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindXLSX, KindOf("P01-Training-Pack.XLSX"))
	assert.Equal(t, KindTXT, KindOf("TXT-Templates/M01.txt"))
	assert.Equal(t, "", KindOf("README"))
}
