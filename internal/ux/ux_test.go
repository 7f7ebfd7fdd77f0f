package ux

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-training/coursegen/internal/state"
)

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 B", HumanSize(512))
	assert.Equal(t, "2.0 KB", HumanSize(2048))
	assert.Equal(t, "1.5 MB", HumanSize(3*1024*1024/2))
}

func TestRenderStatus_NoBuild(t *testing.T) {
	var buf bytes.Buffer
	RenderStatus(&buf, &state.State{}, nil, "/tmp/out")
	assert.Contains(t, buf.String(), "No build recorded in /tmp/out")
}

func TestRenderStatus_Build(t *testing.T) {
	out := t.TempDir()
	path := filepath.Join(out, "decks", "Module-01-Slides.pptx")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0644))

	st := state.New(2)
	_, err := st.Record(out, path, "deck m01")
	require.NoError(t, err)
	st.Artifacts = append(st.Artifacts, state.Artifact{Path: "decks/gone.pptx", Kind: "pptx", Size: 10})
	st.Advance()
	st.Finish(state.StatusFailed, "handouts m01")

	timing := &state.Timing{Entries: []state.TimingEntry{
		{Job: "deck m01", Start: time.Now(), Duration: "0m 01s"},
		{Job: "handouts m01", Start: time.Now()},
	}}

	var buf bytes.Buffer
	RenderStatus(&buf, st, timing, out)
	s := buf.String()
	assert.Contains(t, s, st.RunID)
	assert.Contains(t, s, "1/2 jobs")
	assert.Contains(t, s, "handouts m01")
	assert.Contains(t, s, "0m 01s")
	assert.Contains(t, s, "unfinished")
	assert.Contains(t, s, "pptx")
	assert.Contains(t, s, "1 files listed in the manifest are missing")
}
