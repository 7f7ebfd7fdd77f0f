package handout

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-training/coursegen/internal/content"
)

func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestNames(t *testing.T) {
	d, _ := content.Get("m04")
	assert.Equal(t, "Module-04-Speaker-Notes.docx", NotesName(d))
	assert.Equal(t, "Module-04-Outline.pdf", OutlineName(d))

	intro, _ := content.Get("intro")
	assert.Equal(t, "00-Course-Introduction-Outline.pdf", OutlineName(intro))
}

func TestNotes_ContainsEverySlide(t *testing.T) {
	d, _ := content.Get("m09")
	data, err := Notes(d, Options{Date: "2026-02-09"})
	require.NoError(t, err)

	xml := documentXML(t, data)
	assert.Contains(t, xml, "Slide 1 / 28")
	assert.Contains(t, xml, "Slide 28 / 28: End of Module 9")
	assert.Contains(t, xml, "Speaker notes")
	assert.Contains(t, xml, "Set-SPOTenant -HideSyncButtonOnTeamSite")
}

func TestOutline_IsPDF(t *testing.T) {
	d, _ := content.Get("m01")
	data, err := Outline(d, Options{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestWrite_BothFiles(t *testing.T) {
	dir := t.TempDir()
	d, _ := content.Get("m03")
	paths, err := Write(context.Background(), d, dir, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "Module-03-Speaker-Notes.docx"),
		filepath.Join(dir, "Module-03-Outline.pdf"),
	}, paths)
}

func TestWrite_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d, _ := content.Get("m03")
	paths, err := Write(ctx, d, t.TempDir(), Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
}

func TestSlideTitle_Cover(t *testing.T) {
	d, _ := content.Get("m06")
	assert.True(t, strings.HasPrefix(slideTitle(d, &d.Slides[0]), "Module 6: "))
	assert.Equal(t, d.Slides[1].Title, slideTitle(d, &d.Slides[1]))
}

func TestPoints(t *testing.T) {
	s := &content.Slide{
		Kind:    content.KindSteps,
		Intro:   "Intro",
		Items:   []content.Item{{Tag: "Task 1", Heading: "Create", Body: "a site", Bullets: []string{"x"}}},
		Callout: "Careful",
	}
	assert.Equal(t, []string{"Intro", "Task 1: Create - a site", "  x", "Careful"}, points(s))

	quiz := &content.Slide{Kind: content.KindQuiz, Items: []content.Item{{Heading: "Why?", Body: "Because"}}}
	assert.Equal(t, []string{"Why?"}, points(quiz))
}

func TestRowHeight_GrowsWithText(t *testing.T) {
	short := rowHeight("short", 9)
	long := rowHeight(strings.Repeat("word ", 100), 9)
	assert.Greater(t, long, short)
}
