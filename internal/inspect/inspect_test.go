package inspect

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/deck"
)

func writeDeck(t *testing.T, key string) (string, *content.Deck) {
	t.Helper()
	d, err := content.Get(key)
	require.NoError(t, err)
	path, err := deck.Write(context.Background(), d, t.TempDir(), deck.Options{})
	require.NoError(t, err)
	return path, d
}

func TestSlides_ReadsDeck(t *testing.T) {
	path, d := writeDeck(t, "m02")

	slides, err := Slides(path)
	require.NoError(t, err)
	require.Len(t, slides, len(d.Slides))

	total := len(d.Slides)
	assert.Contains(t, slides[0].Lines, fmt.Sprintf("1 / %d", total))
	assert.Contains(t, slides[total-1].Lines, fmt.Sprintf("%d / %d", total, total))
	assert.Contains(t, slides[0].Lines, d.Title)
	assert.Equal(t, d.Slides[0].Notes, slides[0].Notes)
}

func TestSheets_ReadsWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Participant ID"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "P01"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "done"))
	_, err := f.NewSheet("Links")
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	sheets, err := Sheets(path)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "Sheet1", sheets[0].Name)
	assert.Equal(t, [][]string{{"Participant ID"}, {"P01", "done"}}, sheets[0].Rows)
	assert.Empty(t, sheets[1].Rows)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, path))
	out := buf.String()
	assert.Contains(t, out, "Sheet Sheet1")
	assert.Contains(t, out, "P01")
	assert.Contains(t, out, "(empty)")
}

func TestPrint_Deck(t *testing.T) {
	path, d := writeDeck(t, "intro")

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, path))
	assert.Contains(t, buf.String(), "Slide 1")
	assert.Contains(t, buf.String(), fmt.Sprintf("Slide %d", len(d.Slides)))
	assert.Contains(t, buf.String(), "notes: "+d.Slides[0].Notes)
}

func TestPrint_UnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))
	err := Print(&bytes.Buffer{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a .pptx or .xlsx file")
}

func TestSlides_MissingFile(t *testing.T) {
	_, err := Slides(filepath.Join(t.TempDir(), "missing.pptx"))
	require.Error(t, err)
}
