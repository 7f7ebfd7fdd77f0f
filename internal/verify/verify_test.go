package verify

import (
	"archive/zip"
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
	"github.com/northwind-training/coursegen/internal/state"
)

// zipBytes returns a minimal Office package whose [Content_Types].xml
// declares the main part of kind. An empty kind declares no main part.
func zipBytes(t *testing.T, kind string) []byte {
	t.Helper()
	parts := map[string]string{
		state.KindPPTX: "/ppt/presentation.xml",
		state.KindDOCX: "/word/document.xml",
		state.KindXLSX: "/xl/workbook.xml",
	}
	types := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="xml" ContentType="application/xml"/>`
	if kind != "" {
		types += fmt.Sprintf(`<Override PartName="%s" ContentType="%s"/>`, parts[kind], mainParts[kind])
	}
	types += `</Types>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(types))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// build writes files into a fresh output dir and records them.
func build(t *testing.T, files map[string][]byte) (string, *state.State) {
	t.Helper()
	out := t.TempDir()
	require.NoError(t, state.EnsureDir(out))
	st := state.New(1)
	for name, data := range files {
		path := filepath.Join(out, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, data, 0644))
		_, err := st.Record(out, path, "job")
		require.NoError(t, err)
	}
	st.Finish(state.StatusCompleted, "")
	require.NoError(t, st.Save(out))
	return out, st
}

func TestVerify_AllGood(t *testing.T) {
	out, _ := build(t, map[string][]byte{
		"packs/P01/TXT-Templates/M04.txt":  []byte("Module 4 worksheet — P01\n"),
		"packs/P01/P01-Training-Pack.pdf":  []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n%%EOF\n"),
		"packs/P01/P01-Training-Pack.docx": zipBytes(t, state.KindDOCX),
		"packs/P01/P01-Training-Pack.xlsx": zipBytes(t, state.KindXLSX),
		"decks/Module-01-Slides.pptx":      zipBytes(t, state.KindPPTX),
	})

	st, problems, err := Verify(out)
	require.NoError(t, err)
	assert.Len(t, st.Artifacts, 5)
	assert.Empty(t, problems)
}

func TestVerify_ReportsProblems(t *testing.T) {
	out, _ := build(t, map[string][]byte{
		"decks/Module-02-Slides.pptx":    zipBytes(t, state.KindPPTX),
		"decks/Module-03-Slides.pptx":    zipBytes(t, state.KindPPTX),
		"handouts/Module-02-Outline.pdf": []byte("just some text, not a pdf\n"),
		"packs/P02/notes.txt":            []byte("short\n"),
	})

	require.NoError(t, os.Remove(filepath.Join(out, "decks", "Module-02-Slides.pptx")))
	require.NoError(t, os.WriteFile(filepath.Join(out, "packs", "P02", "notes.txt"), []byte("much longer now\n"), 0644))

	_, problems, err := Verify(out)
	require.NoError(t, err)

	byPath := make(map[string]string)
	for _, p := range problems {
		byPath[p.Path] = p.Reason
	}
	assert.Len(t, problems, 3)
	assert.Equal(t, "missing", byPath["decks/Module-02-Slides.pptx"])
	assert.Contains(t, byPath["handouts/Module-02-Outline.pdf"], "not pdf")
	assert.Contains(t, byPath["packs/P02/notes.txt"], "manifest says 6")
	assert.NotContains(t, byPath, "decks/Module-03-Slides.pptx")
}

func TestVerify_OfficeKindMustMatchPackage(t *testing.T) {
	out, _ := build(t, map[string][]byte{
		"decks/Module-04-Slides.pptx":      zipBytes(t, state.KindDOCX),
		"packs/P03/P03-Training-Pack.xlsx": zipBytes(t, state.KindPPTX),
		"packs/P03/P03-Training-Pack.docx": zipBytes(t, ""),
	})

	_, problems, err := Verify(out)
	require.NoError(t, err)

	byPath := make(map[string]string)
	for _, p := range problems {
		byPath[p.Path] = p.Reason
	}
	assert.Len(t, problems, 3)
	assert.Equal(t, "package is docx, not pptx", byPath["decks/Module-04-Slides.pptx"])
	assert.Equal(t, "package is pptx, not xlsx", byPath["packs/P03/P03-Training-Pack.xlsx"])
	assert.Equal(t, "no docx main part in [Content_Types].xml", byPath["packs/P03/P03-Training-Pack.docx"])
}

func TestVerify_GeneratedFiles(t *testing.T) {
	d, err := content.Get("m01")
	require.NoError(t, err)
	deckData, err := deck.Render(context.Background(), d, deck.Options{})
	require.NoError(t, err)

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Participant ID"))
	var book bytes.Buffer
	require.NoError(t, f.Write(&book))
	require.NoError(t, f.Close())

	out, _ := build(t, map[string][]byte{
		"decks/" + d.FileName:              deckData,
		"packs/P01/P01-Training-Pack.xlsx": book.Bytes(),
	})
	_, problems, err := Verify(out)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestVerify_NoBuild(t *testing.T) {
	_, _, err := Verify(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no build recorded")
}

func TestProblem_String(t *testing.T) {
	p := Problem{Path: "decks/a.pptx", Reason: "missing"}
	assert.Equal(t, "decks/a.pptx: missing", p.String())
}
