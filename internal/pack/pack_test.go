package pack

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// zipEntries returns the parts of an OOXML file whose names start with
// prefix, keyed by part name.
func zipEntries(t *testing.T, path, prefix string) map[string]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := make(map[string]string)
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, prefix) || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		out[f.Name] = string(b)
	}
	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestParticipant_Names(t *testing.T) {
	p := Participant{ID: "P07"}
	assert.Equal(t, "NW-P07-", p.Prefix())
	assert.Equal(t, "NW-P07-ProjectSite", p.ProjectSite())
	assert.Equal(t, "NW-P07-Contracts", p.Contracts())
	assert.Equal(t, "NW-P07-TermGroup", p.TermGroup())
	assert.Equal(t, "NW-P07-ContractType", p.ContractType())
	assert.Equal(t, "NW-P07-AppRequests", p.AppRequests())
}

func TestRoster_FromCount(t *testing.T) {
	ps, err := Roster(RosterSpec{Count: 10, Prefix: "P", Pattern: `P\d{2}`})
	require.NoError(t, err)
	require.Len(t, ps, 10)
	assert.Equal(t, "P01", ps[0].ID)
	assert.Equal(t, "P10", ps[9].ID)
}

func TestRoster_PatternIsAnchored(t *testing.T) {
	_, err := Roster(RosterSpec{Count: 3, Prefix: "XP", Pattern: `P\d{2}`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"XP01"`)
}

func TestRoster_BadPattern(t *testing.T) {
	_, err := Roster(RosterSpec{Count: 1, Prefix: "P", Pattern: `P(`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "participant pattern")
}

func TestRoster_Empty(t *testing.T) {
	_, err := Roster(RosterSpec{Prefix: "P", Pattern: `P\d{2}`})
	require.Error(t, err)
}

func writeRoster(t *testing.T, cells ...string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRoster_FromWorkbook(t *testing.T) {
	path := writeRoster(t, "Participant ID", "A01", "", "A02", "A05")
	ps, err := Roster(RosterSpec{Pattern: `A\d{2}`, File: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"A01", "A02", "A05"}, IDs(ps))
}

func TestRoster_WorkbookDuplicate(t *testing.T) {
	path := writeRoster(t, "P01", "P02", "P01")
	_, err := Roster(RosterSpec{Pattern: `P\d{2}`, File: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestRoster_RejectsPathSeparators(t *testing.T) {
	for _, id := range []string{"../escape", `P01\x`, "..", "team/P01"} {
		path := writeRoster(t, "P01", id)
		_, err := Roster(RosterSpec{Pattern: `.+`, File: path})
		require.Error(t, err, id)
		assert.Contains(t, err.Error(), "path separators", id)
	}

	_, err := Roster(RosterSpec{Count: 2, Prefix: "x/", Pattern: `.+`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path separators")
}

func TestRoster_NotXlsx(t *testing.T) {
	_, err := Roster(RosterSpec{Pattern: `P\d{2}`, File: "roster.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".xlsx")
}

func TestTemplateSets(t *testing.T) {
	names := participantSet.Names()
	assert.Len(t, names, 26)
	assert.Contains(t, names, "M04-Contract-Draft-001.txt")
	assert.Contains(t, names, "M12-Governance-DLP-Notes.txt")
	assert.Equal(t, []string{
		"Trainer-Announcements.txt",
		"Trainer-Modules-04-12-Runbook.txt",
		"Trainer-Roster.txt",
	}, trainerSet.Names())
}

func TestRosterRange(t *testing.T) {
	assert.Equal(t, "", templateData{}.RosterRange())
	assert.Equal(t, "P01", templateData{Roster: []Participant{{ID: "P01"}}}.RosterRange())
	assert.Equal(t, "P01–P03", templateData{Roster: []Participant{{ID: "P01"}, {ID: "P02"}, {ID: "P03"}}}.RosterRange())
}

func TestBuildParticipant(t *testing.T) {
	dir := t.TempDir()
	p := Participant{ID: "P03"}
	paths, err := BuildParticipant(context.Background(), p, dir, Options{})
	require.NoError(t, err)
	assert.Len(t, paths, 4+len(participantSet.files))

	base := filepath.Join(dir, "P03", "P03-Training-Pack")
	for _, ext := range []string{".docx", ".pdf", ".pptx", ".xlsx"} {
		assert.FileExists(t, base+ext)
	}
	assert.True(t, strings.HasPrefix(readFile(t, base+".pdf"), "%PDF"))

	txt := filepath.Join(dir, "P03", TemplatesDir)
	termSet := readFile(t, filepath.Join(txt, "M05-TermSet-ContractType.txt"))
	assert.True(t, strings.HasPrefix(termSet, "Northwind Training Scenario — P03\n"))
	assert.Contains(t, termSet, "Date: 2026-02-09\n")
	assert.Contains(t, termSet, "Term group: NW-P03-TermGroup\n")
	assert.Contains(t, termSet, "Term set:  NW-P03-ContractType\n")

	queries := readFile(t, filepath.Join(txt, "M06-Search-Test-Queries.txt"))
	assert.Contains(t, queries, `"Northwind Search Drill Alpha - P03"`)

	changelog := readFile(t, filepath.Join(txt, "M04-Contract-Changelog.txt"))
	assert.True(t, strings.HasSuffix(changelog, "- 2026-02-09 | v0.1 | P03 | Initial training draft\n"))
}

func TestBuildParticipant_Workbook(t *testing.T) {
	dir := t.TempDir()
	_, err := BuildParticipant(context.Background(), Participant{ID: "P03"}, dir, Options{})
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(dir, "P03", "P03-Training-Pack.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetTracker, SheetLinks}, f.GetSheetList())
	v, err := f.GetCellValue(SheetTracker, "B1")
	require.NoError(t, err)
	assert.Equal(t, "P03", v)
	v, err = f.GetCellValue(SheetTracker, "B2")
	require.NoError(t, err)
	assert.Equal(t, "NW-P03-ProjectSite", v)
	v, err = f.GetCellValue(SheetTracker, "C5")
	require.NoError(t, err)
	assert.Equal(t, "Done (Y/N)", v)
	v, err = f.GetCellValue(SheetTracker, "B21")
	require.NoError(t, err)
	assert.Equal(t, "Build approval flow + customize form (Power Platform)", v)

	links, err := f.GetRows(SheetLinks)
	require.NoError(t, err)
	assert.Len(t, links, 1+len(referenceLinks))
}

func TestBuildParticipant_Slides(t *testing.T) {
	dir := t.TempDir()
	_, err := BuildParticipant(context.Background(), Participant{ID: "P03"}, dir, Options{})
	require.NoError(t, err)

	slides := zipEntries(t, filepath.Join(dir, "P03", "P03-Training-Pack.pptx"), "ppt/slides/slide")
	require.Len(t, slides, 3)
	for name, xml := range slides {
		assert.Contains(t, xml, "Project Northwind Intranet Modernization | 2026-02-09 | P03", name)
	}
	assert.Contains(t, slides["ppt/slides/slide2.xml"], "NW-P03-Contracts")
}

func TestBuildParticipant_Document(t *testing.T) {
	dir := t.TempDir()
	_, err := BuildParticipant(context.Background(), Participant{ID: "P03"}, dir, Options{Date: "2026-03-02"})
	require.NoError(t, err)

	doc := zipEntries(t, filepath.Join(dir, "P03", "P03-Training-Pack.docx"), "word/document")
	require.Contains(t, doc, "word/document.xml")
	body := doc["word/document.xml"]
	assert.Contains(t, body, "Participant Pack — P03")
	assert.Contains(t, body, "Date: 2026-03-02")
	assert.Contains(t, body, "Primary practice site (persistent): NW-P03-ProjectSite")
}

func TestBuildParticipant_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BuildParticipant(ctx, Participant{ID: "P01"}, t.TempDir(), Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildTrainer(t *testing.T) {
	dir := t.TempDir()
	tdir := filepath.Join(dir, DefaultTrainerID, TemplatesDir)
	require.NoError(t, os.MkdirAll(tdir, 0755))
	for _, name := range legacyTrainerTemplates {
		require.NoError(t, os.WriteFile(filepath.Join(tdir, name), []byte("old"), 0644))
	}

	roster := []Participant{{ID: "P01"}, {ID: "P02"}, {ID: "P03"}}
	paths, err := BuildTrainer(context.Background(), roster, dir, Options{})
	require.NoError(t, err)
	assert.Len(t, paths, 4+len(trainerSet.files))

	for _, name := range legacyTrainerTemplates {
		assert.NoFileExists(t, filepath.Join(tdir, name))
	}

	rosterTxt := readFile(t, filepath.Join(tdir, "Trainer-Roster.txt"))
	assert.True(t, strings.HasSuffix(rosterTxt,
		"Roster\n- P01: NW-P01-ProjectSite\n- P02: NW-P02-ProjectSite\n- P03: NW-P03-ProjectSite\n"))
	announce := readFile(t, filepath.Join(tdir, "Trainer-Announcements.txt"))
	assert.Contains(t, announce, "one of P01–P03.")

	f, err := excelize.OpenFile(filepath.Join(dir, DefaultTrainerID, TrainerBase+".xlsx"))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetRoster, SheetChecks, SheetIssueLog}, f.GetSheetList())
	rows, err := f.GetRows(SheetRoster)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "P02", rows[2][0])
	checks, err := f.GetRows(SheetChecks)
	require.NoError(t, err)
	assert.Len(t, checks, 1+len(trainerChecks))
}

func TestBuildTrainer_CustomID(t *testing.T) {
	dir := t.TempDir()
	_, err := BuildTrainer(context.Background(), []Participant{{ID: "P01"}}, dir, Options{TrainerID: "LEAD"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "LEAD", TrainerBase+".pdf"))

	slides := zipEntries(t, filepath.Join(dir, "LEAD", TrainerBase+".pptx"), "ppt/slides/slide")
	assert.Contains(t, slides["ppt/slides/slide3.xml"], "Roster: P01")
}

func TestBuildTrainer_EmptyRoster(t *testing.T) {
	_, err := BuildTrainer(context.Background(), nil, t.TempDir(), Options{})
	require.Error(t, err)
}
