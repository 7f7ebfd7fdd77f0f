// Package inspect reads generated decks and workbooks back as plain text.
package inspect

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/xuri/excelize/v2"

	"github.com/northwind-training/coursegen/internal/ux"
)

// Slide is the text of one slide, one entry per non-empty paragraph in
// drawing order, plus its speaker notes.
type Slide struct {
	Number int
	Lines  []string
	Notes  string
}

// Sheet is one worksheet and its rows.
type Sheet struct {
	Name string
	Rows [][]string
}

// Slides reads the paragraph texts of every slide in a .pptx file.
func Slides(path string) ([]Slide, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("inspect: opening %s: %w", filepath.Base(path), err)
	}

	var out []Slide
	for i, slide := range pres.GetAllSlides() {
		s := Slide{Number: i + 1, Notes: strings.TrimSpace(slide.GetNotes())}
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				if text = strings.TrimSpace(text); text != "" {
					s.Lines = append(s.Lines, text)
				}
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// Sheets reads every worksheet of a .xlsx file.
func Sheets(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("inspect: opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var out []Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("inspect: reading sheet %q: %w", name, err)
		}
		out = append(out, Sheet{Name: name, Rows: rows})
	}
	return out, nil
}

// Print writes a readable dump of a deck or workbook to w.
func Print(w io.Writer, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pptx":
		slides, err := Slides(path)
		if err != nil {
			return err
		}
		printSlides(w, slides)
	case ".xlsx":
		sheets, err := Sheets(path)
		if err != nil {
			return err
		}
		printSheets(w, sheets)
	default:
		return fmt.Errorf("inspect: %s is not a .pptx or .xlsx file", filepath.Base(path))
	}
	return nil
}

func printSlides(w io.Writer, slides []Slide) {
	for _, s := range slides {
		fmt.Fprintf(w, "%s── Slide %d ──%s\n", ux.Bold, s.Number, ux.Reset)
		for _, line := range s.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
		if s.Notes != "" {
			fmt.Fprintf(w, "  %snotes: %s%s\n", ux.Dim, s.Notes, ux.Reset)
		}
		fmt.Fprintln(w)
	}
}

func printSheets(w io.Writer, sheets []Sheet) {
	for _, sh := range sheets {
		fmt.Fprintf(w, "%s── Sheet %s ──%s\n", ux.Bold, sh.Name, ux.Reset)
		if len(sh.Rows) == 0 {
			fmt.Fprintf(w, "  %s(empty)%s\n\n", ux.Dim, ux.Reset)
			continue
		}
		width := 0
		for _, r := range sh.Rows {
			width = max(width, len(r))
		}
		header := make([]string, width)
		for i := range header {
			header[i], _ = excelize.ColumnNumberToName(i + 1)
		}
		table := ux.NewTable(w, header)
		for _, r := range sh.Rows {
			row := make([]string, width)
			copy(row, r)
			table.Append(row)
		}
		table.Render()
		fmt.Fprintln(w)
	}
}
