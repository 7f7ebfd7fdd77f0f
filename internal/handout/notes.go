package handout

import (
	"fmt"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/theme"
)

const tableWidth = 9000

var (
	fontHeading = &style.FontStyle{Bold: true, Size: 12, Color: string(theme.AccentBlue)}
	fontBody    = &style.FontStyle{Size: 10, Color: string(theme.DarkText)}
	fontMuted   = &style.FontStyle{Size: 9, Color: string(theme.MidGray)}
	fontNotes   = &style.FontStyle{Size: 10, Italic: true, Color: string(theme.DarkBG)}
)

// Notes builds the speaker-notes document: one heading per slide with its
// visible text and its notes.
func Notes(d *content.Deck, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	doc := goword.New()
	doc.Properties.Title = d.Label + " Speaker Notes"
	doc.Properties.Creator = "Northwind Training"
	doc.Properties.Description = opts.CourseTitle

	sec := doc.AddSection()
	addTable := func(t *content.Table) {
		cols := len(t.Header)
		w := tableWidth / cols
		ts := &style.TableStyle{Width: tableWidth, Alignment: "center"}
		ts.SetAllBorders("single", 4, "D9D9D9")
		tbl := sec.AddTable(ts)
		tbl.Grid = make([]int, cols)
		for i := range tbl.Grid {
			tbl.Grid[i] = w
		}

		header := tbl.AddRow(0, &style.RowStyle{IsHeader: true})
		for _, h := range t.Header {
			header.AddCell(w, &style.CellStyle{
				Shading: &style.Shading{Fill: string(theme.AccentBlue)},
			}).AddText(h, &style.FontStyle{Bold: true, Size: 9, Color: string(theme.White)}, nil)
		}
		for _, r := range t.Rows {
			row := tbl.AddRow(0, nil)
			for i := 0; i < cols; i++ {
				cell := ""
				if i < len(r) {
					cell = r[i]
				}
				row.AddCell(w, nil).AddText(cell, &style.FontStyle{Size: 9}, nil)
			}
		}
		sec.AddTextBreak(1)
	}

	sec.AddTitle(d.Label+": "+d.Title, 1)
	sec.AddText(opts.CourseTitle, fontMuted, &style.ParagraphStyle{Alignment: style.AlignCenter})
	if opts.Date != "" {
		sec.AddText("Generated for delivery on "+opts.Date, fontMuted,
			&style.ParagraphStyle{Alignment: style.AlignCenter})
	}
	sec.AddTextBreak(1)

	total := len(d.Slides)
	for i := range d.Slides {
		s := &d.Slides[i]
		sec.AddTitle(fmt.Sprintf("Slide %d / %d: %s", i+1, total, slideTitle(d, s)), 2)
		sec.AddText(s.Kind.String(), fontMuted, nil)

		if s.Table != nil && len(s.Table.Header) > 0 {
			addTable(s.Table)
		}
		for _, p := range points(s) {
			sec.AddText("• "+p, fontBody, &style.ParagraphStyle{Indent: 360})
		}
		if s.Kind == content.KindQuiz {
			for n, q := range s.Items {
				if q.Body != "" {
					sec.AddText(fmt.Sprintf("Q%d answer: %s", n+1, q.Body), fontBody, &style.ParagraphStyle{Indent: 360})
				}
			}
		}
		if s.Notes != "" {
			sec.AddText("Speaker notes", fontHeading, nil)
			sec.AddText(s.Notes, fontNotes, &style.ParagraphStyle{SpaceAfter: 200})
		}
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("writing speaker notes: %w", err)
	}
	return data, nil
}
