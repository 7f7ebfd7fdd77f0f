package handout

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/theme"
)

// Page body width in mm for A4 with 15mm side margins.
const bodyWidth = 180.0

func pdfColor(c theme.Color) *props.Color {
	r, g, b := c.RGB()
	return &props.Color{Red: r, Green: g, Blue: b}
}

// rowHeight estimates the height in mm a wrapped paragraph needs.
func rowHeight(s string, size float64) float64 {
	charW := size * 0.5 * 0.3528
	perLine := math.Max(1, math.Floor(bodyWidth/charW))
	lines := math.Ceil(float64(utf8.RuneCountInString(s)) / perLine)
	return math.Max(1, lines)*size*0.3528*1.45 + 1
}

func addLine(m core.Maroto, s string, p props.Text) {
	s = theme.Plain(s)
	if s == "" {
		return
	}
	if p.Family == "" {
		p.Family = fontfamily.Arial
	}
	m.AddRow(rowHeight(s, p.Size), col.New(12).Add(text.New(s, p)))
}

// Outline builds a PDF listing every slide's title, body text and notes.
func Outline(d *content.Deck, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()
	m := maroto.New(cfg)

	addLine(m, d.Label+": "+d.Title, props.Text{
		Size:  18,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: pdfColor(theme.AccentBlue),
	})
	addLine(m, opts.CourseTitle, props.Text{Size: 10, Align: align.Center, Color: pdfColor(theme.MidGray)})
	if opts.Date != "" {
		addLine(m, opts.Date, props.Text{Size: 9, Align: align.Center, Color: pdfColor(theme.MidGray)})
	}
	m.AddRow(6)

	total := len(d.Slides)
	for i := range d.Slides {
		s := &d.Slides[i]
		addLine(m, fmt.Sprintf("%d / %d  %s", i+1, total, slideTitle(d, s)), props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Color: pdfColor(theme.DarkBG),
			Top:   2,
		})
		for _, p := range points(s) {
			addLine(m, "- "+p, props.Text{Size: 9, Left: 4, Color: pdfColor(theme.DarkText)})
		}
		if s.Table != nil {
			addLine(m, strings.Join(s.Table.Header, " | "), props.Text{Size: 8, Style: fontstyle.Bold, Left: 4})
			for _, r := range s.Table.Rows {
				addLine(m, strings.Join(r, " | "), props.Text{Size: 8, Left: 4, Color: pdfColor(theme.DarkText)})
			}
		}
		if s.Notes != "" {
			addLine(m, s.Notes, props.Text{
				Size:  9,
				Style: fontstyle.Italic,
				Left:  4,
				Color: pdfColor(theme.MidGray),
			})
		}
		m.AddRow(3)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating outline: %w", err)
	}
	return doc.GetBytes(), nil
}
