package deck

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/samber/lo"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/theme"
)

const gap = 0.18

// frame is the vertical band left for the body of a content slide.
type frame struct {
	top, bottom float64
}

func (f frame) height() float64 { return f.bottom - f.top }

func (c *canvas) draw(sl *ppt.Slide, s *content.Slide) {
	switch s.Kind {
	case content.KindCover:
		c.drawCover(sl, s)
	case content.KindSection:
		sectionDivider(sl, s.Title, s.Subtitle, s.Icon)
	case content.KindClosing:
		c.drawClosing(sl, s)
	case content.KindAgenda:
		drawAgenda(sl, c.header(sl, s), s.Items)
	case content.KindCards:
		drawCards(sl, c.header(sl, s), s.Items)
	case content.KindColumns:
		drawColumns(sl, c.header(sl, s), s.Items)
	case content.KindTable:
		drawTable(sl, c.header(sl, s), s.Table)
	case content.KindSteps:
		drawSteps(sl, c.header(sl, s), s.Items)
	case content.KindQuiz:
		drawQuiz(sl, c.header(sl, s), s.Items)
	default:
		drawBullets(sl, c.header(sl, s), s.Bullets)
	}
}

// header draws the light background, title block, intro line and callout
// shared by content slides, and returns the space left for the body.
func (c *canvas) header(sl *ppt.Slide, s *content.Slide) frame {
	addBackground(sl, theme.NearWhite)
	addTopBar(sl)
	addText(sl, theme.MarginX, 0.22, theme.ContentW, 0.55, s.Title, styleTitle)

	f := frame{top: theme.ContentTop, bottom: theme.FooterTop - 0.12}
	if s.Subtitle != "" {
		addText(sl, theme.MarginX, 0.72, theme.ContentW, 0.3, s.Subtitle, styleSubtitle)
		f.top += 0.08
	}
	if s.Intro != "" {
		addText(sl, theme.MarginX, f.top, theme.ContentW, 0.4, s.Intro,
			textStyle{size: 11, color: theme.MidGray})
		f.top += 0.45
	}
	if len(s.Bullets) > 0 && s.Kind != content.KindBullets {
		lineH, st := 0.24, styleSmall
		if len(s.Bullets) > 3 {
			lineH, st.size = 0.2, 9
		}
		h := lineH * float64(len(s.Bullets))
		addBullets(sl, theme.MarginX, f.top, theme.ContentW, h, s.Bullets, st)
		f.top += h + 0.05
	}
	if s.Callout != "" {
		h := 0.42
		f.bottom -= h + 0.08
		box := addRect(sl, theme.MarginX, f.bottom+0.08, theme.ContentW, h, theme.LightBlue)
		writeLines(box, s.Callout, textStyle{size: 10, color: theme.DarkText})
		addRect(sl, theme.MarginX, f.bottom+0.08, 0.05, h, theme.AccentBlue)
	}
	return f
}

func (c *canvas) drawCover(sl *ppt.Slide, s *content.Slide) {
	d := c.d
	addBackground(sl, theme.DarkBG)
	addRect(sl, 0, 0, theme.SlideWidth, 0.09, theme.AccentBlue)
	addRect(sl, 0, 0.09, theme.SlideWidth, 0.03, theme.AccentTeal)

	addText(sl, 0.75, 0.75, 8.5, 0.35, d.Badge,
		textStyle{size: 11, bold: true, color: theme.AccentTeal, align: alignCenter})

	big, sub := d.Label, d.Title
	if d.Number == 0 {
		big, sub = d.Title, content.Tagline
	}
	if s.Title != "" {
		big = s.Title
	}
	addText(sl, 0.75, 1.35, 8.5, 1.0, big, textStyle{size: 40, bold: true, color: theme.White, align: alignCenter})
	addText(sl, 0.75, 2.4, 8.5, 0.7, sub, textStyle{size: 22, color: theme.AccentTeal, align: alignCenter})
	if s.Subtitle != "" {
		addText(sl, 1.5, 3.2, 7.0, 0.6, s.Subtitle, textStyle{size: 12, color: theme.FooterText, align: alignCenter})
	}
	addText(sl, 1.0, 4.0, 8.0, 0.4, d.Day, textStyle{size: 11, color: theme.SubtleText, align: alignCenter})
	addRect(sl, 4.1, 4.6, 1.8, 0.03, theme.AccentPurp)
}

func (c *canvas) drawClosing(sl *ppt.Slide, s *content.Slide) {
	addBackground(sl, theme.DarkBG)
	addRect(sl, 0, 0, theme.SlideWidth, 0.09, theme.AccentBlue)
	addText(sl, 0.75, 1.1, 8.5, 0.9, s.Title, textStyle{size: 34, bold: true, color: theme.White, align: alignCenter})
	addText(sl, 0.75, 2.0, 8.5, 0.5, c.d.Title, textStyle{size: 18, color: theme.AccentTeal, align: alignCenter})
	if s.Subtitle != "" {
		addText(sl, 0.75, 2.7, 8.5, 0.45, s.Subtitle, textStyle{size: 14, color: theme.SubtleText, align: alignCenter})
	}
	if n := len(s.Bullets); n > 0 {
		lineH, size := 0.25, 11
		if n > 4 {
			lineH, size = 0.2, 9
		}
		addText(sl, 1.5, 3.25, 7.0, lineH*float64(n), strings.Join(s.Bullets, "\n"),
			textStyle{size: size, color: theme.FooterText, align: alignCenter})
	}
	addText(sl, 0.75, 4.55, 8.5, 0.35, c.opts.CourseTitle,
		textStyle{size: 9, color: theme.FaintText, align: alignCenter})
}

func drawBullets(sl *ppt.Slide, f frame, lines []string) {
	st := styleBody
	switch {
	case len(lines) > 8:
		st.size = 11
	case len(lines) > 5:
		st.size = 12
	default:
		st.size = 14
	}
	addBullets(sl, theme.MarginX+0.1, f.top, theme.ContentW-0.2, f.height(), lines, st)
}

func drawAgenda(sl *ppt.Slide, f frame, items []content.Item) {
	if len(items) == 0 {
		return
	}
	rowH := math.Min(0.48, f.height()/float64(len(items)))
	size := 13
	if rowH < 0.4 {
		size = 11
	}
	for i, it := range items {
		y := f.top + float64(i)*rowH
		accent := accentFor(it, i)
		addRect(sl, theme.MarginX, y, theme.ContentW, rowH-0.04, theme.White)
		addBadge(sl, theme.MarginX, y, rowH-0.04, rowH-0.04, accent, it.Tag, size-1)
		addText(sl, theme.MarginX+rowH+0.1, y+0.02, theme.ContentW-rowH-0.2, rowH-0.08, it.Heading,
			textStyle{size: size, color: theme.DarkText})
	}
}

// grid splits n boxes into rows of at most four. Five or six boxes go three
// per row.
func grid(n int) (cols, rows int) {
	switch {
	case n <= 4:
		cols = n
	case n <= 6:
		cols = 3
	default:
		cols = 4
	}
	return cols, (n + cols - 1) / cols
}

func drawCards(sl *ppt.Slide, f frame, items []content.Item) {
	if len(items) == 0 {
		return
	}
	cols, rows := grid(len(items))
	w := (theme.ContentW - gap*float64(cols-1)) / float64(cols)
	h := (f.height() - gap*float64(rows-1)) / float64(rows)
	headSize, body := 13, styleSmall
	if cols == 4 && rows > 1 {
		headSize, body.size = 11, 9
	}
	for i, it := range items {
		x := theme.MarginX + float64(i%cols)*(w+gap)
		y := f.top + float64(i/cols)*(h+gap)
		accent := accentFor(it, i)
		addRect(sl, x, y, w, h, theme.White)
		addRect(sl, x, y, w, 0.06, accent)

		ty := y + 0.12
		if it.Tag != "" {
			addText(sl, x+0.1, ty, w-0.2, 0.25, it.Tag, textStyle{size: 9, bold: true, color: accent})
			ty += 0.25
		}
		addText(sl, x+0.1, ty, w-0.2, 0.45, it.Heading, textStyle{size: headSize, bold: true, color: accent})
		ty += 0.48
		if it.Body != "" {
			bh := math.Min(0.6, math.Max(y+h-ty-0.05, 0.3))
			addText(sl, x+0.1, ty, w-0.2, bh, it.Body, body)
			ty += bh
		}
		if len(it.Bullets) > 0 {
			addBullets(sl, x+0.1, ty, w-0.2, math.Max(y+h-ty-0.05, 0.2), it.Bullets, textStyle{size: 9, color: theme.DarkText})
		}
	}
}

func drawColumns(sl *ppt.Slide, f frame, items []content.Item) {
	n := len(items)
	if n == 0 {
		return
	}
	w := (theme.ContentW - gap*float64(n-1)) / float64(n)
	head, size := 12, 10
	switch {
	case n >= 5:
		head, size = 10, 8
	case n == 4:
		head, size = 11, 9
	}
	for i, it := range items {
		x := theme.MarginX + float64(i)*(w+gap)
		accent := accentFor(it, i)
		addBadge(sl, x, f.top, w, 0.42, accent, it.Heading, head)
		addRect(sl, x, f.top+0.42, w, f.height()-0.42, theme.Tint(accent))

		y := f.top + 0.5
		if it.Tag != "" {
			addText(sl, x+0.12, y, w-0.24, 0.22, it.Tag, textStyle{size: size, bold: true, color: accent})
			y += 0.24
		}
		if it.Body != "" {
			addText(sl, x+0.12, y, w-0.24, 0.4, it.Body, textStyle{size: size, bold: true, color: theme.DarkText})
			y += 0.42
		}
		if len(it.Bullets) > 0 {
			addBullets(sl, x+0.12, y, w-0.24, math.Max(f.bottom-y-0.05, 0.2), it.Bullets,
				textStyle{size: size, color: theme.DarkText})
		}
	}
}

// columnWeights sizes table columns by their longest cell. Every column
// keeps at least 12% of the width.
func columnWeights(t *content.Table, cols int) []float64 {
	lens := make([]float64, cols)
	measure := func(row []string) {
		for i := 0; i < cols && i < len(row); i++ {
			lens[i] = math.Max(lens[i], float64(utf8.RuneCountInString(row[i])))
		}
	}
	measure(t.Header)
	for _, r := range t.Rows {
		measure(r)
	}
	total := lo.Sum(lens)
	w := make([]float64, cols)
	for i := range w {
		if total == 0 {
			w[i] = 1 / float64(cols)
			continue
		}
		w[i] = math.Max(lens[i]/total, 0.12)
	}
	sum := lo.Sum(w)
	for i := range w {
		w[i] /= sum
	}
	return w
}

func drawTable(sl *ppt.Slide, f frame, t *content.Table) {
	if t == nil || len(t.Header) == 0 {
		return
	}
	cols := len(t.Header)
	rows := t.Rows
	weights := columnWeights(t, cols)
	rowH := math.Min(0.42, f.height()/float64(len(rows)+1))
	head, size := 11, 10
	switch {
	case len(rows) > 8 || cols > 5:
		head, size = 9, 8
	case len(rows) > 6 || cols > 4:
		head, size = 10, 9
	}

	drawRow := func(y float64, cells []string, fill theme.Color, st textStyle) {
		x := theme.MarginX
		for i := 0; i < cols; i++ {
			w := weights[i] * theme.ContentW
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			shape := addRect(sl, x, y, w-0.02, rowH-0.02, fill)
			writeLines(shape, cell, st)
			x += w
		}
	}

	drawRow(f.top, t.Header, theme.AccentBlue, textStyle{size: head, bold: true, color: theme.White})
	for i, r := range rows {
		fill := theme.White
		if i%2 == 1 {
			fill = theme.LightGray
		}
		drawRow(f.top+float64(i+1)*rowH, r, fill, textStyle{size: size, color: theme.DarkText})
	}
}

func drawSteps(sl *ppt.Slide, f frame, items []content.Item) {
	if len(items) == 0 {
		return
	}
	rowH := math.Min(0.62, f.height()/float64(len(items)))
	head, size := 12, 10
	switch {
	case rowH < 0.42:
		head, size = 10, 8
	case rowH < 0.5:
		head, size = 11, 9
	}
	for i, it := range items {
		y := f.top + float64(i)*rowH
		accent := accentFor(it, i)
		tag := it.Tag
		if tag == "" {
			tag = fmt.Sprint(i + 1)
		}
		addBadge(sl, theme.MarginX, y+0.02, 1.0, rowH-0.06, accent, tag, head-1)
		box := addRect(sl, theme.MarginX+1.1, y+0.02, theme.ContentW-1.1, rowH-0.06, theme.White)
		writeLines(box, it.Heading, textStyle{size: head, bold: true, color: theme.DarkText})
		if it.Body != "" {
			box.CreateParagraph()
			writeLines(box, it.Body, textStyle{size: size, color: theme.MidGray})
		}
	}
}

func drawQuiz(sl *ppt.Slide, f frame, items []content.Item) {
	if len(items) == 0 {
		return
	}
	rowH := math.Min(0.66, f.height()/float64(len(items)))
	q, a := 13, 10
	if rowH < 0.55 {
		q, a = 11, 9
	}
	for i, it := range items {
		y := f.top + float64(i)*rowH
		addBadge(sl, theme.MarginX, y+0.03, 0.55, rowH-0.08, theme.Accent(i), fmt.Sprintf("Q%d", i+1), 12)
		box := addText(sl, theme.MarginX+0.7, y+0.02, theme.ContentW-0.7, rowH-0.06, it.Heading,
			textStyle{size: q, color: theme.DarkText})
		if it.Body != "" {
			box.CreateParagraph()
			writeLines(box, "→ "+it.Body, textStyle{size: a, color: theme.MidGray})
		}
	}
}

func accentFor(it content.Item, i int) theme.Color {
	if it.Accent != "" {
		return it.Accent
	}
	return theme.Accent(i)
}
