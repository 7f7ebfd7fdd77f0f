package deck

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/northwind-training/coursegen/internal/theme"
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

type textStyle struct {
	size  int
	bold  bool
	color theme.Color
	align align
}

var (
	styleTitle    = textStyle{size: 24, bold: true, color: theme.DarkBG}
	styleSubtitle = textStyle{size: 12, color: theme.MidGray}
	styleBody     = textStyle{size: 12, color: theme.DarkText}
	styleSmall    = textStyle{size: 10, color: theme.MidGray}
	styleFooter   = textStyle{size: 8, color: theme.FooterText}
)

func solidFill(c theme.Color) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(c.ARGB()))
}

func place(shape *ppt.RichTextShape, x, y, w, h float64) {
	shape.SetOffsetX(theme.EMU(x)).SetOffsetY(theme.EMU(y))
	shape.SetWidth(theme.EMU(w)).SetHeight(theme.EMU(h))
}

func setAlign(p *ppt.Paragraph, a align) {
	switch a {
	case alignCenter:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case alignRight:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	}
}

// writeLines adds text to a shape, one paragraph per line.
func writeLines(shape *ppt.RichTextShape, text string, st textStyle) {
	color := st.color
	if color == "" {
		color = theme.DarkText
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			shape.CreateParagraph()
		}
		run := shape.CreateTextRun(line)
		run.GetFont().SetSize(st.size).SetBold(st.bold).SetColor(ppt.NewColor(color.ARGB()))
		setAlign(shape.GetActiveParagraph(), st.align)
	}
}

// addRect draws a filled rectangle.
func addRect(s *ppt.Slide, x, y, w, h float64, fill theme.Color) *ppt.RichTextShape {
	shape := s.CreateRichTextShape()
	place(shape, x, y, w, h)
	shape.SetFill(solidFill(fill))
	return shape
}

// addBadge draws a filled box with a centered label, used for step numbers
// and tags.
func addBadge(s *ppt.Slide, x, y, w, h float64, fill theme.Color, label string, size int) *ppt.RichTextShape {
	shape := addRect(s, x, y, w, h, fill)
	writeLines(shape, label, textStyle{size: size, bold: true, color: theme.White, align: alignCenter})
	return shape
}

// addText draws an unfilled text box.
func addText(s *ppt.Slide, x, y, w, h float64, text string, st textStyle) *ppt.RichTextShape {
	shape := s.CreateRichTextShape()
	place(shape, x, y, w, h)
	writeLines(shape, text, st)
	return shape
}

// addBullets draws one paragraph per line, each prefixed with the bullet
// icon.
func addBullets(s *ppt.Slide, x, y, w, h float64, lines []string, st textStyle) *ppt.RichTextShape {
	prefixed := make([]string, len(lines))
	for i, l := range lines {
		prefixed[i] = "▸ " + l
	}
	return addText(s, x, y, w, h, strings.Join(prefixed, "\n"), st)
}

func addBackground(s *ppt.Slide, c theme.Color) {
	addRect(s, 0, 0, theme.SlideWidth, theme.SlideHeight, c)
}

func addTopBar(s *ppt.Slide) {
	addRect(s, 0, 0, theme.SlideWidth, theme.TopBarH, theme.AccentBlue)
}

// addFooterBar draws the dark footer with the left text and the slide
// counter on the right.
func addFooterBar(s *ppt.Slide, left string, n, total int) {
	addRect(s, 0, theme.FooterTop, theme.SlideWidth, theme.FooterH, theme.DarkBG)
	addText(s, 0.4, theme.FooterTop+0.04, 6.5, theme.FooterH-0.08, left, styleFooter)
	right := styleFooter
	right.align = alignRight
	addText(s, theme.SlideWidth-1.5, theme.FooterTop+0.04, 1.2, theme.FooterH-0.08,
		counter(n, total), right)
}

func counter(n, total int) string {
	return fmt.Sprintf("%d / %d", n, total)
}

// sectionDivider fills a slide with the dark section layout.
func sectionDivider(s *ppt.Slide, title, kicker, icon string) {
	addBackground(s, theme.DarkBG)
	if icon != "" {
		addText(s, 0.75, 1.0, 8.5, 0.9, icon, textStyle{size: 40, color: theme.AccentTeal, align: alignCenter})
	}
	if kicker != "" {
		addText(s, 0.75, 1.95, 8.5, 0.4, strings.ToUpper(kicker),
			textStyle{size: 12, bold: true, color: theme.AccentTeal, align: alignCenter})
	}
	addRect(s, 3.8, 2.45, 2.4, 0.05, theme.AccentTeal)
	addText(s, 0.75, 2.65, 8.5, 1.1, title, textStyle{size: 30, bold: true, color: theme.White, align: alignCenter})
}
