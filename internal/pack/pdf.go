package pack

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin  = 72.0
	pdfLeading = 14.0
)

// pdfPage is a single-column Letter page written top to bottom.
type pdfPage struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newPDFPage(title string) *pdfPage {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator(creator, true)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	return &pdfPage{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (p *pdfPage) line(text string) {
	p.pdf.SetFont("Helvetica", "", 11)
	p.pdf.MultiCell(0, pdfLeading, p.tr(text), "", "L", false)
}

func (p *pdfPage) heading(text string) {
	p.pdf.SetFont("Helvetica", "B", 12)
	p.pdf.MultiCell(0, pdfLeading, p.tr(text), "", "L", false)
}

func (p *pdfPage) dashes(lines []string) {
	for _, l := range lines {
		p.line("- " + l)
	}
}

func (p *pdfPage) gap() { p.pdf.Ln(pdfLeading) }

func (p *pdfPage) courseHeader(title string, opts Options) {
	p.heading(title)
	p.line(opts.CourseTitle)
	p.line("Scenario: " + opts.Scenario)
	p.line("Date: " + opts.Date)
	p.gap()
}

func (p *pdfPage) bytes() ([]byte, error) {
	if err := p.pdf.Error(); err != nil {
		return nil, fmt.Errorf("PDF generation error: %w", err)
	}
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to output PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func participantPDF(p Participant, opts Options) ([]byte, error) {
	pg := newPDFPage("Participant Pack " + p.ID)
	pg.courseHeader("Participant Pack — "+p.ID, opts)

	pg.heading("Your lab naming:")
	pg.dashes([]string{
		"Participant ID: " + p.ID,
		"Practice site: " + p.ProjectSite(),
		"Contracts library: " + p.Contracts(),
	})
	pg.gap()

	pg.heading("Safety rules (shared tenant):")
	pg.dashes(participantRulesShort)
	return pg.bytes()
}

func trainerPDF(roster []Participant, opts Options) ([]byte, error) {
	pg := newPDFPage("Trainer Pack")
	pg.courseHeader("Trainer Pack — Northwind Shared Tenant", opts)

	pg.heading("Roster:")
	pg.line(rosterLine(roster))
	pg.gap()

	pg.heading("Ground rules:")
	pg.dashes(trainerRulesShort)
	return pg.bytes()
}
