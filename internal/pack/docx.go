package pack

import (
	"fmt"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/northwind-training/coursegen/internal/theme"
)

var (
	fontBody   = &style.FontStyle{Size: 11, Color: string(theme.DarkText)}
	fontMuted  = &style.FontStyle{Size: 10, Color: string(theme.MidGray)}
	listIndent = &style.ParagraphStyle{Indent: 360}
)

// wordDoc wraps a GoWord document with the list helpers the packs need.
type wordDoc struct {
	toBytes func() ([]byte, error)
	heading func(text string, level int)
	para    func(text string)
	muted   func(text string)
	bullets func(lines []string)
	numbers func(lines []string)
}

func newWordDoc(title, description string) *wordDoc {
	doc := goword.New()
	doc.Properties.Title = title
	doc.Properties.Creator = creator
	doc.Properties.Description = description

	sec := doc.AddSection()
	w := &wordDoc{toBytes: doc.ToBytes}
	w.heading = func(text string, level int) { sec.AddTitle(text, level) }
	w.para = func(text string) { sec.AddText(text, fontBody, nil) }
	w.muted = func(text string) { sec.AddText(text, fontMuted, nil) }
	w.bullets = func(lines []string) {
		for _, l := range lines {
			sec.AddText("• "+l, fontBody, listIndent)
		}
	}
	w.numbers = func(lines []string) {
		for i, l := range lines {
			sec.AddText(fmt.Sprintf("%d. %s", i+1, l), fontBody, listIndent)
		}
	}
	return w
}

func (w *wordDoc) bytes(what string) ([]byte, error) {
	data, err := w.toBytes()
	if err != nil {
		return nil, fmt.Errorf("writing %s document: %w", what, err)
	}
	return data, nil
}

func (w *wordDoc) courseHeader(opts Options) {
	w.para(opts.CourseTitle)
	w.para("Scenario: " + opts.Scenario)
	w.muted("Date: " + opts.Date)
}

func participantDocx(p Participant, opts Options) ([]byte, error) {
	w := newWordDoc("Participant Pack "+p.ID, opts.CourseTitle)

	w.heading("Participant Pack — "+p.ID, 1)
	w.courseHeader(opts)

	w.heading("Your lab naming", 2)
	w.para("Participant ID: " + p.ID)
	w.para("Primary practice site (persistent): " + p.ProjectSite())
	w.para("Module 4 library artifact: " + p.Contracts())

	w.heading("Shared-tenant safety rules (quick)", 2)
	w.bullets(participantRules)

	w.heading("Quick checklist", 2)
	w.numbers(participantChecklist)

	w.heading("Notes", 2)
	w.para("Use this page to jot down any URLs, group names, and screenshots you want to keep for the next modules.")

	return w.bytes("participant")
}

func trainerDocx(roster []Participant, opts Options) ([]byte, error) {
	w := newWordDoc("Trainer Pack", opts.CourseTitle)

	w.heading("Trainer Pack — Northwind Shared Tenant", 1)
	w.courseHeader(opts)

	w.heading("Class roster (IDs)", 2)
	w.para(rosterLine(roster))

	w.heading("Shared-tenant ground rules", 2)
	w.bullets(trainerRules)

	for _, rb := range trainerRunbooks {
		w.heading(rb.Title, 2)
		if rb.Numbered {
			w.numbers(rb.Steps)
		} else {
			w.bullets(rb.Steps)
		}
	}

	return w.bytes("trainer")
}
