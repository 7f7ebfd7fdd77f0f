package content

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/northwind-training/coursegen/internal/theme"
)

const (
	CourseTitle   = "Modern SharePoint Online for Administrators (3-Day, 2026 aligned)"
	ScenarioTitle = "Project Northwind Intranet Modernization"
	Kicker        = "MODERN SHAREPOINT ONLINE"
	Tagline       = "3-Day Instructor-Led Training  ·  2026 Aligned"
)

// Kind selects the layout a slide is drawn with.
type Kind int

const (
	KindCover Kind = iota
	KindAgenda
	KindBullets
	KindCards
	KindColumns
	KindTable
	KindSection
	KindSteps
	KindQuiz
	KindClosing
)

var kindNames = [...]string{
	KindCover:   "cover",
	KindAgenda:  "agenda",
	KindBullets: "bullets",
	KindCards:   "cards",
	KindColumns: "columns",
	KindTable:   "table",
	KindSection: "section",
	KindSteps:   "steps",
	KindQuiz:    "quiz",
	KindClosing: "closing",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Item is one card, agenda row, step, column or quiz question.
//
// For steps, Tag is the step label ("Task 1"). For quiz slides, Heading is
// the question and Body the answer.
type Item struct {
	Tag     string
	Heading string
	Body    string
	Bullets []string
	Accent  theme.Color
}

// Table is a header row plus body rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Slide is one slide of a deck.
type Slide struct {
	Kind     Kind
	Title    string
	Subtitle string
	Icon     string
	Intro    string
	Bullets  []string
	Items    []Item
	Table    *Table
	Callout  string
	Notes    string
}

// Deck is one presentation of the course.
type Deck struct {
	ID       string
	Number   int
	Label    string // "Module 5", shown in the footer
	Title    string // footer and cover title
	Badge    string // "MODULE 5"
	Day      string // cover day line
	FileName string
	Slides   []Slide
}

// HandoutBase is the file name stem used for the deck's handouts.
func (d *Deck) HandoutBase() string {
	if d.Number == 0 {
		return "00-Course-Introduction"
	}
	return fmt.Sprintf("Module-%02d", d.Number)
}

// Texts returns every visible string on the slide in drawing order.
func (s *Slide) Texts() []string {
	var out []string
	add := func(v ...string) {
		for _, x := range v {
			if x != "" {
				out = append(out, x)
			}
		}
	}
	add(s.Title, s.Subtitle, s.Intro)
	add(s.Bullets...)
	for _, it := range s.Items {
		add(it.Tag, it.Heading, it.Body)
		add(it.Bullets...)
	}
	if s.Table != nil {
		add(s.Table.Header...)
		for _, row := range s.Table.Rows {
			add(row...)
		}
	}
	add(s.Callout)
	return out
}

// All returns every deck in course order.
func All() []*Deck {
	return decks
}

// IDs returns the deck IDs in course order.
func IDs() []string {
	ids := make([]string, len(decks))
	for i, d := range decks {
		ids[i] = d.ID
	}
	return ids
}

// Get looks up a deck by ID ("m05"), number ("5") or label form ("module-5").
func Get(key string) (*Deck, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.TrimPrefix(k, "module-")
	k = strings.TrimPrefix(k, "module")
	if n, err := strconv.Atoi(strings.TrimPrefix(k, "m")); err == nil {
		for _, d := range decks {
			if d.Number == n {
				return d, nil
			}
		}
	}
	for _, d := range decks {
		if d.ID == k {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown deck %q — run 'coursegen list' to see available decks", key)
}

var decks = []*Deck{
	&intro,
	&module01,
	&module02,
	&module03,
	&module04,
	&module05,
	&module06,
	&module07,
	&module08,
	&module09,
}

func moduleDeck(n int, title, day string, slides []Slide) Deck {
	return Deck{
		ID:       fmt.Sprintf("m%02d", n),
		Number:   n,
		Label:    fmt.Sprintf("Module %d", n),
		Title:    title,
		Badge:    fmt.Sprintf("MODULE %d", n),
		Day:      day,
		FileName: fmt.Sprintf("Module-%02d-Slides.pptx", n),
		Slides:   slides,
	}
}

// Helpers keep the per-module files readable.

func cover(notes string) Slide {
	return Slide{Kind: KindCover, Notes: notes}
}

func agenda(title, notes string, rows ...string) Slide {
	items := make([]Item, len(rows))
	for i, r := range rows {
		items[i] = Item{Tag: strconv.Itoa(i + 1), Heading: r, Accent: theme.Accent(i)}
	}
	if len(items) > 0 {
		items[len(items)-1].Accent = theme.Orange
	}
	return Slide{Kind: KindAgenda, Title: title, Items: items, Notes: notes}
}

func section(title, subtitle, icon, notes string) Slide {
	return Slide{Kind: KindSection, Title: title, Subtitle: subtitle, Icon: icon, Notes: notes}
}

func bullets(title, notes string, lines ...string) Slide {
	return Slide{Kind: KindBullets, Title: title, Bullets: lines, Notes: notes}
}

func card(heading, body string) Item {
	return Item{Heading: heading, Body: body}
}

func column(heading, body string, lines ...string) Item {
	return Item{Heading: heading, Body: body, Bullets: lines}
}

func step(tag, heading, body string) Item {
	return Item{Tag: tag, Heading: heading, Body: body}
}

func qa(question, answer string) Item {
	return Item{Heading: question, Body: answer}
}

func table(header []string, rows ...[]string) *Table {
	return &Table{Header: header, Rows: rows}
}

func row(cells ...string) []string {
	return cells
}

func closing(title, subtitle, notes string, lines ...string) Slide {
	return Slide{Kind: KindClosing, Title: title, Subtitle: subtitle, Bullets: lines, Notes: notes}
}
