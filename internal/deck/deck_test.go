package deck

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/theme"
)

var slideEntry = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// slideXML returns the slide parts of a .pptx keyed by slide number.
func slideXML(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := make(map[string]string)
	for _, f := range zr.File {
		m := slideEntry.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		out[m[1]] = string(b)
	}
	return out
}

func TestRender_SlideCountMatchesDeck(t *testing.T) {
	for _, id := range []string{"intro", "m05", "m09"} {
		d, err := content.Get(id)
		require.NoError(t, err)

		data, err := Render(context.Background(), d, Options{})
		require.NoError(t, err, id)
		assert.Len(t, slideXML(t, data), len(d.Slides), id)
	}
}

func TestRender_FooterCounter(t *testing.T) {
	d, err := content.Get("m08")
	require.NoError(t, err)
	data, err := Render(context.Background(), d, Options{})
	require.NoError(t, err)

	slides := slideXML(t, data)
	total := len(d.Slides)
	assert.Contains(t, slides["1"], counter(1, total))
	assert.Contains(t, slides["3"], counter(3, total))
	last := slides[strconv.Itoa(total)]
	assert.Contains(t, last, counter(total, total))
	assert.Contains(t, last, "End of Module 8")
}

func TestRender_SlideText(t *testing.T) {
	d, err := content.Get("m08")
	require.NoError(t, err)
	data, err := Render(context.Background(), d, Options{})
	require.NoError(t, err)

	slides := slideXML(t, data)
	assert.Contains(t, slides["3"], "Learning Outcomes")
	assert.Contains(t, slides["1"], "MODULE 8")
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d, _ := content.Get("m01")
	_, err := Render(ctx, d, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRender_EmptyDeck(t *testing.T) {
	_, err := Render(context.Background(), &content.Deck{ID: "empty"}, Options{})
	require.Error(t, err)
}

func TestWrite_File(t *testing.T) {
	dir := t.TempDir()
	d, _ := content.Get("m02")
	path, err := Write(context.Background(), d, dir, Options{Creator: "Test"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Module-02-Slides.pptx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestCounter(t *testing.T) {
	assert.Equal(t, "3 / 28", counter(3, 28))
}

func TestGrid(t *testing.T) {
	cases := []struct{ n, cols, rows int }{
		{1, 1, 1}, {3, 3, 1}, {4, 4, 1}, {5, 3, 2}, {6, 3, 2}, {7, 4, 2}, {9, 4, 3},
	}
	for _, c := range cases {
		cols, rows := grid(c.n)
		assert.Equal(t, c.cols, cols, "n=%d", c.n)
		assert.Equal(t, c.rows, rows, "n=%d", c.n)
	}
}


func TestColumnWeights(t *testing.T) {
	tbl := &content.Table{
		Header: []string{"Capability", "Policy", "Label"},
		Rows:   [][]string{{"Persists if content moved", "❌", "✅ (within M365)"}},
	}
	w := columnWeights(tbl, 3)
	require.Len(t, w, 3)
	assert.InDelta(t, 1.0, w[0]+w[1]+w[2], 1e-9)
	assert.Greater(t, w[0], w[1])
	for _, x := range w {
		assert.GreaterOrEqual(t, x, 0.1)
	}
}

func TestAccentFor(t *testing.T) {
	assert.Equal(t, theme.Green, accentFor(content.Item{Accent: theme.Green}, 0))
	assert.Equal(t, theme.AccentTeal, accentFor(content.Item{}, 1))
}

func TestRender_CustomFooter(t *testing.T) {
	d, err := content.Get("m03")
	require.NoError(t, err)
	footer := "Pilot cohort | 2026-02-09 | P07"
	data, err := Render(context.Background(), d, Options{Footer: footer})
	require.NoError(t, err)

	slides := slideXML(t, data)
	for n := 1; n <= len(d.Slides); n++ {
		assert.Contains(t, slides[strconv.Itoa(n)], footer, "slide %d", n)
	}
}

// readBack writes d, parses it again and returns the lowercased paragraph
// text and the notes of every slide.
func readBack(t *testing.T, d *content.Deck) (texts, notes []string) {
	t.Helper()
	path, err := Write(context.Background(), d, t.TempDir(), Options{})
	require.NoError(t, err)
	pres, err := (&ppt.PPTXReader{}).Read(path)
	require.NoError(t, err)

	for _, slide := range pres.GetAllSlides() {
		var b strings.Builder
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						b.WriteString(run.GetText())
					}
				}
				b.WriteString("\n")
			}
		}
		texts = append(texts, strings.ToLower(b.String()))
		notes = append(notes, slide.GetNotes())
	}
	return texts, notes
}

func TestRender_EveryTextAndNoteReachesSlide(t *testing.T) {
	for _, d := range content.All() {
		t.Run(d.ID, func(t *testing.T) {
			texts, notes := readBack(t, d)
			require.Len(t, texts, len(d.Slides))
			for i := range d.Slides {
				s := &d.Slides[i]
				for _, want := range s.Texts() {
					for _, line := range strings.Split(want, "\n") {
						line = strings.ToLower(strings.TrimSpace(line))
						if line == "" {
							continue
						}
						assert.Contains(t, texts[i], line, "slide %d (%s)", i+1, s.Kind)
					}
				}
				if s.Notes != "" {
					assert.Equal(t, strings.TrimSpace(s.Notes), strings.TrimSpace(notes[i]), "notes of slide %d", i+1)
				}
			}
		})
	}
}

func TestRender_QuizShowsAnswers(t *testing.T) {
	d := &content.Deck{
		ID:    "quiz",
		Label: "Module 1",
		Title: "Quiz",
		Slides: []content.Slide{{
			Kind:  content.KindQuiz,
			Title: "Knowledge Check",
			Items: []content.Item{
				{Heading: "Which role manages tenant settings?", Body: "SharePoint Administrator"},
				{Heading: "Where do guests live?", Body: "Entra ID as B2B users"},
			},
			Notes: "Let the room answer before revealing.",
		}},
	}
	texts, notes := readBack(t, d)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "→ sharepoint administrator")
	assert.Contains(t, texts[0], "→ entra id as b2b users")
	assert.Equal(t, "Let the room answer before revealing.", notes[0])
}

func TestRender_WideTableKeepsEveryCell(t *testing.T) {
	header := []string{"H1", "H2", "H3", "H4", "H5", "H6"}
	var rows [][]string
	for r := 1; r <= 10; r++ {
		row := make([]string, len(header))
		for c := range row {
			row[c] = "cell " + strconv.Itoa(r) + "." + strconv.Itoa(c+1)
		}
		rows = append(rows, row)
	}
	d := &content.Deck{
		ID: "table",
		Slides: []content.Slide{{
			Kind:  content.KindTable,
			Title: "Matrix",
			Table: &content.Table{Header: header, Rows: rows},
		}},
	}
	texts, _ := readBack(t, d)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "h6")
	assert.Contains(t, texts[0], "cell 10.6")
	assert.Contains(t, texts[0], "cell 9.1")
}
