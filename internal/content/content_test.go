package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_CourseOrder(t *testing.T) {
	decks := All()
	require.Len(t, decks, 10)
	assert.Equal(t, "intro", decks[0].ID)
	assert.Equal(t, "00-Course-Introduction.pptx", decks[0].FileName)
	for i, d := range decks[1:] {
		assert.Equal(t, i+1, d.Number, "deck %s", d.ID)
	}
	assert.Equal(t, "Module-09-Slides.pptx", decks[9].FileName)
}

func TestIDs_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range IDs() {
		if seen[id] {
			t.Errorf("duplicate deck id %q", id)
		}
		seen[id] = true
	}
}

func TestGet_Forms(t *testing.T) {
	for _, key := range []string{"m05", "5", "module-5", "Module5", " M05 "} {
		d, err := Get(key)
		require.NoError(t, err, key)
		assert.Equal(t, 5, d.Number, key)
	}
	d, err := Get("intro")
	require.NoError(t, err)
	assert.Equal(t, 0, d.Number)
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("m42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coursegen list")
}

func TestDecks_Shape(t *testing.T) {
	for _, d := range All() {
		require.NotEmpty(t, d.Slides, d.ID)
		if d.Slides[0].Kind != KindCover {
			t.Errorf("%s: first slide is %s, want cover", d.ID, d.Slides[0].Kind)
		}
		if d.Title == "" || d.Badge == "" || d.Label == "" {
			t.Errorf("%s: missing title, badge or label", d.ID)
		}
		for i, s := range d.Slides[1:] {
			if s.Title == "" {
				t.Errorf("%s slide %d (%s): empty title", d.ID, i+2, s.Kind)
			}
			if s.Kind == KindTable && (s.Table == nil || len(s.Table.Header) == 0) {
				t.Errorf("%s slide %d: table slide without header", d.ID, i+2)
			}
		}
	}
}

func TestDecks_SpeakerNotes(t *testing.T) {
	for _, d := range All() {
		for i, s := range d.Slides {
			if strings.TrimSpace(s.Notes) == "" {
				t.Errorf("%s slide %d has no speaker notes", d.ID, i+1)
			}
		}
	}
}

func TestDecks_KnowledgeChecks(t *testing.T) {
	for _, d := range All() {
		for _, s := range d.Slides {
			if s.Kind != KindQuiz {
				continue
			}
			assert.NotEmpty(t, s.Items, d.ID)
			for _, q := range s.Items {
				assert.NotEmpty(t, strings.TrimSpace(q.Heading), d.ID)
			}
		}
	}
}

func TestModule08_RetentionTable(t *testing.T) {
	d, err := Get("m08")
	require.NoError(t, err)
	var found *Table
	for _, s := range d.Slides {
		if s.Title == "Retention: Capabilities Comparison" {
			found = s.Table
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, []string{"Capability", "Policy", "Label"}, found.Header)
	assert.Len(t, found.Rows, 7)
}

func TestHandoutBase(t *testing.T) {
	intro, _ := Get("intro")
	m3, _ := Get("3")
	assert.Equal(t, "00-Course-Introduction", intro.HandoutBase())
	assert.Equal(t, "Module-03", m3.HandoutBase())
}

func TestSlideTexts_Order(t *testing.T) {
	s := Slide{
		Title:   "T",
		Intro:   "I",
		Bullets: []string{"b1"},
		Items:   []Item{{Tag: "1", Heading: "h", Body: "body"}},
		Table:   table([]string{"H"}, row("c")),
		Callout: "C",
	}
	assert.Equal(t, []string{"T", "I", "b1", "1", "h", "body", "H", "c", "C"}, s.Texts())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "steps", KindSteps.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
