// Package handout builds the per-deck companion documents: a Word file with
// the speaker notes and a PDF outline of the slide text.
package handout

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/state"
)

// Options carry the course-wide strings printed on every handout.
type Options struct {
	CourseTitle string
	Date        string
}

func (o Options) withDefaults() Options {
	if o.CourseTitle == "" {
		o.CourseTitle = content.CourseTitle
	}
	return o
}

// NotesName is the speaker-notes file name for d.
func NotesName(d *content.Deck) string {
	return d.HandoutBase() + "-Speaker-Notes.docx"
}

// OutlineName is the outline file name for d.
func OutlineName(d *content.Deck) string {
	return d.HandoutBase() + "-Outline.pdf"
}

// Write builds both handouts for d into dir and returns the written paths.
func Write(ctx context.Context, d *content.Deck, dir string, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	builds := []struct {
		name  string
		build func(*content.Deck, Options) ([]byte, error)
	}{
		{NotesName(d), Notes},
		{OutlineName(d), Outline},
	}

	var paths []string
	for _, b := range builds {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		data, err := b.build(d, opts)
		if err != nil {
			return paths, fmt.Errorf("building %s: %w", b.name, err)
		}
		path := filepath.Join(dir, b.name)
		if err := state.WriteFileAtomic(path, data, 0644); err != nil {
			return paths, fmt.Errorf("saving %s: %w", b.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// slideTitle names a slide in a handout. Cover slides carry no title of
// their own.
func slideTitle(d *content.Deck, s *content.Slide) string {
	if s.Kind == content.KindCover {
		return d.Label + ": " + d.Title
	}
	return strings.TrimSpace(s.Title)
}

// points flattens the visible body of a slide into outline lines.
func points(s *content.Slide) []string {
	var out []string
	if s.Subtitle != "" && s.Kind != content.KindSection {
		out = append(out, s.Subtitle)
	}
	if s.Intro != "" {
		out = append(out, s.Intro)
	}
	out = append(out, s.Bullets...)
	for _, it := range s.Items {
		line := it.Heading
		if it.Tag != "" {
			line = it.Tag + ": " + line
		}
		if it.Body != "" && s.Kind != content.KindQuiz {
			line += " - " + it.Body
		}
		out = append(out, line)
		for _, b := range it.Bullets {
			out = append(out, "  "+b)
		}
	}
	if s.Callout != "" {
		out = append(out, s.Callout)
	}
	return out
}
