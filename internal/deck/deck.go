package deck

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/state"
)

// Options are the document-level settings of a rendered deck.
type Options struct {
	CourseTitle string
	Creator     string
	// Footer replaces the "label  |  title" text on the left of the footer.
	Footer      string
	Logger      *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.CourseTitle == "" {
		o.CourseTitle = content.CourseTitle
	}
	if o.Creator == "" {
		o.Creator = "Northwind Training"
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// canvas tracks the presentation being drawn and the slide counter.
type canvas struct {
	p     *ppt.Presentation
	d     *content.Deck
	opts  Options
	n     int
	total int
}

// newSlide returns the next blank slide. GoPPT starts every presentation
// with one slide already in place.
func (c *canvas) newSlide() *ppt.Slide {
	c.n++
	if c.n == 1 {
		return c.p.GetActiveSlide()
	}
	return c.p.CreateSlide()
}

// Render draws every slide of d and returns the .pptx bytes.
func Render(ctx context.Context, d *content.Deck, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if len(d.Slides) == 0 {
		return nil, fmt.Errorf("deck %s has no slides", d.ID)
	}

	p := ppt.New()
	p.GetDocumentProperties().Title = d.Label + ": " + d.Title
	p.GetDocumentProperties().Creator = opts.Creator

	footer := opts.Footer
	if footer == "" {
		footer = fmt.Sprintf("%s  |  %s", d.Label, d.Title)
	}

	c := &canvas{p: p, d: d, opts: opts, total: len(d.Slides)}
	for i := range d.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s := &d.Slides[i]
		slide := c.newSlide()
		c.draw(slide, s)
		if s.Notes != "" {
			slide.SetNotes(s.Notes)
		}
		addFooterBar(slide, footer, c.n, c.total)
		opts.Logger.Debug("slide drawn", "deck", d.ID, "n", c.n, "kind", s.Kind.String())
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("creating pptx writer: %w", err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing deck %s: %w", d.ID, err)
	}
	return buf.Bytes(), nil
}

// Write renders d into dir/d.FileName and returns the written path.
func Write(ctx context.Context, d *content.Deck, dir string, opts Options) (string, error) {
	data, err := Render(ctx, d, opts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, d.FileName)
	if err := state.WriteFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("saving %s: %w", d.FileName, err)
	}
	return path, nil
}
