// Package pack builds the participant and trainer handout packs used in the
// shared training tenant.
package pack

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/state"
)

const (
	DefaultDate      = "2026-02-09"
	DefaultTrainerID = "TRAINER"
	TemplatesDir     = "TXT-Templates"
	creator          = "Northwind Training"
)

// Options carry the course-wide strings printed in every pack.
type Options struct {
	CourseTitle string
	Scenario    string
	Date        string
	TrainerID   string
	Logger      *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.CourseTitle == "" {
		o.CourseTitle = content.CourseTitle
	}
	if o.Scenario == "" {
		o.Scenario = content.ScenarioTitle
	}
	if o.Date == "" {
		o.Date = DefaultDate
	}
	if o.TrainerID == "" {
		o.TrainerID = DefaultTrainerID
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// ParticipantBase is the file name stem of a participant's pack files.
func ParticipantBase(p Participant) string {
	return p.ID + "-Training-Pack"
}

// TrainerBase is the file name stem of the trainer's pack files.
const TrainerBase = "Trainer-Training-Pack"

// file is one generated pack document.
type file struct {
	name  string
	build func() ([]byte, error)
}

// writeFiles renders files into dir in order, stopping on cancellation or
// the first error. It returns the paths written so far.
func writeFiles(ctx context.Context, dir string, files []file) ([]string, error) {
	var paths []string
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		data, err := f.build()
		if err != nil {
			return paths, fmt.Errorf("building %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := state.WriteFileAtomic(path, data, 0644); err != nil {
			return paths, fmt.Errorf("saving %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// BuildParticipant writes the pack for p into packsDir/<ID>/ and returns
// the written paths.
func BuildParticipant(ctx context.Context, p Participant, packsDir string, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	dir := filepath.Join(packsDir, p.ID)
	base := ParticipantBase(p)

	paths, err := writeFiles(ctx, dir, []file{
		{base + ".docx", func() ([]byte, error) { return participantDocx(p, opts) }},
		{base + ".pdf", func() ([]byte, error) { return participantPDF(p, opts) }},
		{base + ".pptx", func() ([]byte, error) { return participantPptx(ctx, p, opts) }},
		{base + ".xlsx", func() ([]byte, error) { return participantXlsx(p, opts) }},
	})
	if err != nil {
		return paths, fmt.Errorf("pack %s: %w", p.ID, err)
	}

	txt, err := writeTemplates(ctx, filepath.Join(dir, TemplatesDir), participantSet, templateData{
		Options:     opts,
		Participant: p,
	})
	paths = append(paths, txt...)
	if err != nil {
		return paths, fmt.Errorf("pack %s: %w", p.ID, err)
	}
	opts.Logger.Debug("participant pack written", "id", p.ID, "files", len(paths))
	return paths, nil
}

// BuildTrainer writes the trainer pack for roster into
// packsDir/<TrainerID>/ and returns the written paths.
func BuildTrainer(ctx context.Context, roster []Participant, packsDir string, opts Options) ([]string, error) {
	opts = opts.withDefaults()
	if len(roster) == 0 {
		return nil, fmt.Errorf("trainer pack: roster is empty")
	}
	dir := filepath.Join(packsDir, opts.TrainerID)

	paths, err := writeFiles(ctx, dir, []file{
		{TrainerBase + ".docx", func() ([]byte, error) { return trainerDocx(roster, opts) }},
		{TrainerBase + ".pdf", func() ([]byte, error) { return trainerPDF(roster, opts) }},
		{TrainerBase + ".pptx", func() ([]byte, error) { return trainerPptx(ctx, roster, opts) }},
		{TrainerBase + ".xlsx", func() ([]byte, error) { return trainerXlsx(roster, opts) }},
	})
	if err != nil {
		return paths, fmt.Errorf("trainer pack: %w", err)
	}

	tdir := filepath.Join(dir, TemplatesDir)
	if err := removeLegacy(tdir); err != nil {
		return paths, fmt.Errorf("trainer pack: %w", err)
	}
	txt, err := writeTemplates(ctx, tdir, trainerSet, templateData{
		Options: opts,
		Roster:  roster,
	})
	paths = append(paths, txt...)
	if err != nil {
		return paths, fmt.Errorf("trainer pack: %w", err)
	}
	opts.Logger.Debug("trainer pack written", "id", opts.TrainerID, "participants", len(roster))
	return paths, nil
}

// rosterLine is the comma separated roster used in trainer documents.
func rosterLine(roster []Participant) string {
	return strings.Join(IDs(roster), ", ")
}
