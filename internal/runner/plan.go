package runner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/northwind-training/coursegen/internal/config"
	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/deck"
	"github.com/northwind-training/coursegen/internal/handout"
	"github.com/northwind-training/coursegen/internal/pack"
	"github.com/northwind-training/coursegen/internal/state"
)

// Selection narrows a build. Only holds deck keys ("m05", "intro"),
// participant IDs and the trainer ID; when it is empty everything the
// config enables is built.
type Selection struct {
	Only    []string
	NoDecks bool
	NoPacks bool
}

// targets is what a selection resolves to.
type targets struct {
	decks   []*content.Deck
	roster  []pack.Participant // full class, printed in the trainer pack
	packs   []pack.Participant
	trainer bool
}

func resolve(cfg *config.Config, sel Selection) (*targets, error) {
	t := &targets{}
	if !sel.NoPacks {
		roster, err := pack.Roster(cfg.RosterSpec())
		if err != nil {
			return nil, err
		}
		t.roster = roster
	}

	if len(sel.Only) == 0 {
		if !sel.NoDecks {
			t.decks = cfg.SelectedDecks()
		}
		t.packs = t.roster
		t.trainer = !sel.NoPacks
		return t, nil
	}

	byID := make(map[string]pack.Participant, len(t.roster))
	for _, p := range t.roster {
		byID[strings.ToUpper(p.ID)] = p
	}
	var deckKeys []string
	for _, key := range sel.Only {
		k := strings.ToUpper(strings.TrimSpace(key))
		switch {
		case !sel.NoPacks && k == strings.ToUpper(cfg.Participants.TrainerID):
			t.trainer = true
		case !sel.NoPacks && byID[k].ID != "":
			t.packs = append(t.packs, byID[k])
		default:
			if _, err := content.Get(key); err != nil {
				return nil, fmt.Errorf("--only %q is neither a deck, a participant nor the trainer", key)
			}
			deckKeys = append(deckKeys, key)
		}
	}
	if !sel.NoDecks && len(deckKeys) > 0 {
		decks, err := config.SelectDecks(deckKeys)
		if err != nil {
			return nil, err
		}
		t.decks = decks
	}
	return t, nil
}

// Plan turns the config and selection into the ordered job list: decks,
// then handouts, then participant packs, then the trainer pack.
func Plan(cfg *config.Config, sel Selection, logger *slog.Logger) ([]Job, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	t, err := resolve(cfg, sel)
	if err != nil {
		return nil, err
	}

	out := cfg.OutDir()
	decksDir := filepath.Join(out, state.DecksDir)
	handoutsDir := filepath.Join(out, state.HandoutsDir)
	packsDir := filepath.Join(out, state.PacksDir)

	deckOpts := deck.Options{CourseTitle: cfg.CourseTitle, Logger: logger}
	handoutOpts := handout.Options{CourseTitle: cfg.CourseTitle, Date: cfg.Date}
	packOpts := cfg.PackOptions()
	packOpts.Logger = logger

	var jobs []Job
	for _, d := range t.decks {
		jobs = append(jobs, Job{
			Name:    "deck " + d.ID,
			Kind:    KindDeck,
			Target:  decksDir,
			Outputs: []string{d.FileName},
			Run: func(ctx context.Context) ([]string, error) {
				path, err := deck.Write(ctx, d, decksDir, deckOpts)
				if err != nil {
					return nil, err
				}
				return []string{path}, nil
			},
		})
	}
	if cfg.Handouts {
		for _, d := range t.decks {
			jobs = append(jobs, Job{
				Name:    "handouts " + d.ID,
				Kind:    KindHandouts,
				Target:  handoutsDir,
				Outputs: []string{handout.NotesName(d), handout.OutlineName(d)},
				Run: func(ctx context.Context) ([]string, error) {
					return handout.Write(ctx, d, handoutsDir, handoutOpts)
				},
			})
		}
	}
	for _, p := range t.packs {
		base := pack.ParticipantBase(p)
		jobs = append(jobs, Job{
			Name:    "pack " + p.ID,
			Kind:    KindPack,
			Target:  filepath.Join(packsDir, p.ID),
			Outputs: []string{base + ".docx", base + ".pdf", base + ".pptx", base + ".xlsx", pack.TemplatesDir + "/"},
			Run: func(ctx context.Context) ([]string, error) {
				return pack.BuildParticipant(ctx, p, packsDir, packOpts)
			},
		})
	}
	if t.trainer {
		roster := t.roster
		b := pack.TrainerBase
		jobs = append(jobs, Job{
			Name:    "pack " + packOpts.TrainerID,
			Kind:    KindTrainer,
			Target:  filepath.Join(packsDir, packOpts.TrainerID),
			Outputs: []string{b + ".docx", b + ".pdf", b + ".pptx", b + ".xlsx", pack.TemplatesDir + "/"},
			Run: func(ctx context.Context) ([]string, error) {
				return pack.BuildTrainer(ctx, roster, packsDir, packOpts)
			},
		})
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("nothing to build: every output is disabled by flags or config")
	}
	return jobs, nil
}
