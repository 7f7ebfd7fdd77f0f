package pack

import (
	"context"
	"strings"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/deck"
)

// packDeck is the three slide summary deck of a pack. It is drawn with the
// course deck layouts.
func packDeck(id, cover, badge string, opts Options, body ...content.Slide) *content.Deck {
	slides := append([]content.Slide{{
		Kind:     content.KindCover,
		Title:    cover,
		Subtitle: opts.CourseTitle,
		Notes:    "Pack summary for " + id + ".",
	}}, body...)
	return &content.Deck{
		ID:       "pack-" + strings.ToLower(id),
		Label:    id,
		Title:    opts.CourseTitle,
		Badge:    badge,
		Day:      opts.Scenario,
		FileName: id + ".pptx",
		Slides:   slides,
	}
}

func renderPack(ctx context.Context, d *content.Deck, id string, opts Options) ([]byte, error) {
	return deck.Render(ctx, d, deck.Options{
		CourseTitle: opts.CourseTitle,
		Creator:     creator,
		Footer:      strings.Join([]string{opts.Scenario, opts.Date, id}, " | "),
		Logger:      opts.Logger,
	})
}

func participantPptx(ctx context.Context, p Participant, opts Options) ([]byte, error) {
	d := packDeck(p.ID, "Northwind — Participant "+p.ID, "PARTICIPANT PACK", opts,
		content.Slide{
			Kind:  content.KindBullets,
			Title: "Your key artifacts",
			Bullets: []string{
				"Practice site: " + p.ProjectSite(),
				"Module 4 library: " + p.Contracts(),
				"Folders: 01-Drafts / 02-InReview / 03-Final",
			},
			Notes: "Naming every participant artifact uses.",
		},
		content.Slide{
			Kind:    content.KindBullets,
			Title:   "Safety rules (shared tenant)",
			Bullets: participantSlideRules,
			Notes:   "Shared-tenant rules that apply to every lab.",
		},
	)
	return renderPack(ctx, d, p.ID, opts)
}

func trainerPptx(ctx context.Context, roster []Participant, opts Options) ([]byte, error) {
	checkpoints := append([]string{"Roster: " + rosterLine(roster)}, trainerCheckpoints...)
	d := packDeck(opts.TrainerID, "Trainer Pack — Northwind Shared Tenant", "TRAINER PACK", opts,
		content.Slide{
			Kind:    content.KindBullets,
			Title:   "Ground rules",
			Bullets: trainerSlideRules,
			Notes:   "Rules to restate at the start of each day.",
		},
		content.Slide{
			Kind:    content.KindBullets,
			Title:   "Roster and checkpoints",
			Bullets: checkpoints,
			Notes:   "Checkpoints to confirm before moving to the next module.",
		},
	)
	return renderPack(ctx, d, opts.TrainerID, opts)
}
