package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/pack"
)

const (
	dateLayout      = "2006-01-02"
	maxParticipants = 99
)

// Validate checks the config for errors.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.CourseTitle) == "" {
		return fmt.Errorf("config: 'course-title' is required")
	}
	if strings.TrimSpace(cfg.Scenario) == "" {
		return fmt.Errorf("config: 'scenario' is required")
	}
	if _, err := time.Parse(dateLayout, cfg.Date); err != nil {
		return fmt.Errorf("config: date %q must be YYYY-MM-DD", cfg.Date)
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return fmt.Errorf("config: 'output-dir' is required")
	}

	seen := make(map[string]bool)
	for _, key := range cfg.Decks {
		d, err := content.Get(key)
		if err != nil {
			return fmt.Errorf("config: decks: %w", err)
		}
		if seen[d.ID] {
			return fmt.Errorf("config: decks: duplicate deck %q", key)
		}
		seen[d.ID] = true
	}

	return validateParticipants(&cfg.Participants)
}

func validateParticipants(p *Participants) error {
	if p.Pattern == "" {
		return fmt.Errorf("config: participants: 'pattern' is required")
	}
	re, err := pack.CompilePattern(p.Pattern)
	if err != nil {
		return fmt.Errorf("config: participants: %w", err)
	}

	if p.Roster != "" {
		if !strings.EqualFold(filepath.Ext(p.Roster), ".xlsx") {
			return fmt.Errorf("config: participants: roster %q must be an .xlsx workbook", p.Roster)
		}
	} else {
		if p.Count < 1 || p.Count > maxParticipants {
			return fmt.Errorf("config: participants: count must be between 1 and %d, got %d", maxParticipants, p.Count)
		}
		if p.IDPrefix == "" {
			return fmt.Errorf("config: participants: 'id-prefix' is required without a roster")
		}
		first := fmt.Sprintf("%s%02d", p.IDPrefix, 1)
		if !re.MatchString(first) {
			return fmt.Errorf("config: participants: generated ID %q does not match pattern %q", first, p.Pattern)
		}
	}

	if p.TrainerID == "" {
		return fmt.Errorf("config: participants: 'trainer-id' is required")
	}
	if strings.ContainsAny(p.TrainerID, `/\`) {
		return fmt.Errorf("config: participants: trainer-id %q must not contain path separators", p.TrainerID)
	}
	if re.MatchString(p.TrainerID) {
		return fmt.Errorf("config: participants: trainer-id %q collides with the participant pattern", p.TrainerID)
	}
	return nil
}
