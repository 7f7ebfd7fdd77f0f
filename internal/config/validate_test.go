package config

import (
	"strings"
	"testing"
)

func expectErr(t *testing.T, cfg *Config, want string) {
	t.Helper()
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error containing %q, got %v", want, err)
	}
}

func TestValidate_DefaultIsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config: %v", err)
	}
}

func TestValidate_CourseTitleRequired(t *testing.T) {
	cfg := Default()
	cfg.CourseTitle = "  "
	expectErr(t, cfg, "'course-title' is required")
}

func TestValidate_ScenarioRequired(t *testing.T) {
	cfg := Default()
	cfg.Scenario = ""
	expectErr(t, cfg, "'scenario' is required")
}

func TestValidate_DateFormat(t *testing.T) {
	for _, d := range []string{"", "09/02/2026", "2026-2-9", "2026-13-01"} {
		cfg := Default()
		cfg.Date = d
		expectErr(t, cfg, "YYYY-MM-DD")
	}
}

func TestValidate_OutputDirRequired(t *testing.T) {
	cfg := Default()
	cfg.OutputDir = ""
	expectErr(t, cfg, "'output-dir' is required")
}

func TestValidate_UnknownDeck(t *testing.T) {
	cfg := Default()
	cfg.Decks = []string{"m01", "m42"}
	expectErr(t, cfg, `unknown deck "m42"`)
}

func TestValidate_DuplicateDeck(t *testing.T) {
	cfg := Default()
	cfg.Decks = []string{"m05", "5"}
	expectErr(t, cfg, "duplicate deck")
}

func TestValidate_CountRange(t *testing.T) {
	for _, n := range []int{0, -1, 100} {
		cfg := Default()
		cfg.Participants.Count = n
		expectErr(t, cfg, "count must be between 1 and 99")
	}
}

func TestValidate_CountIgnoredWithRoster(t *testing.T) {
	cfg := Default()
	cfg.Participants.Count = 0
	cfg.Participants.Roster = "class.xlsx"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RosterMustBeXlsx(t *testing.T) {
	cfg := Default()
	cfg.Participants.Roster = "class.csv"
	expectErr(t, cfg, "must be an .xlsx workbook")
}

func TestValidate_PatternRequired(t *testing.T) {
	cfg := Default()
	cfg.Participants.Pattern = ""
	expectErr(t, cfg, "'pattern' is required")
}

func TestValidate_PatternCompiles(t *testing.T) {
	cfg := Default()
	cfg.Participants.Pattern = `P[`
	expectErr(t, cfg, "participant pattern")
}

func TestValidate_PrefixMatchesPattern(t *testing.T) {
	cfg := Default()
	cfg.Participants.IDPrefix = "S"
	expectErr(t, cfg, `generated ID "S01"`)
}

func TestValidate_PatternIsAnchored(t *testing.T) {
	cfg := Default()
	cfg.Participants.IDPrefix = "NP"
	expectErr(t, cfg, `generated ID "NP01"`)
}

func TestValidate_TrainerID(t *testing.T) {
	cfg := Default()
	cfg.Participants.TrainerID = ""
	expectErr(t, cfg, "'trainer-id' is required")

	cfg = Default()
	cfg.Participants.TrainerID = "../x"
	expectErr(t, cfg, "path separators")

	cfg = Default()
	cfg.Participants.TrainerID = "P00"
	expectErr(t, cfg, "collides")
}
