package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv unsets the override variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"COURSEGEN_OUTPUT_DIR", "COURSEGEN_DATE", "COURSEGEN_PARTICIPANTS", "COURSEGEN_HANDOUTS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg, err := Load(writeConfig(t, dir, "scenario: Contoso Pilot\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scenario != "Contoso Pilot" {
		t.Fatalf("scenario = %q", cfg.Scenario)
	}
	if cfg.Date != "2026-02-09" || cfg.Participants.Count != 10 || !cfg.Handouts {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.OutDir() != filepath.Join(dir, "out") {
		t.Fatalf("OutDir = %q", cfg.OutDir())
	}
}

func TestLoad_FullFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, `course-title: SharePoint Admin Bootcamp
scenario: Northwind
date: 2026-05-04
output-dir: /tmp/build
decks: [m02, intro]
handouts: false
participants:
  count: 4
  id-prefix: S
  pattern: 'S\d{2}'
  trainer-id: LEAD
  roster: class.xlsx
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Handouts {
		t.Fatal("handouts should be false")
	}
	if cfg.OutDir() != "/tmp/build" {
		t.Fatalf("OutDir = %q", cfg.OutDir())
	}
	spec := cfg.RosterSpec()
	if spec.File != filepath.Join(dir, "class.xlsx") || spec.Prefix != "S" || spec.Count != 4 {
		t.Fatalf("RosterSpec = %+v", spec)
	}
	decks := cfg.SelectedDecks()
	if len(decks) != 2 || decks[0].ID != "intro" || decks[1].ID != "m02" {
		t.Fatalf("SelectedDecks not in course order: %v", decks)
	}
	if opts := cfg.PackOptions(); opts.TrainerID != "LEAD" || opts.Date != "2026-05-04" {
		t.Fatalf("PackOptions = %+v", opts)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, t.TempDir(), "decks: [m01\n"))
	if err == nil || !strings.Contains(err.Error(), "config: parsing") {
		t.Fatalf("got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, t.TempDir(), "date: tomorrow\n"))
	if err == nil || !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Fatalf("got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COURSEGEN_OUTPUT_DIR", "dist")
	t.Setenv("COURSEGEN_DATE", "2026-03-16")
	t.Setenv("COURSEGEN_PARTICIPANTS", "12")
	t.Setenv("COURSEGEN_HANDOUTS", "false")

	dir := t.TempDir()
	cfg, err := Load(writeConfig(t, dir, "date: 2026-01-01\nparticipants:\n  count: 3\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Date != "2026-03-16" || cfg.Participants.Count != 12 || cfg.Handouts {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.OutDir() != filepath.Join(dir, "dist") {
		t.Fatalf("OutDir = %q", cfg.OutDir())
	}
}

func TestLoad_EnvOverrideValidated(t *testing.T) {
	clearEnv(t)
	t.Setenv("COURSEGEN_PARTICIPANTS", "250")
	_, err := Load(writeConfig(t, t.TempDir(), ""))
	if err == nil || !strings.Contains(err.Error(), "count must be between") {
		t.Fatalf("got %v", err)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("COURSEGEN_DATE=2026-04-20\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(writeConfig(t, dir, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Date != "2026-04-20" {
		t.Fatalf("date = %q, want value from .env", cfg.Date)
	}
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != want {
		t.Fatalf("Find = %q, want %q", got, want)
	}
}

func TestFind_NotFound(t *testing.T) {
	_, err := Find(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "coursegen init") {
		t.Fatalf("got %v", err)
	}
}

func TestSelectDecks(t *testing.T) {
	decks, err := SelectDecks([]string{"9", "m01"})
	if err != nil {
		t.Fatal(err)
	}
	if len(decks) != 2 || decks[0].ID != "m01" || decks[1].ID != "m09" {
		t.Fatalf("got %v", decks)
	}
	if all, _ := SelectDecks(nil); len(all) != 10 {
		t.Fatalf("empty selection should return every deck, got %d", len(all))
	}
	if _, err := SelectDecks([]string{"m77"}); err == nil {
		t.Fatal("expected error for unknown deck")
	}
}
