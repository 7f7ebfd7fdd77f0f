package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/northwind-training/coursegen/internal/config"
	"github.com/northwind-training/coursegen/internal/pack"
)

func TestInit_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, Options{}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, name := range []string{config.FileName, ".gitignore"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s not created: %v", name, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, rosterFile)); err == nil {
		t.Fatal("roster.xlsx written without the roster option")
	}
}

func TestInit_GeneratedConfigIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, Options{}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("config.Load failed on generated config: %v", err)
	}
	def := config.Default()
	if cfg.CourseTitle != def.CourseTitle || cfg.Scenario != def.Scenario {
		t.Fatalf("titles = %q / %q", cfg.CourseTitle, cfg.Scenario)
	}
	if cfg.Participants.Count != 10 || cfg.Participants.TrainerID != "TRAINER" {
		t.Fatalf("participants = %+v", cfg.Participants)
	}
	if len(cfg.SelectedDecks()) != 10 {
		t.Fatalf("selected %d decks, want 10", len(cfg.SelectedDecks()))
	}
}

func TestInit_Roster(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, Options{Roster: true}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	if cfg.Participants.Roster != rosterFile {
		t.Fatalf("roster = %q", cfg.Participants.Roster)
	}
	ps, err := pack.Roster(cfg.RosterSpec())
	if err != nil {
		t.Fatal(err)
	}
	ids := pack.IDs(ps)
	if len(ids) != 10 || ids[0] != "P01" || ids[9] != "P10" {
		t.Fatalf("roster IDs = %v", ids)
	}
}

func TestInit_KeepsExistingGitignore(t *testing.T) {
	dir := t.TempDir()
	ignore := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(ignore, []byte("bin/\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Init(dir, Options{}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(ignore)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "bin/\n" {
		t.Fatalf(".gitignore overwritten: %q", data)
	}
}

func TestInit_FailsIfConfigExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("x: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Init(dir, Options{})
	if err == nil {
		t.Fatal("expected error when course.yaml already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("unexpected error: %v", err)
	}
}
