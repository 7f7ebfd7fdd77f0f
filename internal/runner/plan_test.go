package runner

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/northwind-training/coursegen/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Root = t.TempDir()
	return cfg
}

func jobNames(js []Job) []string {
	names := make([]string, len(js))
	for i, j := range js {
		names[i] = j.Name
	}
	return names
}

func TestPlan_Default(t *testing.T) {
	cfg := testConfig(t)
	js, err := Plan(cfg, Selection{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 10 decks, 10 handout jobs, 10 participant packs, 1 trainer pack.
	if len(js) != 31 {
		t.Fatalf("got %d jobs: %v", len(js), jobNames(js))
	}
	if js[0].Name != "deck intro" || js[0].Kind != KindDeck {
		t.Fatalf("first job = %+v", js[0])
	}
	if js[10].Name != "handouts intro" || js[10].Kind != KindHandouts {
		t.Fatalf("job 11 = %+v", js[10])
	}
	if js[20].Name != "pack P01" || js[20].Kind != KindPack {
		t.Fatalf("job 21 = %+v", js[20])
	}
	last := js[len(js)-1]
	if last.Name != "pack TRAINER" || last.Kind != KindTrainer {
		t.Fatalf("last job = %+v", last)
	}
	if want := filepath.Join(cfg.Root, "out", "packs", "P01"); js[20].Target != want {
		t.Fatalf("pack target = %q, want %q", js[20].Target, want)
	}
	for _, j := range js {
		if j.Run == nil {
			t.Fatalf("job %q has no Run", j.Name)
		}
	}
}

func TestPlan_NoHandouts(t *testing.T) {
	cfg := testConfig(t)
	cfg.Handouts = false
	js, err := Plan(cfg, Selection{NoPacks: true}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(js) != 10 {
		t.Fatalf("got %d jobs: %v", len(js), jobNames(js))
	}
	for _, j := range js {
		if j.Kind != KindDeck {
			t.Fatalf("unexpected job %q", j.Name)
		}
	}
}

func TestPlan_NoDecks(t *testing.T) {
	cfg := testConfig(t)
	cfg.Participants.Count = 3
	js, err := Plan(cfg, Selection{NoDecks: true}, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(jobNames(js), ",")
	if got != "pack P01,pack P02,pack P03,pack TRAINER" {
		t.Fatalf("jobs = %s", got)
	}
}

func TestPlan_Only(t *testing.T) {
	cfg := testConfig(t)
	js, err := Plan(cfg, Selection{Only: []string{"p04", "m05", "3", "trainer"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(jobNames(js), ",")
	want := "deck m03,deck m05,handouts m03,handouts m05,pack P04,pack TRAINER"
	if got != want {
		t.Fatalf("jobs = %s, want %s", got, want)
	}
}

func TestPlan_OnlyUnknown(t *testing.T) {
	cfg := testConfig(t)
	_, err := Plan(cfg, Selection{Only: []string{"P42"}}, nil)
	if err == nil || !strings.Contains(err.Error(), `--only "P42" is neither a deck`) {
		t.Fatalf("got %v", err)
	}
}

func TestPlan_OnlyParticipantWithNoPacks(t *testing.T) {
	cfg := testConfig(t)
	_, err := Plan(cfg, Selection{Only: []string{"P01"}, NoPacks: true}, nil)
	if err == nil {
		t.Fatal("expected error when packs are disabled")
	}
}

func TestPlan_NothingToBuild(t *testing.T) {
	cfg := testConfig(t)
	_, err := Plan(cfg, Selection{NoDecks: true, NoPacks: true}, nil)
	if err == nil || !strings.Contains(err.Error(), "nothing to build") {
		t.Fatalf("got %v", err)
	}
}

func TestPlan_BadRoster(t *testing.T) {
	cfg := testConfig(t)
	cfg.Participants.Count = 0
	if _, err := Plan(cfg, Selection{}, nil); err == nil {
		t.Fatal("expected roster error")
	}
}

func TestPlan_RunsSelectedPack(t *testing.T) {
	cfg := testConfig(t)
	cfg.Participants.Count = 2
	js, err := Plan(cfg, Selection{Only: []string{"P02"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := &Runner{Jobs: js, OutDir: cfg.OutDir()}
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if r.State.JobsDone != 1 {
		t.Fatalf("jobs done = %d", r.State.JobsDone)
	}
	var sawXLSX bool
	for _, a := range r.State.Artifacts {
		if !strings.HasPrefix(a.Path, "packs/P02/") {
			t.Fatalf("artifact outside pack dir: %s", a.Path)
		}
		if a.Path == "packs/P02/P02-Training-Pack.xlsx" {
			sawXLSX = true
		}
	}
	if !sawXLSX {
		t.Fatalf("workbook not recorded: %+v", r.State.Artifacts)
	}
}
