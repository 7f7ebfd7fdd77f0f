package state

import (
	"testing"
	"time"
)

func TestTiming_StartEndFlush(t *testing.T) {
	dir := t.TempDir()
	tm := &Timing{}
	tm.AddStart("deck intro")
	tm.AddStart("deck m01")
	tm.AddEnd("deck intro")

	if tm.Entries[0].End.IsZero() {
		t.Fatal("deck intro should be closed")
	}
	if !tm.Entries[1].End.IsZero() {
		t.Fatal("deck m01 should still be open")
	}
	if err := tm.Flush(dir); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadTiming(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Entries) != 2 || loaded.Entries[0].Job != "deck intro" {
		t.Fatalf("unexpected entries: %+v", loaded.Entries)
	}
}

func TestLoadTiming_NoFile(t *testing.T) {
	tm, err := LoadTiming(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(tm.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(tm.Entries))
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		0:                             "0m 00s",
		5 * time.Second:               "0m 05s",
		2*time.Minute + 7*time.Second: "2m 07s",
	}
	for d, want := range cases {
		if got := FormatDuration(d); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}
