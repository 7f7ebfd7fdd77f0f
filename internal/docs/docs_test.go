package docs

import (
	"strings"
	"testing"
)

func TestAll_ReturnsTopics(t *testing.T) {
	topics := All()
	if len(topics) != 5 {
		t.Fatalf("All() returned %d topics, want 5", len(topics))
	}
	if topics[0].Name != "quickstart" {
		t.Errorf("first topic = %q, want %q", topics[0].Name, "quickstart")
	}
}

func TestAll_NoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range All() {
		if seen[topic.Name] {
			t.Errorf("duplicate topic name: %q", topic.Name)
		}
		seen[topic.Name] = true
	}
}

func TestAll_AllFieldsPopulated(t *testing.T) {
	for _, topic := range All() {
		if topic.Name == "" {
			t.Error("topic has empty Name")
		}
		if topic.Title == "" {
			t.Errorf("topic %q has empty Title", topic.Name)
		}
		if topic.Summary == "" {
			t.Errorf("topic %q has empty Summary", topic.Name)
		}
		if !strings.HasPrefix(topic.Content, topic.Title+"\n") {
			t.Errorf("topic %q content does not start with its title", topic.Name)
		}
	}
}

func TestConfigTopic_ListsOverrides(t *testing.T) {
	topic, err := Get("config")
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []string{"COURSEGEN_OUTPUT_DIR", "COURSEGEN_DATE", "COURSEGEN_PARTICIPANTS", "COURSEGEN_HANDOUTS"} {
		if !strings.Contains(topic.Content, v) {
			t.Errorf("config topic does not mention %s", v)
		}
	}
}

func TestGet_Found(t *testing.T) {
	topic, err := Get("packs")
	if err != nil {
		t.Fatalf("Get(packs) error: %v", err)
	}
	if topic.Name != "packs" {
		t.Errorf("Name = %q, want %q", topic.Name, "packs")
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("phases")
	if err == nil || !strings.Contains(err.Error(), "coursegen docs") {
		t.Fatalf("Get(phases) error = %v", err)
	}
}
