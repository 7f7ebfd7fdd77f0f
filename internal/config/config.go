package config

import (
	"fmt"
	"os"
	"path/filepath"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/northwind-training/coursegen/internal/content"
	"github.com/northwind-training/coursegen/internal/pack"
)

// FileName is the course configuration file looked up by Find.
const FileName = "course.yaml"

type Participants struct {
	Count     int    `yaml:"count"`
	IDPrefix  string `yaml:"id-prefix"`
	Pattern   string `yaml:"pattern"`
	TrainerID string `yaml:"trainer-id"`
	Roster    string `yaml:"roster"`
}

type Config struct {
	CourseTitle  string       `yaml:"course-title"`
	Scenario     string       `yaml:"scenario"`
	Date         string       `yaml:"date"`
	OutputDir    string       `yaml:"output-dir"`
	Decks        []string     `yaml:"decks"`
	Handouts     bool         `yaml:"handouts"`
	Participants Participants `yaml:"participants"`

	// Root is the directory holding the config file. Relative paths are
	// resolved against it.
	Root string `yaml:"-"`
}

// overrides are the environment variables that take precedence over the
// file.
type overrides struct {
	OutputDir    *string `env:"COURSEGEN_OUTPUT_DIR"`
	Date         *string `env:"COURSEGEN_DATE"`
	Participants *int    `env:"COURSEGEN_PARTICIPANTS"`
	Handouts     *bool   `env:"COURSEGEN_HANDOUTS"`
}

// Default returns the configuration used for keys the file leaves out.
func Default() *Config {
	return &Config{
		CourseTitle: content.CourseTitle,
		Scenario:    content.ScenarioTitle,
		Date:        pack.DefaultDate,
		OutputDir:   "out",
		Handouts:    true,
		Participants: Participants{
			Count:     10,
			IDPrefix:  "P",
			Pattern:   `P\d{2}`,
			TrainerID: pack.DefaultTrainerID,
		},
	}
}

// Load reads a YAML config file, applies .env and environment overrides,
// and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", filepath.Base(path), err)
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	cfg.Root = abs

	dotenv := filepath.Join(cfg.Root, ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			return nil, fmt.Errorf("config: loading .env: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var o overrides
	if _, err := env.UnmarshalFromEnviron(&o); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	if o.OutputDir != nil {
		c.OutputDir = *o.OutputDir
	}
	if o.Date != nil {
		c.Date = *o.Date
	}
	if o.Participants != nil {
		c.Participants.Count = *o.Participants
	}
	if o.Handouts != nil {
		c.Handouts = *o.Handouts
	}
	return nil
}

// Find walks up from dir looking for course.yaml and returns its path.
func Find(dir string) (string, error) {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found (searched from cwd to root); run 'coursegen init'", FileName)
		}
		dir = parent
	}
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// OutDir is the absolute output directory.
func (c *Config) OutDir() string {
	return c.resolve(c.OutputDir)
}

// RosterSpec describes the class roster for the pack builder.
func (c *Config) RosterSpec() pack.RosterSpec {
	return pack.RosterSpec{
		Count:   c.Participants.Count,
		Prefix:  c.Participants.IDPrefix,
		Pattern: c.Participants.Pattern,
		File:    c.resolve(c.Participants.Roster),
	}
}

// PackOptions are the pack strings taken from the config.
func (c *Config) PackOptions() pack.Options {
	return pack.Options{
		CourseTitle: c.CourseTitle,
		Scenario:    c.Scenario,
		Date:        c.Date,
		TrainerID:   c.Participants.TrainerID,
	}
}

// SelectedDecks returns the configured decks in course order, or every deck
// when none are listed.
func (c *Config) SelectedDecks() []*content.Deck {
	return selectDecks(c.Decks)
}

// selectDecks resolves keys to decks in course order. Unknown keys are
// ignored; Validate reports them.
func selectDecks(keys []string) []*content.Deck {
	if len(keys) == 0 {
		return content.All()
	}
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		if d, err := content.Get(k); err == nil {
			want[d.ID] = true
		}
	}
	var out []*content.Deck
	for _, d := range content.All() {
		if want[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

// SelectDecks resolves --only style keys, failing on the first unknown one.
func SelectDecks(keys []string) ([]*content.Deck, error) {
	for _, k := range keys {
		if _, err := content.Get(k); err != nil {
			return nil, err
		}
	}
	return selectDecks(keys), nil
}
