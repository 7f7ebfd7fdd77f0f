package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/northwind-training/coursegen/internal/config"
	"github.com/northwind-training/coursegen/internal/state"
	"github.com/northwind-training/coursegen/internal/ux"
)

var configTemplate = `# coursegen configuration. Run 'coursegen docs config' for every field.
course-title: Modern SharePoint Online for Administrators (3-Day, 2026 aligned)
scenario: Project Northwind Intranet Modernization
date: 2026-02-09
output-dir: out

# Deck IDs to build (intro, m01 .. m09). Empty builds all of them.
decks: []
handouts: true

participants:
  count: 10
  id-prefix: P
  pattern: 'P\d{2}'
  trainer-id: TRAINER
  roster: ""
`

const gitignore = "out/\n.env\n"

// Options controls what init writes besides course.yaml.
type Options struct {
	// Roster also writes roster.xlsx with the default participant IDs and
	// points the config at it.
	Roster bool
}

// Init writes an example course.yaml (and .gitignore) into targetDir. It
// refuses to overwrite an existing config.
func Init(targetDir string, opts Options) error {
	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	body := configTemplate
	written := []string{config.FileName}
	if opts.Roster {
		def := config.Default()
		if err := writeRoster(filepath.Join(targetDir, rosterFile), def.RosterSpec()); err != nil {
			return err
		}
		body = strings.Replace(body, `roster: ""`, "roster: "+rosterFile, 1)
		written = append(written, rosterFile)
	}

	if err := state.WriteFileAtomic(configPath, []byte(body), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	ignorePath := filepath.Join(targetDir, ".gitignore")
	if _, err := os.Stat(ignorePath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(ignorePath, []byte(gitignore), 0644); err != nil {
			return fmt.Errorf("writing .gitignore: %w", err)
		}
		written = append(written, ".gitignore")
	}

	printSuccess(written)
	return nil
}

func printSuccess(written []string) {
	fmt.Printf("\n%s%s✓ Initialized course%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	for _, f := range written {
		fmt.Printf("    %s%s%s\n", ux.Cyan, f, ux.Reset)
	}
	fmt.Printf("\n  Next steps:\n")
	fmt.Printf("    1. Edit %s%s%s for your class\n", ux.Cyan, config.FileName, ux.Reset)
	fmt.Printf("    2. Run %scoursegen build --dry-run%s to preview\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %scoursegen build%s\n\n", ux.Cyan, ux.Reset)
}
