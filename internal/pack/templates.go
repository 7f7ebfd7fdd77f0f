package pack

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/northwind-training/coursegen/internal/state"
)

//go:embed templates
var templateFS embed.FS

// templateData is what the TXT worksheets are rendered with. Participant is
// zero for the trainer set and Roster is nil for the participant set.
type templateData struct {
	Options
	Participant Participant
	Roster      []Participant
}

// RosterRange is "P01–P10" for a roster running from P01 to P10.
func (d templateData) RosterRange() string {
	switch len(d.Roster) {
	case 0:
		return ""
	case 1:
		return d.Roster[0].ID
	}
	return d.Roster[0].ID + "–" + d.Roster[len(d.Roster)-1].ID
}

// templateSet is the parsed worksheets of one pack kind.
type templateSet struct {
	tmpl  *template.Template
	files []string // template names in output order
}

var (
	participantSet = mustLoadSet("participant")
	trainerSet     = mustLoadSet("trainer")
)

func mustLoadSet(kind string) *templateSet {
	pattern := "templates/" + kind + "/*.tmpl"
	t := template.Must(template.New(kind).
		Option("missingkey=error").
		ParseFS(templateFS, "templates/partials.tmpl", pattern))

	matches, err := fs.Glob(templateFS, pattern)
	if err != nil {
		panic(err)
	}
	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = path.Base(m)
	}
	return &templateSet{tmpl: t, files: files}
}

// Names returns the output file names of the set.
func (s *templateSet) Names() []string {
	out := make([]string, len(s.files))
	for i, f := range s.files {
		out[i] = strings.TrimSuffix(f, ".tmpl")
	}
	return out
}

// writeTemplates renders every worksheet of set into dir.
func writeTemplates(ctx context.Context, dir string, set *templateSet, data templateData) ([]string, error) {
	var paths []string
	for _, name := range set.files {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		var buf bytes.Buffer
		if err := set.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
			return paths, fmt.Errorf("rendering %s: %w", name, err)
		}
		out := filepath.Join(dir, strings.TrimSuffix(name, ".tmpl"))
		if err := state.WriteFileAtomic(out, buf.Bytes(), 0644); err != nil {
			return paths, fmt.Errorf("saving %s: %w", filepath.Base(out), err)
		}
		paths = append(paths, out)
	}
	return paths, nil
}

// removeLegacy deletes trainer worksheets left by earlier pack layouts.
func removeLegacy(dir string) error {
	for _, name := range legacyTrainerTemplates {
		err := os.Remove(filepath.Join(dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	return nil
}
