package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// Artifact kinds, named after the file extension.
const (
	KindPPTX = "pptx"
	KindDOCX = "docx"
	KindPDF  = "pdf"
	KindXLSX = "xlsx"
	KindTXT  = "txt"
)

// Artifact is one generated file. Path is relative to the output directory
// and uses forward slashes.
type Artifact struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
	Job  string `json:"job"`
	Size int64  `json:"size"`
}

// KindOf returns the artifact kind for a file name.
func KindOf(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// Output subdirectories.
const (
	DecksDir    = "decks"
	HandoutsDir = "handouts"
	PacksDir    = "packs"
)

// EnsureDir creates the output directory structure.
func EnsureDir(outDir string) error {
	dirs := []string{
		outDir,
		Dir(outDir),
		filepath.Join(outDir, DecksDir),
		filepath.Join(outDir, HandoutsDir),
		filepath.Join(outDir, PacksDir),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating output dir %s: %w", d, err)
		}
	}
	return nil
}

// Record stats a written file and appends it to the manifest. A file that is
// already listed is replaced, so rebuilding one deck does not duplicate it.
func (s *State) Record(outDir, path, job string) (Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Artifact{}, err
	}
	rel, err := filepath.Rel(outDir, path)
	if err != nil {
		return Artifact{}, err
	}
	a := Artifact{
		Path: filepath.ToSlash(rel),
		Kind: KindOf(path),
		Job:  job,
		Size: info.Size(),
	}
	for i := range s.Artifacts {
		if s.Artifacts[i].Path == a.Path {
			s.Artifacts[i] = a
			return a, nil
		}
	}
	s.Artifacts = append(s.Artifacts, a)
	return a, nil
}

// CheckOutputs returns the manifest paths that no longer exist on disk.
func (s *State) CheckOutputs(outDir string) []string {
	var missing []string
	for _, a := range s.Artifacts {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(a.Path))); err != nil {
			missing = append(missing, a.Path)
		}
	}
	return missing
}

// CountByKind tallies artifacts per kind.
func (s *State) CountByKind() map[string]int {
	return lo.CountValuesBy(s.Artifacts, func(a Artifact) string { return a.Kind })
}
