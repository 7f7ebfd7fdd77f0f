// Package verify checks generated files against the build manifest.
package verify

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/northwind-training/coursegen/internal/state"
)

// Problem is one artifact that failed a check.
type Problem struct {
	Path   string
	Reason string
}

func (p Problem) String() string {
	return p.Path + ": " + p.Reason
}

// expected maps an artifact kind to the content types it may be detected
// as. Office files are zip containers; the specific OOXML type is only
// reported when the zip entries are in the order the detector expects, so
// their kind is settled by mainParts.
var expected = map[string][]string{
	state.KindPPTX: {"application/vnd.openxmlformats-officedocument.presentationml.presentation", "application/zip"},
	state.KindDOCX: {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	state.KindXLSX: {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "application/zip"},
	state.KindPDF:  {"application/pdf"},
	state.KindTXT:  {"text/plain"},
}

// mainParts maps each Office kind to the content type its main part
// declares in [Content_Types].xml.
var mainParts = map[string]string{
	state.KindPPTX: "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml",
	state.KindDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml",
	state.KindXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml",
}

type contentTypes struct {
	Overrides []struct {
		PartName    string `xml:"PartName,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Override"`
}

// Verify re-reads the manifest in outDir and returns one problem per
// artifact that is missing, has changed size, or does not look like its
// kind. It fails only when the manifest itself cannot be read.
func Verify(outDir string) (*state.State, []Problem, error) {
	st, err := state.Load(outDir)
	if err != nil {
		return nil, nil, err
	}
	if !st.Recorded() {
		return st, nil, fmt.Errorf("no build recorded in %s; run 'coursegen build'", outDir)
	}

	var problems []Problem
	for _, a := range st.Artifacts {
		if reason := check(outDir, a); reason != "" {
			problems = append(problems, Problem{Path: a.Path, Reason: reason})
		}
	}
	return st, problems, nil
}

func check(outDir string, a state.Artifact) string {
	path := filepath.Join(outDir, filepath.FromSlash(a.Path))
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "missing"
		}
		return err.Error()
	}
	if info.Size() != a.Size {
		return fmt.Sprintf("size %d, manifest says %d", info.Size(), a.Size)
	}

	want, ok := expected[a.Kind]
	if !ok {
		return fmt.Sprintf("unknown kind %q", a.Kind)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return err.Error()
	}
	if !matches(mt, want) {
		return fmt.Sprintf("content is %s, not %s", mt.String(), a.Kind)
	}
	if _, office := mainParts[a.Kind]; office {
		got, err := packageKind(path)
		if err != nil {
			return err.Error()
		}
		switch got {
		case a.Kind:
		case "":
			return fmt.Sprintf("no %s main part in [Content_Types].xml", a.Kind)
		default:
			return fmt.Sprintf("package is %s, not %s", got, a.Kind)
		}
	}
	return ""
}

// packageKind returns the Office kind whose main part the zip at path
// declares, or "" if it declares none.
func packageKind(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening zip: %w", err)
	}
	defer zr.Close()

	f, err := zr.Open("[Content_Types].xml")
	if err != nil {
		return "", fmt.Errorf("no [Content_Types].xml")
	}
	defer f.Close()

	var ct contentTypes
	if err := xml.NewDecoder(f).Decode(&ct); err != nil {
		return "", fmt.Errorf("reading [Content_Types].xml: %w", err)
	}
	for _, o := range ct.Overrides {
		for kind, main := range mainParts {
			if o.ContentType == main {
				return kind, nil
			}
		}
	}
	return "", nil
}

// matches reports whether mt or one of its parents is in want.
func matches(mt *mimetype.MIME, want []string) bool {
	for m := mt; m != nil; m = m.Parent() {
		for _, w := range want {
			if m.Is(w) {
				return true
			}
		}
	}
	return false
}
