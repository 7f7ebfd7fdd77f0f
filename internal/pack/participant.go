package pack

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

// Participant is one trainee in the shared tenant. Every lab artifact the
// trainee creates is prefixed with NW-<ID>-.
type Participant struct {
	ID string
}

func (p Participant) Prefix() string       { return "NW-" + p.ID + "-" }
func (p Participant) ProjectSite() string  { return p.Prefix() + "ProjectSite" }
func (p Participant) Contracts() string    { return p.Prefix() + "Contracts" }
func (p Participant) TermGroup() string    { return p.Prefix() + "TermGroup" }
func (p Participant) ContractType() string { return p.Prefix() + "ContractType" }
func (p Participant) AppRequests() string  { return p.Prefix() + "AppRequests" }

// RosterSpec describes where the class roster comes from. When File is set
// the IDs are read from column A of its first sheet, otherwise Count IDs
// are numbered from Prefix.
type RosterSpec struct {
	Count   int
	Prefix  string
	Pattern string
	File    string
}

// CompilePattern anchors an ID pattern so it must match the whole ID.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("participant pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Roster builds the participant list for spec.
func Roster(spec RosterSpec) ([]Participant, error) {
	re, err := CompilePattern(spec.Pattern)
	if err != nil {
		return nil, err
	}

	var ids []string
	if spec.File != "" {
		ids, err = readRosterIDs(spec.File)
		if err != nil {
			return nil, err
		}
	} else {
		for i := 1; i <= spec.Count; i++ {
			ids = append(ids, fmt.Sprintf("%s%02d", spec.Prefix, i))
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}

	seen := make(map[string]bool, len(ids))
	out := make([]Participant, 0, len(ids))
	for _, id := range ids {
		if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
			return nil, fmt.Errorf("participant ID %q must not contain path separators", id)
		}
		if !re.MatchString(id) {
			return nil, fmt.Errorf("participant ID %q does not match pattern %q", id, spec.Pattern)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate participant ID %q", id)
		}
		seen[id] = true
		out = append(out, Participant{ID: id})
	}
	return out, nil
}

// readRosterIDs returns the non-empty cells of column A of the first sheet.
// A leading "Participant ID" header cell is skipped.
func readRosterIDs(path string) ([]string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return nil, fmt.Errorf("roster %s: not an .xlsx workbook", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("roster %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading roster sheet %s: %w", sheets[0], err)
	}

	var ids []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if id == "" {
			continue
		}
		if i == 0 && strings.EqualFold(id, "Participant ID") {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// IDs returns the participant IDs in roster order.
func IDs(ps []Participant) []string {
	return lo.Map(ps, func(p Participant, _ int) string { return p.ID })
}
