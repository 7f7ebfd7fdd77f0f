package scaffold

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/northwind-training/coursegen/internal/pack"
)

const rosterFile = "roster.xlsx"

// writeRoster writes a starter roster workbook: a "Participant ID" header
// and one generated ID per row in column A, the layout pack.Roster reads.
func writeRoster(path string, spec pack.RosterSpec) error {
	ps, err := pack.Roster(spec)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := append([]string{"Participant ID"}, pack.IDs(ps)...)
	for i, v := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("writing %s: %w", rosterFile, err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 18); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", rosterFile, err)
	}
	return nil
}
