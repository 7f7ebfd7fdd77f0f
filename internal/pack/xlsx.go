package pack

import (
	"bytes"
	"fmt"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/northwind-training/coursegen/internal/theme"
)

// Sheet names of the pack workbooks.
const (
	SheetTracker  = "Tracker"
	SheetLinks    = "Links"
	SheetRoster   = "Roster"
	SheetChecks   = "Module Checks"
	SheetIssueLog = "Issue Log"
)

func thinBorders(color string) *gospreadsheet.Borders {
	b := gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: color}
	return &gospreadsheet.Borders{Left: b, Top: b, Bottom: b, Right: b}
}

// sheetTable writes header at row0 and rows below it, styled like the
// course tables, and sets the column widths.
func sheetTable(ws *gospreadsheet.Worksheet, row0 int, header []string, rows [][]string, widths []float64) {
	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: string(theme.White),
			Name:  theme.FontDoc,
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: string(theme.AccentBlue),
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(thinBorders(string(theme.White)))

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: theme.FontDoc,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(thinBorders(string(theme.LightGray)))

	for i, h := range header {
		cellName, _ := gospreadsheet.CellName(row0, i)
		ws.SetCellValue(cellName, h)
		ws.SetCellStyle(cellName, headerStyle)
	}
	ws.SetRowHeight(row0, 22)

	for r, row := range rows {
		for i := range header {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			cellName, _ := gospreadsheet.CellName(row0+1+r, i)
			ws.SetCellValue(cellName, v)
			ws.SetCellStyle(cellName, dataStyle)
		}
	}
	for i, w := range widths {
		ws.SetColumnWidth(i, w)
	}
}

// sheetLabels writes bold label/value pairs into columns A and B from the
// first row.
func sheetLabels(ws *gospreadsheet.Worksheet, pairs [][2]string) {
	labelStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{Bold: true, Size: 11, Name: theme.FontDoc})
	for r, p := range pairs {
		label, _ := gospreadsheet.CellName(r, 0)
		value, _ := gospreadsheet.CellName(r, 1)
		ws.SetCellValue(label, p[0])
		ws.SetCellStyle(label, labelStyle)
		ws.SetCellValue(value, p[1])
	}
}

func taskRows(tasks []task, blanks int) [][]string {
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		row := []string{t.Module, t.Text}
		for j := 0; j < blanks; j++ {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}

// buildWorkbook creates a workbook, lets fill populate its first sheet and
// add more, and returns the .xlsx bytes.
func buildWorkbook(title, description string, fill func(first *gospreadsheet.Worksheet, add func(name string) (*gospreadsheet.Worksheet, error)) error) ([]byte, error) {
	wb := gospreadsheet.New()
	wb.Properties.Title = title
	wb.Properties.Creator = creator
	wb.Properties.Description = description
	wb.Properties.Subject = "Training pack"

	add := func(name string) (*gospreadsheet.Worksheet, error) {
		ws, err := wb.AddSheet(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		return ws, nil
	}
	if err := fill(wb.GetActiveSheet(), add); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// Tracker layout: participant details in A1:B3, task header on row 5,
// tasks from row 6.
const trackerHeaderRow = 4

func participantXlsx(p Participant, opts Options) ([]byte, error) {
	return buildWorkbook("Participant Tracker "+p.ID, opts.CourseTitle, func(ws *gospreadsheet.Worksheet, add func(string) (*gospreadsheet.Worksheet, error)) error {
		ws.SetTitle(SheetTracker)
		sheetLabels(ws, [][2]string{
			{"Participant ID", p.ID},
			{"Practice site name", p.ProjectSite()},
			{"Contracts library", p.Contracts()},
		})
		sheetTable(ws, trackerHeaderRow,
			[]string{"Module", "Task", "Done (Y/N)", "Notes"},
			taskRows(trackerTasks, 2),
			[]float64{10, 50, 12, 40})
		ws.FreezePane("A6")

		links, err := add(SheetLinks)
		if err != nil {
			return err
		}
		rows := make([][]string, len(referenceLinks))
		for i, l := range referenceLinks {
			rows[i] = []string{l.Name, l.URL}
		}
		sheetTable(links, 0, []string{"Reference", "URL"}, rows, []float64{28, 90})
		return nil
	})
}

func trainerXlsx(roster []Participant, opts Options) ([]byte, error) {
	return buildWorkbook("Trainer Workbook", opts.CourseTitle, func(ws *gospreadsheet.Worksheet, add func(string) (*gospreadsheet.Worksheet, error)) error {
		ws.SetTitle(SheetRoster)
		rows := make([][]string, len(roster))
		for i, p := range roster {
			rows[i] = []string{p.ID, p.ProjectSite(), ""}
		}
		sheetTable(ws, 0, []string{"Participant ID", "Practice site name", "Notes"}, rows, []float64{14, 26, 50})
		ws.FreezePane("A2")

		checks, err := add(SheetChecks)
		if err != nil {
			return err
		}
		sheetTable(checks, 0, []string{"Module", "Checkpoint", "Status"}, taskRows(trainerChecks, 1), []float64{8, 62, 14})

		issues, err := add(SheetIssueLog)
		if err != nil {
			return err
		}
		sheetTable(issues, 0, []string{"Time", "Participant", "Issue", "Resolution"}, nil, []float64{18, 12, 45, 45})
		return nil
	})
}
