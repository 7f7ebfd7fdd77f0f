package ux

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/northwind-training/coursegen/internal/state"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// JobHeader prints a timestamped job header.
func JobHeader(index, total int, name, kind string) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Printf("%s[%s]%s  %sJob %d/%d: %s (%s)%s\n",
		Dim, timestamp(), Reset, Bold, index+1, total, name, kind, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// JobComplete prints a job completion message.
func JobComplete(index int, duration time.Duration, files int) {
	fmt.Printf("%s[%s]%s  %s✓ Job %d complete, %d files (%s)%s\n",
		Dim, timestamp(), Reset, Green, index+1, files, state.FormatDuration(duration), Reset)
}

// JobFail prints a job failure message.
func JobFail(index int, name, errMsg string) {
	fmt.Printf("%s[%s]%s  %s✗ Job %d (%s) failed: %s%s\n",
		Dim, timestamp(), Reset, Red, index+1, name, errMsg, Reset)
}

// Artifact prints one written file.
func Artifact(a state.Artifact) {
	fmt.Printf("  %s+%s %s %s(%s)%s\n", Green, Reset, a.Path, Dim, HumanSize(a.Size), Reset)
}

// ResumeHint prints the command that rebuilds what is left.
func ResumeHint(command string) {
	fmt.Printf("\n%sResume:%s %s\n", Yellow, Reset, command)
}

// Success prints a final success message.
func Success(total, files int) {
	fmt.Printf("\n%s[%s]%s  %s%s══ All %d jobs complete, %d files written ══%s\n\n",
		Dim, timestamp(), Reset, Bold, Green, total, files, Reset)
}

// HumanSize renders a byte count as "512 B", "48.2 KB" or "1.3 MB".
func HumanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// NewTable returns a borderless, left-aligned table writer.
func NewTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
