package ux

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/northwind-training/coursegen/internal/state"
)

// RenderStatus prints the last build recorded in outDir.
func RenderStatus(w io.Writer, st *state.State, timing *state.Timing, outDir string) {
	if !st.Recorded() {
		fmt.Fprintf(w, "%sNo build recorded in %s.%s Run 'coursegen build'.\n", Dim, outDir, Reset)
		return
	}

	fmt.Fprintf(w, "%sRun:%s     %s\n", Bold, Reset, st.RunID)
	fmt.Fprintf(w, "%sOutput:%s  %s\n", Bold, Reset, outDir)
	fmt.Fprintf(w, "%sState:%s   %s (%d/%d jobs, %s)\n",
		Bold, Reset, colorStatus(st.Status), st.JobsDone, st.JobsTotal, state.FormatDuration(st.Elapsed()))
	fmt.Fprintf(w, "%sStarted:%s %s\n", Bold, Reset, st.StartedAt.Format("2006-01-02 15:04:05"))
	if st.FailedJob != "" {
		fmt.Fprintf(w, "%sFailed:%s  %s\n", Bold, Reset, st.FailedJob)
	}

	if timing != nil && len(timing.Entries) > 0 {
		fmt.Fprintf(w, "\n%sJobs:%s\n", Bold, Reset)
		for i, e := range timing.Entries {
			dur := e.Duration
			if dur == "" {
				dur = Yellow + "unfinished" + Reset
			}
			fmt.Fprintf(w, "  %s%2d%s  %-24s %s\n", Dim, i+1, Reset, e.Job, dur)
		}
	}

	fmt.Fprintf(w, "\n%sArtifacts:%s\n", Bold, Reset)
	if len(st.Artifacts) == 0 {
		fmt.Fprintf(w, "  %s(none)%s\n", Dim, Reset)
		fmt.Fprintln(w)
		return
	}
	counts := st.CountByKind()
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	table := NewTable(w, []string{"Kind", "Files", "Size"})
	for _, k := range kinds {
		var size int64
		for _, a := range st.Artifacts {
			if a.Kind == k {
				size += a.Size
			}
		}
		table.Append([]string{k, strconv.Itoa(counts[k]), HumanSize(size)})
	}
	table.Render()

	if missing := st.CheckOutputs(outDir); len(missing) > 0 {
		fmt.Fprintf(w, "\n%s%d files listed in the manifest are missing; run 'coursegen verify'.%s\n",
			Yellow, len(missing), Reset)
	}
	fmt.Fprintln(w)
}

func colorStatus(s string) string {
	switch s {
	case state.StatusCompleted:
		return Green + s + Reset
	case state.StatusFailed:
		return Red + s + Reset
	case state.StatusInterrupted, state.StatusRunning:
		return Yellow + s + Reset
	}
	return s
}
