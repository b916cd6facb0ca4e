package script

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes a run result to w in the requested format ("table" or
// "plain").
func Render(w io.Writer, result *RunResult, format string) {
	if format == "plain" {
		RenderPlain(w, result)
		return
	}
	RenderTable(w, result)
}

// RenderTable renders the step results as a bordered table.
func RenderTable(w io.Writer, result *RunResult) {
	if result.Script.Name != "" {
		_, _ = fmt.Fprintf(w, "Script: %s\n", result.Script.Name)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Op", "Detail", "Outcome", "List"})

	for _, step := range result.Steps {
		t.AppendRow(table.Row{step.Index, step.Op, step.Detail, step.Outcome, step.List})
	}

	t.Render()
	renderSummary(w, result)
}

// RenderPlain renders the step results one line per step.
func RenderPlain(w io.Writer, result *RunResult) {
	if result.Script.Name != "" {
		_, _ = fmt.Fprintf(w, "Script: %s\n", result.Script.Name)
	}

	for _, step := range result.Steps {
		_, _ = fmt.Fprintf(w, "%3d  %-14s %-32s %-24s %s\n",
			step.Index, step.Op, step.Detail, step.Outcome, step.List)
	}

	renderSummary(w, result)
}

// renderSummary prints the final list line. Synthetic results built by
// the demo command have no final list.
func renderSummary(w io.Writer, result *RunResult) {
	if result.Final == nil {
		if len(result.Errors) > 0 {
			_, _ = fmt.Fprintf(w, "%d failed steps\n", len(result.Errors))
		}
		return
	}

	_, _ = fmt.Fprintf(w, "final: %s (length %d, %d failed steps)\n",
		result.Final.String(), result.Final.Len(), len(result.Errors))
}
