// ABOUTME: Console progress lines and the end-of-run summary
// ABOUTME: Styled with the ui package, written to the generator's output
package generator

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/claudeup/plugin-readmes/internal/ui"
)

func (g *Generator) reportOutcome(o Outcome) {
	verb := "Created"
	if o.Action == ActionUpdated {
		verb = "Updated"
	}
	if g.opts.DryRun {
		verb = "Would " + strings.ToLower(strings.TrimSuffix(verb, "d"))
	}

	switch {
	case o.Action == ActionCreated || o.Action == ActionUpdated:
		fmt.Fprintln(g.out, ui.Success(fmt.Sprintf("%s %s: %s (%d agents, %d skills, %d commands)",
			ui.SymbolSuccess, o.Plugin, verb, o.Agents, o.Skills, o.Commands)))
	case o.Action == ActionSkipped:
		fmt.Fprintln(g.out, ui.Info(fmt.Sprintf("%s %s: Skipping (existing comprehensive README)", ui.SymbolInfo, o.Plugin)))
	case IsDirectoryNotFound(o):
		fmt.Fprintln(g.out, ui.Warning(fmt.Sprintf("%s %s", ui.SymbolWarning, o.Err)))
	default:
		fmt.Fprintln(g.out, ui.Error(fmt.Sprintf("%s %s: Error - %v", ui.SymbolError, o.Plugin, unwrapPlugin(o.Err))))
	}
}

func unwrapPlugin(err error) error {
	var pe *PluginError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// PrintSummary writes the aggregate report for a finished run.
func PrintSummary(w io.Writer, stats *RunStatistics) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.RenderHeader("Summary"))
	fmt.Fprintln(w, ui.RenderDetail("Total plugins", fmt.Sprintf("%d", stats.Total)))
	fmt.Fprintln(w, ui.RenderDetail("READMEs created", fmt.Sprintf("%d", stats.Created)))
	fmt.Fprintln(w, ui.RenderDetail("READMEs updated", fmt.Sprintf("%d", stats.Updated)))
	if stats.Skipped > 0 {
		fmt.Fprintln(w, ui.RenderDetail("READMEs preserved", fmt.Sprintf("%d", stats.Skipped)))
	}
	fmt.Fprintln(w, ui.RenderDetail("Errors", fmt.Sprintf("%d", len(stats.Errors))))

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.RenderDetail("Total agents documented", fmt.Sprintf("%d", stats.Agents)))
	fmt.Fprintln(w, ui.RenderDetail("Total skills documented", fmt.Sprintf("%d", stats.Skills)))
	fmt.Fprintln(w, ui.RenderDetail("Total commands documented", fmt.Sprintf("%d", stats.Commands)))

	if len(stats.Errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.RenderSection("Errors", len(stats.Errors)))
		for _, msg := range stats.Errors {
			fmt.Fprintln(w, ui.Indent(ui.Error("- "+msg), 1))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.RenderDetail("Documentation coverage", fmt.Sprintf("%.1f%%", stats.Coverage())))
}
