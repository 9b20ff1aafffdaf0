// ABOUTME: History command for viewing README writes recorded in the audit log
// ABOUTME: Displays tracked writes with filtering by plugin, file and age
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/claudeup/plugin-readmes/internal/events"
	"github.com/claudeup/plugin-readmes/internal/ui"
	"github.com/spf13/cobra"
)

var (
	historyFile   string
	historyPlugin string
	historySince  string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	GroupID: ui.GroupInspect,
	Short:   "View README writes recorded in the audit log",
	Long:    `Display README writes recorded with --audit-log, most recent first.`,
	Example: `  plugin-readmes history --audit-log audit.jsonl
  plugin-readmes history --plugin python-development
  plugin-readmes history --since 7d --limit 50`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyFile, "file", "", "Filter by file path")
	historyCmd.Flags().StringVar(&historyPlugin, "plugin", "", "Filter by plugin name")
	historyCmd.Flags().StringVar(&historySince, "since", "", "Show writes since duration (e.g., 24h, 7d)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of writes to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if cfg.AuditLog == "" {
		fmt.Fprintln(out, ui.Info(ui.SymbolInfo+" Audit log disabled."))
		fmt.Fprintln(out, ui.Muted("Pass --audit-log or set PLUGIN_READMES_AUDIT_LOG to record README writes."))
		return nil
	}

	writer, err := events.NewJSONLWriter(cfg.AuditLog)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}

	var sinceTime time.Time
	if historySince != "" {
		duration, err := parseDuration(historySince)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = time.Now().Add(-duration)
	}

	writes, err := writer.Query(events.EventFilters{
		File:   historyFile,
		Plugin: historyPlugin,
		Since:  sinceTime,
		Limit:  historyLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to query audit log: %w", err)
	}

	if len(writes) == 0 {
		fmt.Fprintln(out, ui.Info(fmt.Sprintf("%s No README writes found matching the filters in %s", ui.SymbolInfo, writer.Path())))
		return nil
	}

	fmt.Fprintln(out, ui.Success(fmt.Sprintf("%s Found %d write(s):", ui.SymbolSuccess, len(writes))))
	fmt.Fprintln(out)
	for _, event := range writes {
		displayEvent(out, event)
		fmt.Fprintln(out)
	}
	return nil
}

func displayEvent(w io.Writer, event *events.FileOperation) {
	statusIcon := ui.SymbolSuccess
	if event.Error != "" {
		statusIcon = ui.SymbolError
	}

	fmt.Fprintln(w, ui.Info(fmt.Sprintf("%s  %s  %s  %s",
		statusIcon,
		event.Timestamp.Format("2006-01-02 15:04:05"),
		strings.ToUpper(event.Operation),
		event.Plugin,
	)))
	fmt.Fprintf(w, "  File: %s\n", event.File)
	fmt.Fprintf(w, "  Change: %s %s\n", ui.SymbolArrow, event.ChangeType)

	if event.Before != nil && event.After != nil {
		sizeDiff := event.After.Size - event.Before.Size
		sizeDiffStr := fmt.Sprintf("%+d bytes", sizeDiff)
		if sizeDiff == 0 {
			sizeDiffStr = "no size change"
		}
		fmt.Fprintf(w, "  Size: %s\n", sizeDiffStr)
	} else if event.After != nil {
		fmt.Fprintf(w, "  Size: %d bytes\n", event.After.Size)
	}

	if event.Error != "" {
		fmt.Fprintln(w, ui.Error("  Error: "+event.Error))
	}
}

// parseDuration parses duration strings like "24h", "7d", "30m"
func parseDuration(s string) (time.Duration, error) {
	// Handle days specially
	if strings.HasSuffix(s, "d") {
		days := strings.TrimSuffix(s, "d")
		var d int
		if _, err := fmt.Sscanf(days, "%d", &d); err != nil {
			return 0, err
		}
		return time.Duration(d) * 24 * time.Hour, nil
	}

	// Use standard time.ParseDuration for hours, minutes, seconds
	return time.ParseDuration(s)
}
