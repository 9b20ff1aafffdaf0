// ABOUTME: List command showing marketplace plugins and their component counts
// ABOUTME: Read-only view of what a generation run would document
package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/claudeup/plugin-readmes/internal/generator"
	"github.com/claudeup/plugin-readmes/internal/logger"
	"github.com/claudeup/plugin-readmes/internal/marketplace"
	"github.com/claudeup/plugin-readmes/internal/metadata"
	"github.com/claudeup/plugin-readmes/internal/pluginsearch"
	"github.com/claudeup/plugin-readmes/internal/ui"
	"github.com/spf13/cobra"
)

var (
	listCategory string
	listSearch   string
	listRegex    bool
	listType     string
)

var listCmd = &cobra.Command{
	Use:     "list",
	GroupID: ui.GroupInspect,
	Short:   "List marketplace plugins with their agents, skills and commands",
	Example: `  plugin-readmes list
  plugin-readmes list --category development

  # Find plugins whose name, description, keywords or components match
  plugin-readmes list --search python
  plugin-readmes list --search "^test" --regex --type agents`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listCategory, "category", "", "Only show plugins in this category")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only show plugins matching this query")
	listCmd.Flags().BoolVar(&listRegex, "regex", false, "Treat --search as a regular expression")
	listCmd.Flags().StringVar(&listType, "type", "", "Restrict --search to agents, skills or commands")
}

// pluginRow is one line of the list table.
type pluginRow struct {
	Name     string
	Category string
	Agents   int
	Skills   int
	Commands int
	Readme   string // present, missing or the error that prevented a build
	Matches  []pluginsearch.Match
}

func runList(cmd *cobra.Command, args []string) error {
	manifest, err := marketplace.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}

	var matcher *pluginsearch.Matcher
	if listSearch != "" {
		matcher, err = pluginsearch.NewMatcher(listSearch, pluginsearch.SearchOptions{
			UseRegex:   listRegex,
			FilterType: listType,
		})
		if err != nil {
			return err
		}
	}

	rows := pluginRows(cmd.Context(), manifest, marketplace.BaseDir(cfg.ManifestPath), listCategory, matcher)
	printPluginRows(cmd.OutOrStdout(), rows, len(manifest.Entries))
	return nil
}

// pluginRows builds the README of each plugin in memory to count its
// components. Nothing is written. A nil matcher keeps every plugin.
func pluginRows(ctx context.Context, manifest *marketplace.Manifest, base, category string, matcher *pluginsearch.Matcher) []pluginRow {
	var rows []pluginRow
	for _, entry := range manifest.Entries {
		plugin := entry.Plugin
		if category != "" && plugin.Category != category {
			continue
		}

		row := pluginRow{Name: entry.Label(), Category: plugin.Category}
		var components metadata.Components

		build, err := buildEntry(ctx, entry, base)
		if err != nil {
			logger.G(ctx).WithError(err).WithField("plugin", entry.Label()).Debug("cannot build plugin")
			row.Readme = err.Error()
		} else {
			components = build.Components
			row.Agents, row.Skills, row.Commands = build.Counts()
			row.Readme = "missing"
			if exists, err := build.ReadmeExists(); err != nil {
				row.Readme = err.Error()
			} else if exists {
				row.Readme = "present"
			}
		}

		if matcher != nil {
			row.Matches = matcher.Match(plugin, components)
			if len(row.Matches) == 0 {
				continue
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func buildEntry(ctx context.Context, entry marketplace.Entry, base string) (*generator.Build, error) {
	if entry.Err != nil {
		return nil, entry.Err
	}
	return generator.BuildPlugin(ctx, entry.Plugin, base)
}

func printPluginRows(w io.Writer, rows []pluginRow, total int) {
	if len(rows) == 0 {
		fmt.Fprintln(w, ui.Info(ui.SymbolInfo+" No plugins found"))
		return
	}

	columns := []ui.Column{
		{Title: "PLUGIN", Width: 20},
		{Title: "CATEGORY"},
		{Title: "AGENTS"},
		{Title: "SKILLS"},
		{Title: "COMMANDS"},
		{Title: "README"},
	}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Name,
			r.Category,
			strconv.Itoa(r.Agents),
			strconv.Itoa(r.Skills),
			strconv.Itoa(r.Commands),
			r.Readme,
		})
	}

	fmt.Fprintln(w, ui.RenderSection("Plugins", len(rows)))
	fmt.Fprintln(w)
	fmt.Fprint(w, ui.RenderTable(columns, cells))
	printMatches(w, rows)
	if len(rows) < total {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.Muted(fmt.Sprintf("Showing %d of %d plugins", len(rows), total)))
	}
}

func printMatches(w io.Writer, rows []pluginRow) {
	for _, r := range rows {
		if len(r.Matches) == 0 {
			continue
		}
		parts := make([]string, 0, len(r.Matches))
		for _, m := range r.Matches {
			parts = append(parts, m.String())
		}
		fmt.Fprintln(w, ui.Indent(ui.Muted(fmt.Sprintf("%s %s matched %s", ui.SymbolArrow, r.Name, strings.Join(parts, ", "))), 1))
	}
}
