// ABOUTME: Preview command that renders one plugin's generated README
// ABOUTME: Uses glamour on a terminal and plain markdown otherwise
package commands

import (
	"fmt"

	"github.com/claudeup/plugin-readmes/internal/generator"
	"github.com/claudeup/plugin-readmes/internal/marketplace"
	"github.com/claudeup/plugin-readmes/internal/ui"
	"github.com/spf13/cobra"
)

var previewRaw bool

var previewCmd = &cobra.Command{
	Use:     "preview <plugin>",
	GroupID: ui.GroupInspect,
	Short:   "Render the README that would be generated for a plugin",
	Long: `Assemble the README for a single plugin and print it without writing it.

Output is rendered with glamour when stdout is a terminal. Use --raw, or
pipe the output, to get plain markdown.`,
	Example: `  plugin-readmes preview python-development
  plugin-readmes preview python-development --raw > README.md`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolVar(&previewRaw, "raw", false, "Print plain markdown")
}

func runPreview(cmd *cobra.Command, args []string) error {
	manifest, err := marketplace.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}

	plugin, err := findPlugin(manifest, args[0])
	if err != nil {
		return err
	}

	build, err := generator.BuildPlugin(cmd.Context(), plugin, marketplace.BaseDir(cfg.ManifestPath))
	if err != nil {
		return &generator.PluginError{Plugin: plugin.Name, Err: err}
	}

	raw := previewRaw || !ui.StdoutIsTerminal()
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(build.Content, raw))
	return nil
}

func findPlugin(manifest *marketplace.Manifest, name string) (marketplace.Plugin, error) {
	for _, e := range manifest.Entries {
		if e.Plugin.Name != name {
			continue
		}
		if e.Err != nil {
			return marketplace.Plugin{}, &generator.PluginError{Plugin: name, Err: e.Err}
		}
		return e.Plugin, nil
	}
	return marketplace.Plugin{}, fmt.Errorf("plugin %q not found in marketplace %q", name, manifest.Name)
}
