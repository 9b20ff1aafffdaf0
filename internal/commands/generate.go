// ABOUTME: Generate command that rewrites every plugin README in the marketplace
// ABOUTME: Also the default action of the root command
package commands

import (
	"github.com/claudeup/plugin-readmes/internal/generator"
	"github.com/claudeup/plugin-readmes/internal/ui"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	GroupID: ui.GroupGenerate,
	Short:   "Generate README files for all marketplace plugins",
	Long: `Generate a README.md for every plugin in the marketplace manifest.

Plugins are processed one at a time. A plugin that fails is reported and
the run continues; only an unreadable manifest stops the run.`,
	Example: `  # Generate all READMEs from .claude-plugin/marketplace.json
  plugin-readmes generate

  # Show what would change without writing
  plugin-readmes generate --dry-run

  # Record every write in an audit log
  plugin-readmes generate --audit-log .plugin-readmes/audit.jsonl

  # Keep the previous READMEs before overwriting them
  plugin-readmes generate --backup-dir .plugin-readmes/backups`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tracker, err := newTracker(cfg)
	if err != nil {
		return err
	}

	gen := generator.New(generator.Options{
		ManifestPath: cfg.ManifestPath,
		Exempt:       cfg.Exempt,
		DryRun:       cfg.DryRun,
		BackupDir:    cfg.BackupDir,
	}, tracker, cmd.OutOrStdout())

	_, err = gen.Run(cmd.Context())
	return err
}
