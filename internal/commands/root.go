// ABOUTME: Root command and CLI initialization for plugin-readmes
// ABOUTME: Sets up cobra command structure, global flags, logging and configuration
package commands

import (
	"context"
	"fmt"

	"github.com/claudeup/plugin-readmes/internal/config"
	"github.com/claudeup/plugin-readmes/internal/events"
	"github.com/claudeup/plugin-readmes/internal/logger"
	"github.com/claudeup/plugin-readmes/internal/ui"
	"github.com/spf13/cobra"
)

// cfg is resolved before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "plugin-readmes",
	Short: "Generate README files for every plugin in a marketplace",
	Long: `plugin-readmes regenerates the README.md of every plugin listed in a
Claude Code plugin marketplace manifest.

It reads .claude-plugin/marketplace.json, inspects each plugin's agents,
skills and commands, and writes a standardized README into the plugin's
source directory. Run without a subcommand to generate all READMEs.`,
	Example: `  # Regenerate every README from the marketplace root
  plugin-readmes

  # Check a single plugin before writing anything
  plugin-readmes preview python-development --raw
  plugin-readmes --dry-run`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runGenerate,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	ui.SetupHelpTemplate(rootCmd, ui.HelpConfig{
		EnvPrefix:  config.EnvPrefix,
		ConfigFile: config.FileName + ".yaml",
	})

	config.RegisterFlags(rootCmd.PersistentFlags())
}

// initConfig resolves flags, PLUGIN_READMES_* variables and
// .plugin-readmes.yaml, then configures logging.
func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cmd.Flags(), ".")
	if err != nil {
		return err
	}
	if err := logger.SetLogLevel(loaded.LogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLogFormat(loaded.LogFormat)
	logger.SetLogOutput(cmd.ErrOrStderr())

	cfg = loaded
	ctx := logger.WithLogger(cmd.Context(), logger.L.WithField("command", cmd.Name()))
	cmd.SetContext(ctx)
	logger.G(ctx).WithField("manifest", cfg.ManifestPath).Debug("configuration loaded")
	return nil
}

// newTracker returns the audit tracker for the configured log, or a disabled
// tracker when no audit log is set.
func newTracker(c *config.Config) (*events.Tracker, error) {
	if c.AuditLog == "" {
		return events.Disabled(), nil
	}
	writer, err := events.NewJSONLWriter(c.AuditLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return events.NewTracker(writer, true), nil
}
