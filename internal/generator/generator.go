// ABOUTME: Batch driver that regenerates the README of every marketplace plugin
// ABOUTME: Plugins are processed sequentially and a failing plugin never stops the run
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/claudeup/plugin-readmes/internal/backup"
	"github.com/claudeup/plugin-readmes/internal/events"
	"github.com/claudeup/plugin-readmes/internal/logger"
	"github.com/claudeup/plugin-readmes/internal/marketplace"
)

// DefaultExempt is the plugin whose existing README is never overwritten.
const DefaultExempt = "comic-production"

// WriteOperation names README writes in the audit log.
const WriteOperation = "readme generate"

// Options configures a generation run.
type Options struct {
	ManifestPath string
	Exempt       string // plugin whose existing README is preserved
	DryRun       bool   // classify and report without writing
	BackupDir    string // copy existing READMEs here before overwriting; empty disables
}

// Generator runs README generation over a marketplace manifest.
type Generator struct {
	opts    Options
	tracker *events.Tracker
	out     io.Writer
}

// New creates a Generator. Progress and the summary are written to out; a nil
// tracker disables the audit trail.
func New(opts Options, tracker *events.Tracker, out io.Writer) *Generator {
	if tracker == nil {
		tracker = events.Disabled()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Generator{opts: opts, tracker: tracker, out: out}
}

// Run processes every plugin in the manifest and prints a summary. Only a
// manifest that cannot be loaded is returned as an error; per-plugin failures
// are collected in the statistics.
func (g *Generator) Run(ctx context.Context) (*RunStatistics, error) {
	manifest, err := marketplace.Load(g.opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	base := marketplace.BaseDir(g.opts.ManifestPath)

	stats := &RunStatistics{Total: len(manifest.Entries)}
	fmt.Fprintf(g.out, "Generating README files for %d plugins...\n\n", stats.Total)

	for _, entry := range manifest.Entries {
		outcome := g.processPlugin(ctx, entry, base)
		g.reportOutcome(outcome)
		stats.Merge(outcome)
	}

	PrintSummary(g.out, stats)
	return stats, nil
}

// processPlugin builds and writes one README. It never touches the run
// statistics; the caller merges the returned outcome.
func (g *Generator) processPlugin(ctx context.Context, entry marketplace.Entry, base string) Outcome {
	plugin := entry.Plugin
	log := logger.G(ctx).WithField("plugin", entry.Label())
	ctx = logger.WithLogger(ctx, log)
	outcome := Outcome{Plugin: entry.Label()}

	// counts gathered before a failure are kept in the outcome
	fail := func(err error) Outcome {
		outcome.Action = ActionFailed
		outcome.Err = &PluginError{Plugin: entry.Label(), Err: err}
		log.WithError(err).Debug("plugin failed")
		return outcome
	}

	if entry.Err != nil {
		return fail(entry.Err)
	}

	build, err := BuildPlugin(ctx, plugin, base)
	if err != nil {
		return fail(err)
	}
	outcome.Path = build.ReadmePath
	outcome.Agents, outcome.Skills, outcome.Commands = build.Counts()
	if build.Files.Empty() {
		log.Debug("plugin has no components")
	}

	exists, err := build.ReadmeExists()
	if err != nil {
		return fail(err)
	}

	switch {
	case exists && plugin.Name == g.opts.Exempt:
		outcome.Action = ActionSkipped
		return outcome
	case exists:
		outcome.Action = ActionUpdated
	default:
		outcome.Action = ActionCreated
	}

	if g.opts.DryRun {
		log.WithField("action", outcome.Action).Debug("dry run, not writing")
		return outcome
	}

	if exists && g.opts.BackupDir != "" {
		saved, err := backup.SaveReadme(g.opts.BackupDir, plugin.Name, build.ReadmePath)
		if err != nil {
			return fail(err)
		}
		log.WithField("backup", saved).Debug("previous readme saved")
	}

	err = g.tracker.RecordFileWrite(ctx, WriteOperation, plugin.Name, build.ReadmePath, func() error {
		return os.WriteFile(build.ReadmePath, []byte(build.Content), 0644)
	})
	if err != nil {
		return fail(fmt.Errorf("failed to write %s: %w", build.ReadmePath, err))
	}

	log.WithField("path", build.ReadmePath).Debug("readme written")
	return outcome
}

// IsDirectoryNotFound reports whether an outcome failed on a missing plugin directory.
func IsDirectoryNotFound(o Outcome) bool {
	return errors.Is(o.Err, ErrDirectoryNotFound)
}
