// ABOUTME: Discovers, loads and assembles the README of a single plugin
// ABOUTME: Shared by the batch run and the read-only list and preview commands
package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/claudeup/plugin-readmes/internal/discovery"
	"github.com/claudeup/plugin-readmes/internal/marketplace"
	"github.com/claudeup/plugin-readmes/internal/metadata"
	"github.com/claudeup/plugin-readmes/internal/readme"
)

// ReadmeFile is the name of the generated document in each plugin directory.
const ReadmeFile = "README.md"

// Build is a plugin's assembled README and everything it was built from.
type Build struct {
	Plugin     marketplace.Plugin
	Dir        string
	ReadmePath string
	Files      discovery.PluginFiles
	Components metadata.Components
	Content    string
}

// Counts returns the number of agents, skills and commands.
func (b *Build) Counts() (agents, skills, commands int) {
	return b.Files.Counts()
}

// ReadmeExists reports whether a README is already present.
func (b *Build) ReadmeExists() (bool, error) {
	_, err := os.Stat(b.ReadmePath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check %s: %w", b.ReadmePath, err)
}

// BuildPlugin resolves plugin under the marketplace root base and assembles its README.
func BuildPlugin(ctx context.Context, plugin marketplace.Plugin, base string) (*Build, error) {
	if plugin.Source == "" {
		return nil, ErrMissingSource
	}

	dir := plugin.Dir(base)
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrDirectoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := discovery.Discover(dir)
	if err != nil {
		return nil, err
	}
	components := metadata.Load(ctx, files)

	return &Build{
		Plugin:     plugin,
		Dir:        dir,
		ReadmePath: filepath.Join(dir, ReadmeFile),
		Files:      files,
		Components: components,
		Content:    readme.Generate(plugin, components),
	}, nil
}
