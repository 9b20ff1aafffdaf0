// ABOUTME: Enumerates the agent, skill and command definition files of a plugin
// ABOUTME: Uses fixed doublestar patterns relative to the plugin directory
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Fixed component layouts relative to a plugin's source directory.
const (
	AgentsPattern   = "agents/*.md"
	SkillsPattern   = "skills/*/SKILL.md"
	CommandsPattern = "commands/*.md"
)

// PluginFiles holds the component files found in one plugin directory.
// Paths are joined onto the plugin directory passed to Discover.
type PluginFiles struct {
	Agents   []string
	Skills   []string
	Commands []string
}

// Counts returns the number of agents, skills and commands.
func (f PluginFiles) Counts() (agents, skills, commands int) {
	return len(f.Agents), len(f.Skills), len(f.Commands)
}

// Empty reports whether the plugin has no components at all.
func (f PluginFiles) Empty() bool {
	return len(f.Agents) == 0 && len(f.Skills) == 0 && len(f.Commands) == 0
}

// Discover finds the component files of the plugin rooted at pluginDir.
// Missing component directories yield empty lists.
func Discover(pluginDir string) (PluginFiles, error) {
	fsys := os.DirFS(pluginDir)

	agents, err := glob(fsys, pluginDir, AgentsPattern)
	if err != nil {
		return PluginFiles{}, err
	}
	skills, err := glob(fsys, pluginDir, SkillsPattern)
	if err != nil {
		return PluginFiles{}, err
	}
	commands, err := glob(fsys, pluginDir, CommandsPattern)
	if err != nil {
		return PluginFiles{}, err
	}

	return PluginFiles{
		Agents:   agents,
		Skills:   skills,
		Commands: commands,
	}, nil
}

func glob(fsys fs.FS, root, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to match %s in %s: %w", pattern, root, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	return paths, nil
}
