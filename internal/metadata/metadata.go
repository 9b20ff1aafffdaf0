// ABOUTME: Loads agent, skill and command records from discovered plugin files
// ABOUTME: Combines file reads with frontmatter parsing and filename fallbacks
package metadata

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/claudeup/plugin-readmes/internal/discovery"
	"github.com/claudeup/plugin-readmes/internal/frontmatter"
	"github.com/claudeup/plugin-readmes/internal/logger"
)

// UnknownModel is used for agents whose frontmatter has no model.
const UnknownModel = "unknown"

// AgentInfo describes one agents/*.md file.
type AgentInfo struct {
	File        string // base file name, e.g. "reviewer.md"
	Name        string
	Description string
	Model       string
	Content     string
	Degraded    bool
}

// SkillInfo describes one skills/<dir>/SKILL.md file.
type SkillInfo struct {
	Dir         string // skill directory name
	Name        string
	Description string
	Content     string
	Degraded    bool
}

// CommandInfo describes one commands/*.md file.
type CommandInfo struct {
	File        string
	Name        string
	Description string
	Content     string
	Degraded    bool
}

// Components is the loaded metadata of one plugin, in discovery order.
type Components struct {
	Agents   []AgentInfo
	Skills   []SkillInfo
	Commands []CommandInfo
}

// Load reads and parses every discovered file. Unreadable files are kept
// with placeholder content so that one bad file does not abort the plugin.
func Load(ctx context.Context, files discovery.PluginFiles) Components {
	var c Components

	for _, path := range files.Agents {
		src := read(ctx, path)
		fields := frontmatter.Parse(src.Text())
		c.Agents = append(c.Agents, AgentInfo{
			File:        filepath.Base(path),
			Name:        nameOr(fields, stem(path)),
			Description: frontmatter.Lookup(fields, "description", ""),
			Model:       frontmatter.Lookup(fields, "model", UnknownModel),
			Content:     src.Text(),
			Degraded:    src.Degraded(),
		})
	}

	for _, path := range files.Skills {
		src := read(ctx, path)
		fields := frontmatter.Parse(src.Text())
		dir := filepath.Base(filepath.Dir(path))
		c.Skills = append(c.Skills, SkillInfo{
			Dir:         dir,
			Name:        nameOr(fields, dir),
			Description: frontmatter.Lookup(fields, "description", ""),
			Content:     src.Text(),
			Degraded:    src.Degraded(),
		})
	}

	for _, path := range files.Commands {
		src := read(ctx, path)
		fields := frontmatter.Parse(src.Text())
		c.Commands = append(c.Commands, CommandInfo{
			File:        filepath.Base(path),
			Name:        nameOr(fields, stem(path)),
			Description: frontmatter.Lookup(fields, "description", ""),
			Content:     src.Text(),
			Degraded:    src.Degraded(),
		})
	}

	return c
}

func read(ctx context.Context, path string) Source {
	src := ReadSource(path)
	if src.Degraded() {
		logger.G(ctx).WithError(src.Err).WithField("file", path).Warn("component file unreadable, using placeholder")
	}
	return src
}

// nameOr returns the frontmatter name unless it is missing or blank, so a
// display name is never empty.
func nameOr(fields map[string]string, fallback string) string {
	if name := fields["name"]; name != "" {
		return name
	}
	return fallback
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
