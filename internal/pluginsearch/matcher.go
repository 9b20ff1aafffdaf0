// ABOUTME: Matches marketplace plugins and their components against a query
// ABOUTME: Supports substring matching, regex, and filtering by component type

package pluginsearch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/claudeup/plugin-readmes/internal/marketplace"
	"github.com/claudeup/plugin-readmes/internal/metadata"
)

// Component types accepted by SearchOptions.FilterType.
const (
	TypeAgents   = "agents"
	TypeSkills   = "skills"
	TypeCommands = "commands"
)

// SearchOptions configures search behavior.
type SearchOptions struct {
	UseRegex   bool
	FilterType string // "skills", "commands", "agents", or "" for all
}

// Match represents a single match within a plugin.
type Match struct {
	Type    string // "name", "description", "keyword", "skill", "command", "agent"
	Name    string // Component name if applicable
	Context string // The matched text
}

func (m Match) String() string {
	if m.Name != "" {
		return m.Type + " " + m.Name
	}
	return m.Type + " " + m.Context
}

// Matcher tests plugins against a compiled query.
type Matcher struct {
	match func(text string) bool
	opts  SearchOptions
}

// NewMatcher compiles query. Matching is case-insensitive.
func NewMatcher(query string, opts SearchOptions) (*Matcher, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}
	switch opts.FilterType {
	case "", TypeAgents, TypeSkills, TypeCommands:
	default:
		return nil, fmt.Errorf("invalid component type %q (want agents, skills or commands)", opts.FilterType)
	}

	m := &Matcher{opts: opts}
	if opts.UseRegex {
		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			return nil, fmt.Errorf("invalid search pattern: %w", err)
		}
		m.match = re.MatchString
	} else {
		lowerQuery := strings.ToLower(query)
		m.match = func(text string) bool {
			return strings.Contains(strings.ToLower(text), lowerQuery)
		}
	}
	return m, nil
}

// Match returns every field of plugin and its components that matches.
func (m *Matcher) Match(plugin marketplace.Plugin, c metadata.Components) []Match {
	var matches []Match

	// Plugin-level fields only when not filtering by component type
	if m.opts.FilterType == "" {
		if m.match(plugin.Name) {
			matches = append(matches, Match{Type: "name", Context: plugin.Name})
		}
		if m.match(plugin.Description) {
			matches = append(matches, Match{Type: "description", Context: plugin.Description})
		}
		for _, keyword := range plugin.Keywords {
			if m.match(keyword) {
				matches = append(matches, Match{Type: "keyword", Context: keyword})
			}
		}
	}

	if m.wants(TypeSkills) {
		for _, skill := range c.Skills {
			if m.match(skill.Name) || m.match(skill.Description) {
				matches = append(matches, Match{Type: "skill", Name: skill.Name, Context: skill.Description})
			}
		}
	}

	if m.wants(TypeCommands) {
		for _, cmd := range c.Commands {
			if m.match(cmd.Name) || m.match(cmd.Description) {
				matches = append(matches, Match{Type: "command", Name: cmd.Name, Context: cmd.Description})
			}
		}
	}

	if m.wants(TypeAgents) {
		for _, agent := range c.Agents {
			if m.match(agent.Name) || m.match(agent.Description) {
				matches = append(matches, Match{Type: "agent", Name: agent.Name, Context: agent.Description})
			}
		}
	}

	return matches
}

func (m *Matcher) wants(componentType string) bool {
	return m.opts.FilterType == "" || m.opts.FilterType == componentType
}
