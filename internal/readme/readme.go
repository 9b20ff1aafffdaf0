// ABOUTME: Assembles the standardized README.md for one marketplace plugin
// ABOUTME: Pure section-by-section string construction, no I/O and no clock
package readme

import (
	"fmt"
	"strings"

	"github.com/claudeup/plugin-readmes/internal/marketplace"
	"github.com/claudeup/plugin-readmes/internal/metadata"
)

// RepositoryURL is the upstream repository linked from every README footer.
const RepositoryURL = "https://github.com/wshobson/agents"

const (
	fence           = "```"
	maxUseCases     = 5
	maxPowerSkills  = 2
	performanceWord = "performance"
)

// Document is the input of a README: one manifest entry plus the components
// loaded from its directory, in discovery order.
type Document struct {
	Plugin     marketplace.Plugin
	Components metadata.Components
}

// Generate returns the complete README for plugin. Identical inputs always
// produce identical output.
func Generate(plugin marketplace.Plugin, components metadata.Components) string {
	return Document{Plugin: plugin, Components: components}.String()
}

// String joins all sections in order. Reference sections and advanced topics
// render as empty strings when they do not apply.
func (d Document) String() string {
	sections := []func() string{
		d.Title,
		d.Overview,
		d.QuickStart,
		d.AgentsReference,
		d.SkillsReference,
		d.CommandsReference,
		d.Workflows,
		d.Relationships,
		d.BestPractices,
		d.Troubleshooting,
		d.AdvancedTopics,
		d.Footer,
	}

	var b strings.Builder
	for _, section := range sections {
		b.WriteString(section())
	}
	return b.String()
}

func (d Document) firstAgent() (metadata.AgentInfo, bool) {
	if len(d.Components.Agents) == 0 {
		return metadata.AgentInfo{}, false
	}
	return d.Components.Agents[0], true
}

func (d Document) firstCommand() (metadata.CommandInfo, bool) {
	if len(d.Components.Commands) == 0 {
		return metadata.CommandInfo{}, false
	}
	return d.Components.Commands[0], true
}

// Title renders the heading and the version/category/author block.
func (d Document) Title() string {
	p := d.Plugin
	return fmt.Sprintf("# %s\n\n> %s\n\n**Version:** %s\n**Category:** %s\n**Author:** %s\n\n",
		p.Name, p.Description, p.Version, p.Category, p.Author.Name)
}

// Overview restates the description and derives use cases from the first
// keywords and the audience from category and agent count.
func (d Document) Overview() string {
	p := d.Plugin
	var b strings.Builder

	fmt.Fprintf(&b, "## Overview\n\n### What This Plugin Does\n\n%s\n\n### Primary Use Cases\n\n", p.Description)

	keywords := p.Keywords
	if len(keywords) > maxUseCases {
		keywords = keywords[:maxUseCases]
	}
	for _, keyword := range keywords {
		fmt.Fprintf(&b, "- %s workflows\n", titleCase(dehyphenate(keyword)))
	}

	fmt.Fprintf(&b, "\n### Who Should Use This\n\n- Developers working with %s systems\n- Teams requiring %s capabilities\n",
		p.Category, dehyphenate(p.Name))

	if n := len(d.Components.Agents); n > 0 {
		fmt.Fprintf(&b, "- Projects leveraging %d specialized agents for task automation\n", n)
	}

	return b.String()
}

// QuickStart renders installation steps and a basic usage example naming the
// first discovered agent and the first discovered command.
func (d Document) QuickStart() string {
	name := d.Plugin.Name
	var b strings.Builder

	b.WriteString("\n## Quick Start\n\n")
	b.WriteString("### Installation\n\n1. Install the plugin in Claude Code:\n")
	b.WriteString(fence + "bash\n# Add to your .claude-plugin/marketplace.json or install via Claude Code CLI\n" + fence + "\n\n")
	b.WriteString("2. Verify installation:\n")
	fmt.Fprintf(&b, "%sbash\n# List available agents\nclaude agents list | grep %s\n%s\n\n", fence, name, fence)
	b.WriteString("### Basic Usage\n\n")

	if agent, ok := d.firstAgent(); ok {
		fmt.Fprintf(&b, "Invoke the primary agent:\n%sbash\n# Using the %s agent\n@%s <your request>\n%s\n\n",
			fence, agent.Name, agent.Name, fence)
	}

	if cmd, ok := d.firstCommand(); ok {
		fmt.Fprintf(&b, "Or use the command interface:\n%sbash\n/%s:%s <arguments>\n%s\n\n",
			fence, name, commandID(cmd.Name), fence)
	}

	return b.String()
}

// AgentsReference documents every agent. Empty when the plugin has none.
func (d Document) AgentsReference() string {
	agents := d.Components.Agents
	if len(agents) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Agents Reference\n\n")
	fmt.Fprintf(&b, "This plugin provides **%d specialized agents**:\n\n", len(agents))

	for _, agent := range agents {
		fmt.Fprintf(&b, "### %s\n\n**Model:** %s - %s\n\n**Purpose:** %s\n\n",
			agent.Name, agent.Model, ModelReasoning(agent.Model), agent.Description)
		fmt.Fprintf(&b, "**When to Use Proactively:**\n- %s\n- When you need specialized %s expertise\n\n",
			firstSentence(agent.Description), dehyphenate(agent.Name))
		fmt.Fprintf(&b, "**Example Invocation:**\n%sbash\n@%s <specific task or question>\n%s\n\n",
			fence, agent.Name, fence)
	}

	return b.String()
}

// SkillsReference documents every skill. Empty when the plugin has none.
func (d Document) SkillsReference() string {
	skills := d.Components.Skills
	if len(skills) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Skills Reference\n\n")
	fmt.Fprintf(&b, "This plugin includes **%d progressive disclosure skills** for advanced patterns:\n\n", len(skills))

	for _, skill := range skills {
		fmt.Fprintf(&b, "### %s\n\n**Description:** %s\n\n**Activation Triggers:**\n%s\n\n",
			skill.Name, skill.Description, skill.Description)
		b.WriteString("**Key Techniques:**\n- Progressive disclosure of knowledge\n- On-demand pattern loading\n- Context-aware skill activation\n\n")
	}

	return b.String()
}

// CommandsReference documents every slash command as plugin:command. Empty
// when the plugin has none.
func (d Document) CommandsReference() string {
	commands := d.Components.Commands
	if len(commands) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Commands Reference\n\n")
	fmt.Fprintf(&b, "This plugin provides **%d slash commands**:\n\n", len(commands))

	for _, cmd := range commands {
		id := d.Plugin.Name + ":" + commandID(cmd.Name)
		fmt.Fprintf(&b, "### /%s\n\n**Description:** %s\n\n**Usage:**\n%sbash\n/%s [options]\n%s\n\n",
			id, cmd.Description, fence, id, fence)
	}

	return b.String()
}

// Workflows renders the two workflow examples. A heading is emitted even when
// no template applies to the plugin's components.
func (d Document) Workflows() string {
	agents := d.Components.Agents
	var b strings.Builder

	b.WriteString("## Complete Workflow Examples\n\n### Example 1: Basic Workflow\n\n")

	agent, hasAgent := d.firstAgent()
	cmd, hasCommand := d.firstCommand()
	switch {
	case hasAgent && hasCommand:
		fmt.Fprintf(&b, "1. Initialize with command:\n%sbash\n/%s:%s\n%s\n\n",
			fence, d.Plugin.Name, commandID(cmd.Name), fence)
		fmt.Fprintf(&b, "2. Work with agent:\n%sbash\n@%s implement the feature\n%s\n\n",
			fence, agent.Name, fence)
		b.WriteString("3. Review and iterate\n")
	case hasAgent:
		fmt.Fprintf(&b, "1. Engage the agent:\n%sbash\n@%s start new project\n%s\n\n",
			fence, agent.Name, fence)
		b.WriteString("2. Follow agent guidance for implementation\n")
	}

	b.WriteString("\n### Example 2: Advanced Workflow\n\n")

	if len(agents) >= 2 {
		fmt.Fprintf(&b, "Multi-agent coordination:\n\n1. Architecture planning: `@%s`\n2. Implementation: `@%s`\n3. Review and refinement\n",
			agents[0].Name, agents[1].Name)
	}

	return b.String()
}

// Relationships lists similar plugins and complementary categories from the
// fixed tables, plus static integration patterns.
func (d Document) Relationships() string {
	p := d.Plugin
	var b strings.Builder

	b.WriteString("\n## Plugin Relationships\n\n### Similar Plugins\n\n")
	for _, similar := range SimilarPlugins(p.Category, p.Name) {
		fmt.Fprintf(&b, "- `%s` - Related %s plugin\n", similar, p.Category)
	}

	b.WriteString("\n### Differences from Similar Plugins\n\n")
	fmt.Fprintf(&b, "The `%s` plugin focuses specifically on %s, ", p.Name, strings.ToLower(p.Description))
	b.WriteString("while similar plugins may have broader or different specializations.\n\n")

	b.WriteString("### Works Well With\n\n")
	for _, category := range ComplementaryCategories(p.Category) {
		fmt.Fprintf(&b, "- Plugins in the `%s` category\n", category)
	}

	b.WriteString("\n### Integration Patterns\n\n")
	b.WriteString("- **Sequential workflows:** Chain multiple agents for complex tasks\n")
	b.WriteString("- **Parallel execution:** Run independent agents simultaneously\n")
	b.WriteString("- **Context sharing:** Maintain state across agent interactions\n\n")

	return b.String()
}

// BestPractices renders do's, don'ts, pitfalls and optimization tips.
func (d Document) BestPractices() string {
	var b strings.Builder

	b.WriteString("## Best Practices\n\n### Do's\n\n")
	if agent, ok := d.firstAgent(); ok {
		fmt.Fprintf(&b, "- Use `@%s` for primary tasks in this domain\n", agent.Name)
	}
	fmt.Fprintf(&b, "- Follow the plugin's specialized patterns for %s\n", d.Plugin.Category)
	b.WriteString("- Leverage progressive disclosure skills for advanced features\n")
	b.WriteString("- Combine with complementary plugins for full-stack workflows\n\n")

	b.WriteString("### Don'ts\n\n")
	b.WriteString("- Don't use this plugin for tasks outside its domain\n")
	b.WriteString("- Avoid mixing incompatible plugin patterns\n")
	b.WriteString("- Don't skip the recommended workflow steps\n\n")

	b.WriteString("### Common Pitfalls\n\n")
	b.WriteString("1. **Over-complexity:** Start simple, add features incrementally\n")
	b.WriteString("2. **Wrong agent:** Use the right agent for the task\n")
	b.WriteString("3. **Missing context:** Provide sufficient background information\n\n")

	b.WriteString("### Optimization Tips\n\n")
	if d.Plugin.HasKeyword(performanceWord) {
		b.WriteString("- Monitor performance metrics\n")
		b.WriteString("- Profile before optimizing\n")
	}
	b.WriteString("- Use progressive disclosure to load only needed knowledge\n")
	b.WriteString("- Cache agent responses when appropriate\n")

	return b.String()
}

// Troubleshooting renders common issues, the error table and debugging tips.
func (d Document) Troubleshooting() string {
	return `
## Troubleshooting

### Common Issues

**Issue:** Agent not responding as expected

**Solution:**
- Verify plugin installation
- Check agent name spelling
- Provide more context in your request

**Issue:** Skill not activating

**Solution:**
- Ensure trigger criteria match your use case
- Explicitly mention the skill in your request

### Error Messages


| Error | Cause | Solution |
|-------|-------|----------|
| Agent not found | Plugin not installed | Verify installation |
| Skill unavailable | Path mismatch | Check skill directory structure |
| Command failed | Missing dependencies | Review prerequisites |

### Debugging Techniques

1. **Verbose mode:** Request detailed explanations from agents
2. **Step-by-step:** Break complex tasks into smaller steps
3. **Isolation:** Test agents individually before combining

`
}

// AdvancedTopics highlights the first skills for power users. Empty when the
// plugin has no skills.
func (d Document) AdvancedTopics() string {
	skills := d.Components.Skills
	if len(skills) == 0 {
		return ""
	}
	if len(skills) > maxPowerSkills {
		skills = skills[:maxPowerSkills]
	}

	var b strings.Builder
	b.WriteString("## Advanced Topics\n\n### Power User Features\n\n")
	for _, skill := range skills {
		fmt.Fprintf(&b, "- **%s:** Advanced patterns for power users\n", skill.Name)
	}

	b.WriteString(`
### Customization Options

- Adapt agent instructions for your workflow
- Extend skills with custom patterns
- Configure progressive disclosure depth

### Performance Tuning

- Use Haiku agents for speed-critical paths
- Batch similar operations
- Optimize context window usage

`)
	return b.String()
}

// Footer renders contributing, license and support links and the summary line.
// The manifest version doubles as the last-updated marker.
func (d Document) Footer() string {
	p := d.Plugin
	c := d.Components
	var b strings.Builder

	fmt.Fprintf(&b, "\n## Contributing\n\nContributions are welcome! Please see the [main repository](%s) for guidelines.\n\n", RepositoryURL)
	fmt.Fprintf(&b, "## License\n\n%s\n\n", p.License)
	b.WriteString("## Support\n\n")
	fmt.Fprintf(&b, "- **Issues:** [GitHub Issues](%s/issues)\n", RepositoryURL)
	fmt.Fprintf(&b, "- **Discussions:** [GitHub Discussions](%s/discussions)\n", RepositoryURL)
	fmt.Fprintf(&b, "- **Documentation:** [Full Documentation](%s)\n\n", RepositoryURL)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "**Plugin:** %s v%s\n**Last Updated:** %s\n", p.Name, p.Version, p.Version)
	fmt.Fprintf(&b, "**Agents:** %d | **Skills:** %d | **Commands:** %d\n",
		len(c.Agents), len(c.Skills), len(c.Commands))

	return b.String()
}
