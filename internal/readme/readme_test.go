// ABOUTME: Behavioral tests for README generation
// ABOUTME: Covers conditional sections, primary examples, lookup tables and determinism
package readme_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/claudeup/plugin-readmes/internal/marketplace"
	"github.com/claudeup/plugin-readmes/internal/metadata"
	"github.com/claudeup/plugin-readmes/internal/readme"
)

func demoPlugin() marketplace.Plugin {
	return marketplace.Plugin{
		Name:        "demo",
		Description: "Demo plugin.",
		Version:     "1.0.0",
		Category:    "testing",
		Author:      marketplace.Author{Name: "Dev"},
		License:     "MIT",
		Keywords:    []string{"automation"},
		Source:      "./demo",
	}
}

func agent(name, model, description string) metadata.AgentInfo {
	return metadata.AgentInfo{File: name + ".md", Name: name, Model: model, Description: description}
}

func command(name string) metadata.CommandInfo {
	return metadata.CommandInfo{File: name + ".md", Name: name}
}

func skill(name, description string) metadata.SkillInfo {
	return metadata.SkillInfo{Dir: name, Name: name, Description: description}
}

var _ = Describe("Generate", func() {
	var plugin marketplace.Plugin

	BeforeEach(func() {
		plugin = demoPlugin()
	})

	Describe("a plugin without components", func() {
		var out string

		BeforeEach(func() {
			out = readme.Generate(plugin, metadata.Components{})
		})

		It("keeps the always-present sections", func() {
			Expect(out).To(HavePrefix("# demo\n\n> Demo plugin.\n\n**Version:** 1.0.0\n**Category:** testing\n**Author:** Dev\n\n"))
			Expect(out).To(ContainSubstring("## Overview"))
			Expect(out).To(ContainSubstring("## Quick Start"))
			Expect(out).To(ContainSubstring("## Contributing"))
			Expect(out).To(ContainSubstring("## License\n\nMIT\n"))
			Expect(out).To(HaveSuffix("**Agents:** 0 | **Skills:** 0 | **Commands:** 0\n"))
		})

		It("omits reference sections and advanced topics", func() {
			Expect(out).NotTo(ContainSubstring("## Agents Reference"))
			Expect(out).NotTo(ContainSubstring("## Skills Reference"))
			Expect(out).NotTo(ContainSubstring("## Commands Reference"))
			Expect(out).NotTo(ContainSubstring("## Advanced Topics"))
		})

		It("emits empty workflow example headings", func() {
			Expect(out).To(ContainSubstring("### Example 1: Basic Workflow\n\n\n### Example 2: Advanced Workflow\n\n\n## Plugin Relationships"))
		})

		It("omits the agent audience bullet", func() {
			Expect(out).NotTo(ContainSubstring("specialized agents for task automation"))
		})
	})

	Describe("the end-to-end demo plugin", func() {
		It("documents the helper agent and complementary categories", func() {
			c := metadata.Components{Agents: []metadata.AgentInfo{agent("helper", "haiku", "Helps with tasks.")}}

			out := readme.Generate(plugin, c)

			Expect(out).To(ContainSubstring("Plugins in the `workflows` category"))
			Expect(out).NotTo(ContainSubstring("Plugins in the `testing` category"))
			Expect(out).To(ContainSubstring("### helper\n\n**Model:** haiku - Fast execution and deterministic tasks"))
			Expect(out).To(ContainSubstring("- Automation workflows\n"))
			Expect(out).To(ContainSubstring("- Projects leveraging 1 specialized agents for task automation\n"))
		})
	})

	It("is deterministic", func() {
		c := metadata.Components{
			Agents:   []metadata.AgentInfo{agent("a", "sonnet", "A."), agent("b", "haiku", "B.")},
			Skills:   []metadata.SkillInfo{skill("s1", "one"), skill("s2", "two"), skill("s3", "three")},
			Commands: []metadata.CommandInfo{command("run")},
		}

		Expect(readme.Generate(plugin, c)).To(Equal(readme.Generate(plugin, c)))
	})

	It("orders sections as documented", func() {
		c := metadata.Components{
			Agents:   []metadata.AgentInfo{agent("a", "sonnet", "A.")},
			Skills:   []metadata.SkillInfo{skill("s1", "one")},
			Commands: []metadata.CommandInfo{command("run")},
		}
		out := readme.Generate(plugin, c)

		headings := []string{
			"# demo", "## Overview", "## Quick Start", "## Agents Reference", "## Skills Reference",
			"## Commands Reference", "## Complete Workflow Examples", "## Plugin Relationships",
			"## Best Practices", "## Troubleshooting", "## Advanced Topics", "## Contributing",
		}
		last := -1
		for _, h := range headings {
			idx := strings.Index(out, h)
			Expect(idx).To(BeNumerically(">", last), "heading %q out of order", h)
			last = idx
		}
	})
})

var _ = Describe("Document sections", func() {
	var doc readme.Document

	BeforeEach(func() {
		doc = readme.Document{Plugin: demoPlugin()}
	})

	Describe("Overview", func() {
		It("uses at most five keywords, title cased", func() {
			doc.Plugin.Keywords = []string{"code-review", "ci-cd", "tdd", "api", "docs", "extra"}

			out := doc.Overview()

			Expect(out).To(ContainSubstring("- Code Review workflows\n- Ci Cd workflows\n- Tdd workflows\n- Api workflows\n- Docs workflows\n"))
			Expect(out).NotTo(ContainSubstring("Extra"))
		})

		It("describes the audience", func() {
			doc.Plugin.Name = "full-stack-orchestration"

			out := doc.Overview()

			Expect(out).To(ContainSubstring("- Developers working with testing systems\n"))
			Expect(out).To(ContainSubstring("- Teams requiring full stack orchestration capabilities\n"))
		})
	})

	Describe("QuickStart", func() {
		It("names the first agent and the first command", func() {
			doc.Components = metadata.Components{
				Agents:   []metadata.AgentInfo{agent("primary", "sonnet", ""), agent("secondary", "haiku", "")},
				Commands: []metadata.CommandInfo{command("first"), command("second")},
			}

			out := doc.QuickStart()

			Expect(out).To(ContainSubstring("# Using the primary agent\n@primary <your request>"))
			Expect(out).To(ContainSubstring("/demo:first <arguments>"))
			Expect(out).NotTo(ContainSubstring("secondary"))
			Expect(out).NotTo(ContainSubstring("second <arguments>"))
		})

		It("references the plugin in install verification", func() {
			Expect(doc.QuickStart()).To(ContainSubstring("claude agents list | grep demo\n"))
		})

		It("has no usage examples without components", func() {
			Expect(doc.QuickStart()).To(HaveSuffix("### Basic Usage\n\n"))
		})
	})

	Describe("AgentsReference", func() {
		It("maps known models to reasoning text", func() {
			doc.Components.Agents = []metadata.AgentInfo{agent("architect", "sonnet", "Designs systems. Thinks deeply.")}

			out := doc.AgentsReference()

			Expect(out).To(ContainSubstring("This plugin provides **1 specialized agents**"))
			Expect(out).To(ContainSubstring("**Model:** sonnet - Complex reasoning and architecture decisions"))
			Expect(out).To(ContainSubstring("**When to Use Proactively:**\n- Designs systems\n- When you need specialized architect expertise\n"))
		})

		It("falls back to general purpose for unknown models", func() {
			doc.Components.Agents = []metadata.AgentInfo{agent("helper", "unknown", "")}

			out := doc.AgentsReference()

			Expect(out).To(ContainSubstring("**Model:** unknown - General purpose"))
			Expect(out).To(ContainSubstring("**When to Use Proactively:**\n- \n"))
		})

		It("is empty without agents", func() {
			Expect(doc.AgentsReference()).To(BeEmpty())
		})
	})

	Describe("SkillsReference", func() {
		It("repeats the description as activation triggers", func() {
			doc.Components.Skills = []metadata.SkillInfo{skill("caching", "Use when responses repeat.")}

			out := doc.SkillsReference()

			Expect(out).To(ContainSubstring("**Description:** Use when responses repeat.\n\n**Activation Triggers:**\nUse when responses repeat.\n"))
			Expect(out).To(ContainSubstring("- Context-aware skill activation\n"))
		})
	})

	Describe("CommandsReference", func() {
		It("namespaces commands by plugin and strips .md", func() {
			doc.Components.Commands = []metadata.CommandInfo{{File: "deploy.md", Name: "deploy.md", Description: "Ship it"}}

			out := doc.CommandsReference()

			Expect(out).To(ContainSubstring("### /demo:deploy\n\n**Description:** Ship it\n"))
			Expect(out).To(ContainSubstring("/demo:deploy [options]"))
		})
	})

	Describe("Workflows", func() {
		It("pairs the first command with the first agent", func() {
			doc.Components = metadata.Components{
				Agents:   []metadata.AgentInfo{agent("builder", "sonnet", "")},
				Commands: []metadata.CommandInfo{command("init")},
			}

			out := doc.Workflows()

			Expect(out).To(ContainSubstring("1. Initialize with command:\n```bash\n/demo:init\n```"))
			Expect(out).To(ContainSubstring("@builder implement the feature"))
			Expect(out).To(ContainSubstring("3. Review and iterate\n"))
			Expect(out).NotTo(ContainSubstring("Multi-agent coordination"))
		})

		It("engages the agent when there are no commands", func() {
			doc.Components.Agents = []metadata.AgentInfo{agent("builder", "sonnet", "")}

			Expect(doc.Workflows()).To(ContainSubstring("@builder start new project"))
		})

		It("coordinates the first two agents", func() {
			doc.Components.Agents = []metadata.AgentInfo{agent("planner", "", ""), agent("coder", "", ""), agent("third", "", "")}

			out := doc.Workflows()

			Expect(out).To(ContainSubstring("1. Architecture planning: `@planner`\n2. Implementation: `@coder`\n"))
			Expect(out).NotTo(ContainSubstring("@third"))
		})

		It("leaves example 1 empty with only commands", func() {
			doc.Components.Commands = []metadata.CommandInfo{command("init")}

			Expect(doc.Workflows()).To(Equal("## Complete Workflow Examples\n\n### Example 1: Basic Workflow\n\n\n### Example 2: Advanced Workflow\n\n"))
		})
	})

	Describe("Relationships", func() {
		It("lists similar plugins for known categories", func() {
			doc.Plugin.Category = "infrastructure"

			out := doc.Relationships()

			Expect(out).To(ContainSubstring("- `kubernetes-operations` - Related infrastructure plugin\n"))
			Expect(out).To(ContainSubstring("- `cicd-automation` - Related infrastructure plugin\n"))
		})

		It("excludes the plugin itself", func() {
			doc.Plugin.Category = "development"
			doc.Plugin.Name = "backend-development"

			out := doc.Relationships()

			Expect(out).NotTo(ContainSubstring("`backend-development` - Related"))
			Expect(out).To(ContainSubstring("`frontend-mobile-development` - Related"))
		})

		It("has no entries for unknown categories", func() {
			doc.Plugin.Category = "gardening"

			out := doc.Relationships()

			Expect(out).To(ContainSubstring("### Similar Plugins\n\n\n### Differences"))
			Expect(out).To(ContainSubstring("### Works Well With\n\n\n### Integration Patterns"))
		})

		It("lower-cases the description", func() {
			doc.Plugin.Description = "Kubernetes Tooling"

			Expect(doc.Relationships()).To(ContainSubstring("The `demo` plugin focuses specifically on kubernetes tooling, while"))
		})
	})

	Describe("BestPractices", func() {
		It("adds performance tips only for the performance keyword", func() {
			Expect(doc.BestPractices()).NotTo(ContainSubstring("Monitor performance metrics"))

			doc.Plugin.Keywords = []string{"performance"}
			Expect(doc.BestPractices()).To(ContainSubstring("- Monitor performance metrics\n- Profile before optimizing\n"))
		})

		It("recommends the first agent", func() {
			doc.Components.Agents = []metadata.AgentInfo{agent("lead", "", "")}

			Expect(doc.BestPractices()).To(ContainSubstring("- Use `@lead` for primary tasks in this domain\n"))
		})
	})

	Describe("Troubleshooting", func() {
		It("includes the error table", func() {
			Expect(doc.Troubleshooting()).To(ContainSubstring("| Agent not found | Plugin not installed | Verify installation |"))
		})
	})

	Describe("AdvancedTopics", func() {
		It("names at most two skills", func() {
			doc.Components.Skills = []metadata.SkillInfo{skill("one", ""), skill("two", ""), skill("three", "")}

			out := doc.AdvancedTopics()

			Expect(out).To(ContainSubstring("- **one:** Advanced patterns for power users\n- **two:** Advanced patterns for power users\n"))
			Expect(out).NotTo(ContainSubstring("three"))
		})

		It("is empty without skills", func() {
			Expect(doc.AdvancedTopics()).To(BeEmpty())
		})
	})

	Describe("Footer", func() {
		It("repeats version and component counts", func() {
			doc.Components = metadata.Components{
				Agents: []metadata.AgentInfo{agent("a", "", "")},
				Skills: []metadata.SkillInfo{skill("s", ""), skill("t", "")},
			}

			out := doc.Footer()

			Expect(out).To(ContainSubstring("**Plugin:** demo v1.0.0\n**Last Updated:** 1.0.0\n"))
			Expect(out).To(ContainSubstring("**Agents:** 1 | **Skills:** 2 | **Commands:** 0\n"))
		})
	})
})

var _ = Describe("lookup tables", func() {
	It("resolves model reasoning with a default", func() {
		Expect(readme.ModelReasoning("haiku")).To(Equal("Fast execution and deterministic tasks"))
		Expect(readme.ModelReasoning("opus")).To(Equal("General purpose"))
		Expect(readme.ModelReasoning("")).To(Equal("General purpose"))
	})

	It("returns empty lists for unknown categories", func() {
		Expect(readme.SimilarPlugins("unknown", "demo")).To(BeEmpty())
		Expect(readme.ComplementaryCategories("unknown")).To(BeEmpty())
	})

	It("maps testing to its complements", func() {
		Expect(readme.ComplementaryCategories("testing")).To(Equal([]string{"development", "quality", "workflows"}))
	})
})
