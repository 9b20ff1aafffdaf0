// ABOUTME: Tests for the batch driver against temporary marketplaces
// ABOUTME: Covers the demo scenario, plugin isolation, exemption, dry run and auditing
package generator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/claudeup/plugin-readmes/internal/events"
	"github.com/claudeup/plugin-readmes/internal/generator"
	"github.com/claudeup/plugin-readmes/internal/logger"
	"github.com/claudeup/plugin-readmes/internal/marketplace"
	"github.com/sirupsen/logrus"
)

type fixture struct {
	root     string
	manifest string
}

func newFixture() *fixture {
	root := GinkgoT().TempDir()
	Expect(os.MkdirAll(filepath.Join(root, marketplace.PluginDir), 0755)).To(Succeed())
	return &fixture{
		root:     root,
		manifest: filepath.Join(root, marketplace.PluginDir, marketplace.ManifestFile),
	}
}

func (f *fixture) writeManifest(plugins ...map[string]interface{}) {
	data, err := json.MarshalIndent(map[string]interface{}{
		"name":    "test-marketplace",
		"plugins": plugins,
	}, "", "  ")
	Expect(err).NotTo(HaveOccurred())
	Expect(os.WriteFile(f.manifest, data, 0644)).To(Succeed())
}

func (f *fixture) writeFile(rel, content string) {
	path := filepath.Join(f.root, rel)
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
}

func (f *fixture) readme(plugin string) string {
	data, err := os.ReadFile(filepath.Join(f.root, plugin, "README.md"))
	Expect(err).NotTo(HaveOccurred())
	return string(data)
}

func pluginEntry(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"description": name + " plugin.",
		"version":     "1.0.0",
		"category":    "testing",
		"author":      map[string]string{"name": "Dev"},
		"license":     "MIT",
		"source":      "./" + name,
	}
}

var _ = Describe("Generator", func() {
	var (
		f   *fixture
		out *bytes.Buffer
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		out = &bytes.Buffer{}
		ctx = context.Background()
	})

	run := func(opts generator.Options) *generator.RunStatistics {
		opts.ManifestPath = f.manifest
		stats, err := generator.New(opts, nil, out).Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		return stats
	}

	Describe("the demo scenario", func() {
		BeforeEach(func() {
			demo := pluginEntry("demo")
			demo["description"] = "Demo plugin."
			demo["keywords"] = []string{"automation"}
			f.writeManifest(demo)
			f.writeFile("demo/agents/helper.md", "---\nname: helper\nmodel: haiku\ndescription: Helps with tasks.\n---\nYou help.\n")
		})

		It("creates the README and counts the agent", func() {
			stats := run(generator.Options{Exempt: generator.DefaultExempt})

			Expect(stats.Total).To(Equal(1))
			Expect(stats.Created).To(Equal(1))
			Expect(stats.Updated).To(Equal(0))
			Expect(stats.Agents).To(Equal(1))
			Expect(stats.Errors).To(BeEmpty())
			Expect(stats.Coverage()).To(Equal(100.0))

			content := f.readme("demo")
			Expect(content).To(ContainSubstring("Plugins in the `workflows` category"))
			Expect(content).To(ContainSubstring("### helper\n\n**Model:** haiku - Fast execution and deterministic tasks"))

			Expect(out.String()).To(ContainSubstring("demo: Created (1 agents, 0 skills, 0 commands)"))
			Expect(out.String()).To(ContainSubstring("100.0%"))
		})

		It("updates on the second run", func() {
			run(generator.Options{})
			stats := run(generator.Options{})

			Expect(stats.Created).To(Equal(0))
			Expect(stats.Updated).To(Equal(1))
		})

		It("does not write in dry-run mode", func() {
			stats := run(generator.Options{DryRun: true})

			Expect(stats.Created).To(Equal(1))
			Expect(filepath.Join(f.root, "demo", "README.md")).NotTo(BeAnExistingFile())
			Expect(out.String()).To(ContainSubstring("demo: Would create"))
		})

		It("backs up the previous README before updating it", func() {
			f.writeFile("demo/README.md", "# hand written\n")
			backups := filepath.Join(f.root, "backups")

			stats := run(generator.Options{BackupDir: backups})

			Expect(stats.Updated).To(Equal(1))
			saved, err := os.ReadFile(filepath.Join(backups, "demo-README.md"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(saved)).To(Equal("# hand written\n"))
			Expect(f.readme("demo")).To(HavePrefix("# demo\n"))
		})

		It("does not back up when creating a README", func() {
			backups := filepath.Join(f.root, "backups")

			run(generator.Options{BackupDir: backups})

			Expect(backups).NotTo(BeADirectory())
		})
	})

	Describe("plugin isolation", func() {
		BeforeEach(func() {
			f.writeManifest(pluginEntry("first"), pluginEntry("missing"), pluginEntry("third"))
			f.writeFile("first/commands/run.md", "---\ndescription: Run it\n---\n")
			f.writeFile("third/skills/cache/SKILL.md", "---\nname: cache\n---\n")
		})

		It("keeps going past a missing directory", func() {
			stats := run(generator.Options{})

			Expect(stats.Total).To(Equal(3))
			Expect(stats.Created).To(Equal(2))
			Expect(stats.Errors).To(Equal([]string{"missing: Directory not found"}))
			Expect(stats.Commands).To(Equal(1))
			Expect(stats.Skills).To(Equal(1))

			Expect(filepath.Join(f.root, "first", "README.md")).To(BeAnExistingFile())
			Expect(filepath.Join(f.root, "third", "README.md")).To(BeAnExistingFile())
			Expect(filepath.Join(f.root, "missing")).NotTo(BeAnExistingFile())

			Expect(out.String()).To(ContainSubstring("missing: Directory not found"))
			Expect(out.String()).To(ContainSubstring("66.7%"))
		})

		It("keeps going past an entry with a wrong-typed field", func() {
			bad := pluginEntry("second")
			bad["version"] = 1
			f.writeManifest(pluginEntry("first"), bad, pluginEntry("third"))
			f.writeFile("second/agents/a.md", "")

			stats := run(generator.Options{})

			Expect(stats.Total).To(Equal(3))
			Expect(stats.Created).To(Equal(2))
			Expect(stats.Errors).To(HaveLen(1))
			Expect(stats.Errors[0]).To(HavePrefix("second: malformed manifest entry"))
			Expect(stats.Coverage()).To(BeNumerically("~", 66.67, 0.01))

			Expect(filepath.Join(f.root, "first", "README.md")).To(BeAnExistingFile())
			Expect(filepath.Join(f.root, "third", "README.md")).To(BeAnExistingFile())
			Expect(filepath.Join(f.root, "second", "README.md")).NotTo(BeAnExistingFile())
			Expect(out.String()).To(ContainSubstring("second: Error - malformed manifest entry"))
		})

		It("labels an unreadable entry by position", func() {
			f.writeManifest(pluginEntry("first"), map[string]interface{}{"name": 7, "source": "./x"})

			stats := run(generator.Options{})

			Expect(stats.Created).To(Equal(1))
			Expect(stats.Errors).To(HaveLen(1))
			Expect(stats.Errors[0]).To(HavePrefix("entry #2: malformed manifest entry"))
		})
	})

	Describe("entries without a source", func() {
		It("records an error instead of writing into the marketplace root", func() {
			entry := pluginEntry("nosource")
			delete(entry, "source")
			f.writeManifest(entry, pluginEntry("ok"))
			Expect(os.MkdirAll(filepath.Join(f.root, "ok"), 0755)).To(Succeed())

			stats := run(generator.Options{})

			Expect(stats.Errors).To(Equal([]string{"nosource: missing source"}))
			Expect(stats.Created).To(Equal(1))
			Expect(filepath.Join(f.root, "README.md")).NotTo(BeAnExistingFile())
		})
	})

	Describe("write failures", func() {
		It("records the error and keeps the component counts", func() {
			f.writeManifest(pluginEntry("blocked"), pluginEntry("fine"))
			f.writeFile("blocked/agents/a.md", "")
			Expect(os.MkdirAll(filepath.Join(f.root, "blocked", "README.md", "dir"), 0755)).To(Succeed())
			Expect(os.MkdirAll(filepath.Join(f.root, "fine"), 0755)).To(Succeed())

			stats := run(generator.Options{})

			Expect(stats.Errors).To(HaveLen(1))
			Expect(stats.Errors[0]).To(HavePrefix("blocked: failed to write"))
			Expect(stats.Agents).To(Equal(1))
			Expect(stats.Updated).To(Equal(0))
			Expect(stats.Created).To(Equal(1))
			Expect(out.String()).To(ContainSubstring("blocked: Error - failed to write"))
		})
	})

	Describe("the exempt plugin", func() {
		const original = "# Hand written\n\nDo not touch.\n"

		BeforeEach(func() {
			f.writeManifest(pluginEntry("comic-production"), pluginEntry("other"))
			f.writeFile("comic-production/agents/artist.md", "---\nname: artist\n---\n")
			f.writeFile("other/README.md", "old")
		})

		It("leaves an existing README byte-for-byte unchanged", func() {
			f.writeFile("comic-production/README.md", original)

			stats := run(generator.Options{Exempt: generator.DefaultExempt})

			Expect(f.readme("comic-production")).To(Equal(original))
			Expect(stats.Skipped).To(Equal(1))
			Expect(stats.Created).To(Equal(0))
			Expect(stats.Updated).To(Equal(1))
			Expect(stats.Agents).To(Equal(1))
			Expect(out.String()).To(ContainSubstring("comic-production: Skipping (existing comprehensive README)"))
		})

		It("is generated when it has no README yet", func() {
			stats := run(generator.Options{Exempt: generator.DefaultExempt})

			Expect(stats.Created).To(Equal(1))
			Expect(f.readme("comic-production")).To(HavePrefix("# comic-production\n"))
		})
	})

	Describe("manifest failures", func() {
		It("returns a ManifestError when the manifest is missing", func() {
			_, err := generator.New(generator.Options{ManifestPath: f.manifest}, nil, out).Run(ctx)

			var me *marketplace.ManifestError
			Expect(errors.As(err, &me)).To(BeTrue())
			Expect(out.String()).To(BeEmpty())
		})

		It("returns a ManifestError when the manifest is malformed", func() {
			Expect(os.WriteFile(f.manifest, []byte("{not json"), 0644)).To(Succeed())

			_, err := generator.New(generator.Options{ManifestPath: f.manifest}, nil, out).Run(ctx)

			var me *marketplace.ManifestError
			Expect(errors.As(err, &me)).To(BeTrue())
		})
	})

	Describe("logging", func() {
		It("notes plugins without components at debug level", func() {
			f.writeManifest(pluginEntry("empty"))
			Expect(os.MkdirAll(filepath.Join(f.root, "empty"), 0755)).To(Succeed())

			var logs bytes.Buffer
			l := logrus.New()
			l.SetOutput(&logs)
			l.SetLevel(logrus.DebugLevel)
			ctx = logger.WithLogger(ctx, logrus.NewEntry(l))

			run(generator.Options{})

			Expect(logs.String()).To(ContainSubstring("plugin has no components"))
			Expect(logs.String()).To(ContainSubstring("plugin=empty"))
		})
	})

	Describe("auditing", func() {
		It("records every README write", func() {
			f.writeManifest(pluginEntry("alpha"), pluginEntry("beta"))
			Expect(os.MkdirAll(filepath.Join(f.root, "alpha"), 0755)).To(Succeed())
			f.writeFile("beta/README.md", "old")

			writer, err := events.NewJSONLWriter(filepath.Join(f.root, "audit.log"))
			Expect(err).NotTo(HaveOccurred())
			tracker := events.NewTracker(writer, true)

			_, err = generator.New(generator.Options{ManifestPath: f.manifest}, tracker, out).Run(ctx)
			Expect(err).NotTo(HaveOccurred())

			recorded, err := writer.Query(events.EventFilters{Operation: generator.WriteOperation})
			Expect(err).NotTo(HaveOccurred())
			Expect(recorded).To(HaveLen(2))

			byPlugin := map[string]string{}
			for _, e := range recorded {
				byPlugin[e.Plugin] = e.ChangeType
			}
			Expect(byPlugin).To(Equal(map[string]string{
				"alpha": events.ChangeTypeCreate,
				"beta":  events.ChangeTypeUpdate,
			}))
		})
	})
})

var _ = Describe("BuildPlugin", func() {
	It("assembles without writing", func() {
		f := newFixture()
		f.writeFile("demo/agents/helper.md", "---\nname: helper\n---\n")

		build, err := generator.BuildPlugin(context.Background(), marketplace.Plugin{Name: "demo", Source: "./demo"}, f.root)
		Expect(err).NotTo(HaveOccurred())

		Expect(build.Dir).To(Equal(filepath.Join(f.root, "demo")))
		Expect(build.ReadmePath).To(Equal(filepath.Join(f.root, "demo", "README.md")))
		Expect(build.Content).To(HavePrefix("# demo\n"))
		Expect(build.Components.Agents).To(HaveLen(1))
		Expect(build.ReadmePath).NotTo(BeAnExistingFile())

		exists, err := build.ReadmeExists()
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())
	})

	It("rejects a source that is a file", func() {
		f := newFixture()
		f.writeFile("demo", "not a dir")

		_, err := generator.BuildPlugin(context.Background(), marketplace.Plugin{Name: "demo", Source: "./demo"}, f.root)
		Expect(err).To(MatchError(ContainSubstring("is not a directory")))
	})
})
