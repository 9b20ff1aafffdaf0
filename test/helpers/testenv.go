// ABOUTME: TestEnv provides isolated marketplace checkouts for acceptance tests
// ABOUTME: Creates temp directories and runs the CLI binary from the marketplace root
package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Result holds the outcome of a CLI invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TestEnv represents an isolated marketplace checkout
type TestEnv struct {
	RootDir      string // Marketplace root; the CLI runs here
	ManifestPath string // .claude-plugin/marketplace.json under RootDir
	Binary       string // Path to plugin-readmes binary
}

// NewTestEnv creates a new isolated marketplace with an empty manifest
func NewTestEnv(binary string) *TestEnv {
	root := GinkgoT().TempDir()

	env := &TestEnv{
		RootDir:      root,
		ManifestPath: filepath.Join(root, ".claude-plugin", "marketplace.json"),
		Binary:       binary,
	}
	env.CreateManifest()

	return env
}

// CreateManifest writes the marketplace manifest with the given plugin entries
func (e *TestEnv) CreateManifest(plugins ...map[string]interface{}) {
	if plugins == nil {
		plugins = []map[string]interface{}{}
	}
	WriteJSON(e.ManifestPath, map[string]interface{}{
		"name":    "test-marketplace",
		"plugins": plugins,
	})
}

// Plugin returns a manifest entry sourced from ./plugins/<name>
func Plugin(name, category string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"description": "Tools for " + name + ". Built for tests.",
		"version":     "1.0.0",
		"category":    category,
		"author":      map[string]string{"name": "Test Author"},
		"license":     "MIT",
		"keywords":    []string{"testing"},
		"source":      "./plugins/" + name,
	}
}

// WriteFile writes content relative to the marketplace root
func (e *TestEnv) WriteFile(rel, content string) {
	path := filepath.Join(e.RootDir, rel)
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
}

// ReadFile reads a file relative to the marketplace root
func (e *TestEnv) ReadFile(rel string) string {
	data, err := os.ReadFile(filepath.Join(e.RootDir, rel))
	Expect(err).NotTo(HaveOccurred())
	return string(data)
}

// FileExists reports whether a file exists relative to the marketplace root
func (e *TestEnv) FileExists(rel string) bool {
	_, err := os.Stat(filepath.Join(e.RootDir, rel))
	return err == nil
}

// Run executes the CLI from the marketplace root
func (e *TestEnv) Run(args ...string) *Result {
	return e.RunWithEnv(nil, args...)
}

// RunWithEnv executes the CLI with extra environment variables
func (e *TestEnv) RunWithEnv(extraEnv map[string]string, args ...string) *Result {
	cmd := exec.Command(e.Binary, args...)
	cmd.Dir = e.RootDir
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	for k, v := range extraEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// BuildBinary builds the plugin-readmes binary and returns its path
func BuildBinary() string {
	binPath := filepath.Join(GinkgoT().TempDir(), "plugin-readmes")

	// Find the project root by looking for go.mod
	projectRoot, err := findProjectRoot()
	Expect(err).NotTo(HaveOccurred())

	// Use absolute path for source
	sourcePath := filepath.Join(projectRoot, "cmd", "plugin-readmes")

	cmd := exec.Command("go", "build", "-o", binPath, sourcePath)
	Expect(cmd.Run()).To(Succeed())
	return binPath
}

// findProjectRoot walks up the directory tree to find go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

// WriteJSON writes data as JSON to the specified path
func WriteJSON(path string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	Expect(err).NotTo(HaveOccurred())
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, jsonData, 0644)).To(Succeed())
}

// ReadLines returns the non-empty lines of a file
func ReadLines(path string) []string {
	data, err := os.ReadFile(path)
	Expect(err).NotTo(HaveOccurred())

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
