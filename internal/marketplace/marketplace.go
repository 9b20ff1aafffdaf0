// ABOUTME: Data structures and loading for .claude-plugin/marketplace.json
// ABOUTME: Resolves plugin source directories relative to the marketplace root
package marketplace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// PluginDir is the directory holding the marketplace manifest.
	PluginDir = ".claude-plugin"
	// ManifestFile is the manifest file name inside PluginDir.
	ManifestFile = "marketplace.json"
)

// DefaultManifestPath is the manifest location relative to a marketplace root.
var DefaultManifestPath = filepath.Join(PluginDir, ManifestFile)

// Manifest represents the .claude-plugin/marketplace.json file
type Manifest struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"plugins"`
}

// Entry is one element of the manifest's plugins array. An element that
// does not decode as a Plugin keeps the decode error in Err instead of
// failing the whole manifest; Plugin then carries only its name, if any.
type Entry struct {
	Index  int
	Plugin Plugin
	Err    error
}

// UnmarshalJSON decodes an entry and never fails on a malformed element.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var p Plugin
	if err := json.Unmarshal(data, &p); err != nil {
		var named struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(data, &named)
		e.Plugin = Plugin{Name: named.Name}
		e.Err = fmt.Errorf("malformed manifest entry: %w", err)
		return nil
	}
	e.Plugin = p
	return nil
}

// Label names the entry in progress lines: the plugin name, or its
// one-based position when the name could not be read.
func (e Entry) Label() string {
	if e.Plugin.Name != "" {
		return e.Plugin.Name
	}
	return fmt.Sprintf("entry #%d", e.Index+1)
}

// Author identifies who maintains a plugin
type Author struct {
	Name string `json:"name"`
}

// Plugin represents a plugin entry in the marketplace manifest
type Plugin struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Category    string   `json:"category"`
	Author      Author   `json:"author"`
	License     string   `json:"license"`
	Keywords    []string `json:"keywords,omitempty"`
	Source      string   `json:"source"`
}

// Load reads and parses a marketplace manifest
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ManifestError{Path: path, Op: "read", Err: err}
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, &ManifestError{Path: path, Op: "parse", Err: err}
	}
	for i := range manifest.Entries {
		manifest.Entries[i].Index = i
	}

	return &manifest, nil
}

// BaseDir returns the marketplace root for a manifest path: the parent of
// .claude-plugin/ when the manifest lives there, else the manifest's own directory.
func BaseDir(manifestPath string) string {
	dir := filepath.Dir(manifestPath)
	if filepath.Base(dir) == PluginDir {
		return filepath.Dir(dir)
	}
	return dir
}

// Dir resolves the plugin's source directory under base. Leading "." and "/"
// characters of the source are dropped, so "./demo" and "/demo" both resolve
// to base/demo.
func (p Plugin) Dir(base string) string {
	return filepath.Join(base, strings.TrimLeft(p.Source, "./"))
}

// HasKeyword reports whether keyword is listed verbatim in the plugin's keywords
func (p Plugin) HasKeyword(keyword string) bool {
	return slices.Contains(p.Keywords, keyword)
}
