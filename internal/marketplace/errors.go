// ABOUTME: Error type for manifest failures that abort a generation run
// ABOUTME: Carries the manifest path and a hint on where the file is expected
package marketplace

import "fmt"

// ManifestError indicates the manifest could not be read or parsed.
// Nothing can be generated without it, so it is fatal for a run.
type ManifestError struct {
	Path string
	Op   string // "read" or "parse"
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf(`cannot %s marketplace manifest:

  Path: %s
  Cause: %v

Run from the marketplace root (the directory containing %s/)
or pass --manifest with the path to %s.`,
		e.Op, e.Path, e.Err, PluginDir, ManifestFile)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}
