// ABOUTME: Per-plugin error type recorded in run statistics
// ABOUTME: Formats as "<plugin>: <message>" without aborting the run
package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectoryNotFound reports a manifest source that does not exist.
	ErrDirectoryNotFound = errors.New("Directory not found")
	// ErrMissingSource reports a manifest entry without a source path.
	ErrMissingSource = errors.New("missing source")
)

// PluginError is a failure confined to one manifest entry.
type PluginError struct {
	Plugin string
	Err    error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("%s: %v", e.Plugin, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}
