// ABOUTME: Tagged outcome of reading one component definition file
// ABOUTME: Keeps an unreadable file distinct from a genuinely empty one
package metadata

import (
	"fmt"
	"os"
)

// Source is the result of reading a component file.
type Source struct {
	Path    string
	Content string
	Err     error
}

// ReadSource reads path. A failed read is returned in Err, never panics.
func ReadSource(path string) Source {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{Path: path, Err: err}
	}
	return Source{Path: path, Content: string(data)}
}

// Degraded reports whether the file could not be read.
func (s Source) Degraded() bool {
	return s.Err != nil
}

// Text returns the file content, or an inline placeholder comment when the
// read failed.
func (s Source) Text() string {
	if s.Err != nil {
		return fmt.Sprintf("<!-- Error reading file: %v -->", s.Err)
	}
	return s.Content
}
