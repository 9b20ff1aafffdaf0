// ABOUTME: Records README writes with before/after snapshots for an audit trail
// ABOUTME: A disabled tracker just runs the write without recording anything
package events

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/claudeup/plugin-readmes/internal/logger"
)

// Change types inferred from snapshots.
const (
	ChangeTypeCreate   = "create"
	ChangeTypeUpdate   = "update"
	ChangeTypeDelete   = "delete"
	ChangeTypeNoChange = "no-change"
	ChangeTypeUnknown  = "unknown"
)

// FileOperation represents a single file modification event
type FileOperation struct {
	Timestamp  time.Time `json:"timestamp"`
	Operation  string    `json:"operation"` // e.g. "readme generate"
	Plugin     string    `json:"plugin,omitempty"`
	File       string    `json:"file"`
	ChangeType string    `json:"changeType"`
	Before     *Snapshot `json:"before,omitempty"`
	After      *Snapshot `json:"after,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Snapshot represents the state of a file at a point in time
type Snapshot struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// EventWriter writes and queries file operation events
type EventWriter interface {
	Write(event *FileOperation) error
	Query(filters EventFilters) ([]*FileOperation, error)
}

// EventFilters for querying events
type EventFilters struct {
	File      string
	Plugin    string
	Operation string
	Since     time.Time
	Limit     int
}

// Tracker records file operations
type Tracker struct {
	enabled bool
	writer  EventWriter
	now     func() time.Time
}

// NewTracker creates a new event tracker
func NewTracker(writer EventWriter, enabled bool) *Tracker {
	return &Tracker{
		enabled: enabled && writer != nil,
		writer:  writer,
		now:     time.Now,
	}
}

// Disabled returns a tracker that records nothing.
func Disabled() *Tracker {
	return NewTracker(nil, false)
}

// IsEnabled returns whether the tracker is enabled
func (t *Tracker) IsEnabled() bool {
	return t.enabled
}

// RecordFileWrite runs fn, which writes file, and records the resulting change.
// A failure to record is logged as a warning and never fails the write itself.
func (t *Tracker) RecordFileWrite(ctx context.Context, operation, plugin, file string, fn func() error) error {
	if !t.enabled {
		return fn()
	}

	before := snapshot(file)
	err := fn()
	after := snapshot(file)

	event := &FileOperation{
		Timestamp:  t.now(),
		Operation:  operation,
		Plugin:     plugin,
		File:       file,
		ChangeType: inferChangeType(before, after),
		Before:     before,
		After:      after,
	}
	if err != nil {
		event.Error = err.Error()
	}

	if werr := t.writer.Write(event); werr != nil {
		logger.G(ctx).WithError(werr).WithField("file", file).Warn("failed to record README write")
	}

	return err
}

// Summary describes the change in one line.
func (e *FileOperation) Summary() string {
	switch e.ChangeType {
	case ChangeTypeCreate:
		return fmt.Sprintf("File created (%d bytes)", e.After.Size)
	case ChangeTypeDelete:
		return fmt.Sprintf("File deleted (was %d bytes)", e.Before.Size)
	case ChangeTypeUpdate:
		return fmt.Sprintf("File updated (%+d bytes)", e.After.Size-e.Before.Size)
	case ChangeTypeNoChange:
		return "No changes detected"
	default:
		return "No change (file did not exist)"
	}
}

// snapshot returns nil when the file does not exist
func snapshot(path string) *Snapshot {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	hash, err := hashFile(path)
	if err != nil {
		return &Snapshot{Size: info.Size()}
	}

	return &Snapshot{
		Hash: hash,
		Size: info.Size(),
	}
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func inferChangeType(before, after *Snapshot) string {
	switch {
	case before == nil && after != nil:
		return ChangeTypeCreate
	case before != nil && after == nil:
		return ChangeTypeDelete
	case before != nil && after != nil:
		if before.Hash != after.Hash {
			return ChangeTypeUpdate
		}
		return ChangeTypeNoChange
	}
	return ChangeTypeUnknown
}
