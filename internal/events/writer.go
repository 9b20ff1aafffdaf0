// ABOUTME: JSONL writer that appends README write events to an audit log
// ABOUTME: and queries them back newest first for the history command
package events

import (
	"bufio"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// JSONLWriter stores one JSON encoded FileOperation per line.
type JSONLWriter struct {
	logPath string
}

// NewJSONLWriter creates the log's parent directory if needed.
func NewJSONLWriter(logPath string) (*JSONLWriter, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, err
	}
	return &JSONLWriter{logPath: logPath}, nil
}

// Path returns the log file location.
func (w *JSONLWriter) Path() string {
	return w.logPath
}

// Write appends an event to the log file
func (w *JSONLWriter) Write(event *FileOperation) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(w.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(data, '\n'))
	return err
}

// Query returns matching events, most recent first. Malformed lines are
// skipped and a missing log yields no events.
func (w *JSONLWriter) Query(filters EventFilters) ([]*FileOperation, error) {
	f, err := os.Open(w.logPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []*FileOperation{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var found []*FileOperation
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event FileOperation
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}
		if filters.matches(&event) {
			found = append(found, &event)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Timestamp.After(found[j].Timestamp)
	})

	if filters.Limit > 0 && len(found) > filters.Limit {
		found = found[:filters.Limit]
	}
	return found, nil
}

func (f EventFilters) matches(event *FileOperation) bool {
	if f.File != "" && event.File != f.File {
		return false
	}
	if f.Plugin != "" && event.Plugin != f.Plugin {
		return false
	}
	if f.Operation != "" && !strings.Contains(event.Operation, f.Operation) {
		return false
	}
	if !f.Since.IsZero() && event.Timestamp.Before(f.Since) {
		return false
	}
	return true
}
