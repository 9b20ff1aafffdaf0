// ABOUTME: Parses the flat key: value header at the top of agent, skill and command files
// ABOUTME: Only the restricted "---" delimited form is supported, no YAML semantics
package frontmatter

import "strings"

// Delimiter opens and closes a frontmatter header.
const Delimiter = "---"

// Parse extracts key: value pairs from the header of content.
// Content that does not start with the delimiter, or whose header is never
// closed, yields an empty map. Keys and values are trimmed, the first colon
// splits a line, later duplicates overwrite earlier ones and lines without a
// colon are ignored.
func Parse(content string) map[string]string {
	fields := make(map[string]string)
	if !strings.HasPrefix(content, Delimiter) {
		return fields
	}

	parts := strings.SplitN(content, Delimiter, 3)
	if len(parts) < 3 {
		return fields
	}

	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}

// Lookup returns fields[key], or fallback when the key is absent.
func Lookup(fields map[string]string, key, fallback string) string {
	if v, ok := fields[key]; ok {
		return v
	}
	return fallback
}
