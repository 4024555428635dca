package config

import (
	"fmt"
	"strconv"
	"strings"
)

const bom = "\uFEFF"

// Parse turns config lines into a key/value map.
//
// Blank lines and lines starting with '#' are ignored. Values may be
// double-quoted (Go string syntax), in which case escapes are decoded and
// anything after the closing quote is treated as a comment. Unquoted values
// end at the first " #". Later keys override earlier ones.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string, len(lines))

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		v, err := parseValue(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("config: line %d: %w", i+1, err)
		}
		cfg[key] = v
	}

	return cfg, nil
}

func parseValue(raw string) (string, error) {
	if strings.HasPrefix(raw, `"`) {
		quoted, err := strconv.QuotedPrefix(raw)
		if err != nil {
			return "", fmt.Errorf("unterminated quoted value")
		}
		return strconv.Unquote(quoted)
	}

	if idx := strings.Index(raw, " #"); idx >= 0 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw), nil
}

// FormatValue returns value in the form Parse reads back unchanged.
// Plain values are written as-is; anything with spaces, quotes, '#' or
// control characters is quoted.
func FormatValue(value string) string {
	if value == "" {
		return value
	}
	if strings.ContainsAny(value, " \t\"#\\\r\n") || strings.TrimSpace(value) != value {
		return strconv.Quote(value)
	}
	return value
}
