package config

import "strings"

// Set replaces the value of key in lines, keeping any inline comment, or
// appends key=value when the key is absent. Reports whether the key existed.
func Set(lines []string, key, value string) ([]string, bool) {
	formatted := FormatValue(value)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		k, oldValue, ok := strings.Cut(trimmed, "=")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}

		if comment := inlineComment(strings.TrimSpace(oldValue)); comment != "" {
			lines[i] = key + "=" + formatted + " " + comment
		} else {
			lines[i] = key + "=" + formatted
		}
		return lines, true
	}

	lines = append(lines, key+"="+formatted)
	return lines, false
}

// Unset removes every line assigning key. Reports whether anything was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out = append(out, line)
			continue
		}

		k, _, ok := strings.Cut(trimmed, "=")
		if ok && strings.TrimSpace(k) == key {
			removed = true
			continue
		}

		out = append(out, line)
	}

	return out, removed
}

func inlineComment(raw string) string {
	if strings.HasPrefix(raw, `"`) {
		return ""
	}
	if idx := strings.Index(raw, " #"); idx >= 0 {
		return strings.TrimSpace(raw[idx:])
	}
	return ""
}
