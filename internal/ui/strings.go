package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end. For paths, it preserves file extensions.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	ellipsis := []rune("…")
	if limit <= 3 {
		return string(runes[:limit])
	}

	// Preserve the extension of a path-looking value.
	isPath := strings.Contains(value, "/") || strings.Contains(value, "\\")
	if isPath {
		lastDot := strings.LastIndex(value, ".")
		lastSlash := max(strings.LastIndex(value, "/"), strings.LastIndex(value, "\\"))

		if lastDot > lastSlash && lastDot > 0 {
			ext := value[lastDot:]
			extRunes := []rune(ext)

			if len(extRunes) < 10 && len(extRunes) < limit/2 {
				baseRunes := []rune(value[:lastDot])
				baseLimit := limit - len(extRunes) - len(ellipsis)
				if baseLimit > 0 && len(baseRunes) > baseLimit {
					prefix := baseLimit / 2
					suffix := baseLimit - prefix
					return string(baseRunes[:prefix]) + string(ellipsis) + string(baseRunes[len(baseRunes)-suffix:]) + ext
				}
			}
		}
	}

	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}

// titleCase converts an underscore-separated string to title case.
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Split(value, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}
