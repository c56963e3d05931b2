package bumptag

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// capStrings returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capStrings(out []string, limit int) []string {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}

// splitLines splits command output into trimmed, non-empty lines.
func splitLines(s string) []string {
	out := make([]string, 0, 16)
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}

	return out
}

// containsString reports whether in contains s.
func containsString(in []string, s string) bool {
	for _, x := range in {
		if x == s {
			return true
		}
	}

	return false
}
