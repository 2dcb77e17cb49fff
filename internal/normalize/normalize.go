// Package normalize cleans up loosely formatted configuration values.
package normalize

import "strings"

// Origins splits a comma-separated origin allow-list, trimming whitespace and
// trailing slashes and dropping empty entries. An empty input yields ["*"].
func Origins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		out = append(out, o)
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// AllowsAny reports whether the allow-list contains the "*" wildcard.
func AllowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
