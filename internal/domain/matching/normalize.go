package matching

import "strings"

// Normalize trims and lower-cases every entry. Order, duplicates and empty
// entries are preserved.
func Normalize(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, strings.ToLower(strings.TrimSpace(s)))
	}
	return out
}
