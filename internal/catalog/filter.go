package catalog

import "strings"

// Filter returns the templates matching both query and category, in catalog
// order. An empty or whitespace-only query matches every template; otherwise
// the query must appear, case-insensitively, in the name or description. An
// empty category means all categories; otherwise it must equal the
// template's category exactly.
func Filter(templates []Template, query string, category Category) []Template {
	q := strings.ToLower(query)
	matchAll := strings.TrimSpace(query) == ""

	var out []Template
	for _, t := range templates {
		if category != "" && t.Category != category {
			continue
		}
		if !matchAll &&
			!strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}
