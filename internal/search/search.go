// File: internal/search/search.go
package search

import (
	"strings"

	"unichoice_core/internal/university"
)

// Search filters the aggregated list by free-text query. The query is
// trimmed and lowercased; a blank query returns the input unchanged. A record
// matches when the query is a substring of its combined name, city,
// description and program names. Input order is preserved; there is no
// tokenization, ranking or fuzziness.
func Search(list []university.University, query string) []university.University {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}

	results := make([]university.University, 0, len(list))
	for _, u := range list {
		if strings.Contains(haystack(u), q) {
			results = append(results, u)
		}
	}
	return results
}

func haystack(u university.University) string {
	parts := make([]string, 0, 3+len(u.Programs))
	parts = append(parts, u.Name, u.City, u.Description)
	for _, p := range u.Programs {
		parts = append(parts, p.Name)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
