package view

import "strings"

// MatchesTerm reports whether any field contains the search term,
// case-insensitively. An empty term matches everything.
func MatchesTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Search filters items to those whose searchable fields match the term.
func Search[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if MatchesTerm(term, fields(item)...) {
			matched = append(matched, item)
		}
	}
	return matched
}

// EmptyMessage picks the affordance for an empty rendered set: a search that
// matched nothing reads differently from a view with no data at all.
func EmptyMessage(searchTerm, noMatches, noData string) string {
	if searchTerm != "" {
		return noMatches
	}
	return noData
}
