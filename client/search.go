package client

import (
	"context"
	"strings"
)

// Search runs a keyword search against the service and returns a flat
// result sequence annotated with categories, preserving the grouped
// response's ordering. A blank query returns an empty result without a
// network call.
//
// When the remote call fails and the cache holds anything, the search
// falls back to a local substring scan over cached usernames and
// descriptions. With an empty cache the fallback yields an empty result;
// there is no further recourse.
func (s *Session) Search(ctx context.Context, query string) ([]Listing, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []Listing{}, nil
	}

	env, err := s.api.Search(ctx, query)
	if err != nil {
		if s.CacheEmpty() {
			return []Listing{}, nil
		}
		return s.localSearch(query), nil
	}

	results := []Listing{}
	for _, cat := range CategoryOrder {
		for _, l := range env.Categories[cat] {
			if l.Category == "" {
				l.Category = cat
			}
			results = append(results, l)
		}
	}
	return results, nil
}

// localSearch scans every cached listing for the lowercased query.
func (s *Session) localSearch(query string) []Listing {
	results := []Listing{}
	for _, l := range s.CachedAll() {
		if strings.Contains(strings.ToLower(l.Username), query) ||
			strings.Contains(strings.ToLower(l.ShortDescription), query) {
			results = append(results, l)
		}
	}
	return results
}
