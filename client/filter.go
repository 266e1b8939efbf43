package client

import "strings"

// Filter is the transient state of the advanced-filter controls. Nil
// price bounds mean "unset"; an empty Category selects the union of all
// cached categories; Skills are matched disjunctively against the
// description while everything else composes conjunctively.
type Filter struct {
	MinPrice *int
	MaxPrice *int
	Category string
	Skills   []string
}

// ParseSkills turns the raw comma-separated skills input into the
// normalized skill list: lowercased, trimmed, blanks removed.
func ParseSkills(input string) []string {
	var skills []string
	for _, s := range strings.Split(strings.ToLower(input), ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// ApplyFilter evaluates the filter locally against the session cache.
// No network calls are made: the pool is the selected category's cached
// listings, or every cached listing when no category is set.
func (s *Session) ApplyFilter(f Filter) []Listing {
	var pool []Listing
	if f.Category != "" {
		pool = s.Cached(f.Category)
	} else {
		pool = s.CachedAll()
	}

	results := []Listing{}
	for _, l := range pool {
		if f.matches(l) {
			results = append(results, l)
		}
	}
	return results
}

func (f Filter) matches(l Listing) bool {
	if f.MinPrice != nil || f.MaxPrice != nil {
		price, ok := l.PriceInt()
		// A non-numeric price never satisfies a price bound.
		if !ok {
			return false
		}
		if f.MinPrice != nil && price < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && price > *f.MaxPrice {
			return false
		}
	}

	if len(f.Skills) > 0 {
		description := strings.ToLower(l.ShortDescription)
		matched := false
		for _, skill := range f.Skills {
			if strings.Contains(description, strings.ToLower(skill)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
