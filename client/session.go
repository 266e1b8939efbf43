package client

import (
	"context"
	"sync"
	"sync/atomic"
)

// CategoryOrder is the canonical (ascending) ordering of the five fixed
// category keys, matching grouped server responses.
var CategoryOrder = []string{
	"cloud-devops",
	"cybersecurity",
	"data-science-ml",
	"mobile-development",
	"web-development",
}

// DefaultCategory is the bucket shown when a session starts.
const DefaultCategory = "web-development"

// Session is the explicit browse-session state that replaces the ambient
// globals of the old frontend: the per-category listing cache, the current
// category/page, the latest metadata snapshot and the display sequence
// counter. All reads and writes go through its methods.
//
// The cache is never invalidated within a session; staleness is accepted.
// Concurrent misses on the same category may each fetch; last write wins,
// which is fine because fetches are idempotent.
type Session struct {
	api *Client

	mu       sync.Mutex
	cache    map[string][]Listing
	category string
	page     int
	meta     Metadata

	seq atomic.Uint64
}

func NewSession(api *Client) *Session {
	return &Session{
		api:      api,
		cache:    make(map[string][]Listing),
		category: DefaultCategory,
		page:     1,
	}
}

// Token identifies one display-bound operation. Only the most recently
// issued token may commit its result, so a slow fetch that completes
// after the user has moved on cannot overwrite the display.
type Token uint64

func (s *Session) nextToken() Token {
	return Token(s.seq.Add(1))
}

// Current reports whether t is still the latest issued token.
func (s *Session) Current(t Token) bool {
	return uint64(t) == s.seq.Load()
}

// LoadAll primes the cache with every category in one round-trip and
// records the store metadata.
func (s *Session) LoadAll(ctx context.Context) error {
	env, err := s.api.All(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for cat, listings := range env.Categories {
		s.cache[cat] = listings
	}
	s.meta = env.Metadata
	return nil
}

// Listings returns the cached listings for a category, fetching and
// caching them on a miss (or when the cached slice is empty).
func (s *Session) Listings(ctx context.Context, category string) ([]Listing, error) {
	s.mu.Lock()
	cached, ok := s.cache[category]
	s.mu.Unlock()
	if ok && len(cached) > 0 {
		return cached, nil
	}

	env, err := s.api.Category(ctx, category)
	if err != nil {
		return nil, err
	}

	listings := env.Categories[category]
	if listings == nil {
		listings = []Listing{}
	}

	s.mu.Lock()
	s.cache[category] = listings
	s.meta = env.Metadata
	s.mu.Unlock()
	return listings, nil
}

// Cached returns the cached listings for a category without fetching.
func (s *Session) Cached(category string) []Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache[category]
}

// CachedAll returns the union of every cached category in canonical
// order, each listing annotated with its category key.
func (s *Session) CachedAll() []Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []Listing
	for _, cat := range CategoryOrder {
		for _, l := range s.cache[cat] {
			if l.Category == "" {
				l.Category = cat
			}
			all = append(all, l)
		}
	}
	// Categories outside the fixed five never enter the cache through the
	// API, but tolerate them if seeded directly.
	for cat, listings := range s.cache {
		if inCategoryOrder(cat) {
			continue
		}
		for _, l := range listings {
			if l.Category == "" {
				l.Category = cat
			}
			all = append(all, l)
		}
	}
	return all
}

func inCategoryOrder(cat string) bool {
	for _, c := range CategoryOrder {
		if c == cat {
			return true
		}
	}
	return false
}

// CacheEmpty reports whether nothing has been cached yet.
func (s *Session) CacheEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, listings := range s.cache {
		if len(listings) > 0 {
			return false
		}
	}
	return true
}

// Seed replaces the cached listings for a category. Intended for tests
// and for rehydrating a session from a previous response.
func (s *Session) Seed(category string, listings []Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[category] = listings
}

// Category returns the currently selected category.
func (s *Session) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// Page returns the current 1-indexed page.
func (s *Session) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Metadata returns the most recent metadata snapshot.
func (s *Session) Metadata() Metadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

func (s *Session) setPosition(category string, page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
	s.page = page
}
