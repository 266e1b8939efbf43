package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func seededSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(nil)
	s.Seed("web-development", []Listing{
		{ID: 1, Username: "reactdev", ShortDescription: "Expert React and Node developer", Price: "35"},
		{ID: 2, Username: "pricey", ShortDescription: "Senior python engineer", Price: "50"},
		{ID: 3, Username: "plain", ShortDescription: "General web work", Price: "25"},
	})
	s.Seed("data-science-ml", []Listing{
		{ID: 4, Username: "mlpro", ShortDescription: "Machine learning with python", Price: "40"},
		{ID: 5, Username: "oddprice", ShortDescription: "python notebooks", Price: "n/a"},
	})
	return s
}

func TestFilterComposition(t *testing.T) {
	s := seededSession(t)

	// Conjunctive across dimensions, disjunctive within skills.
	f := Filter{
		MinPrice: intPtr(20),
		MaxPrice: intPtr(40),
		Skills:   []string{"python", "react"},
	}
	results := s.ApplyFilter(f)

	ids := map[int64]bool{}
	for _, l := range results {
		ids[l.ID] = true
	}

	assert.True(t, ids[1], "price 35 with React should pass")
	assert.True(t, ids[4], "price 40 with python should pass")
	assert.False(t, ids[2], "price 50 violates the max bound even with python")
	assert.False(t, ids[3], "price 25 with neither skill fails")
}

func TestFilterSkillMatchIsCaseInsensitive(t *testing.T) {
	s := NewSession(nil)
	s.Seed("web-development", []Listing{
		{ID: 1, ShortDescription: "REACT specialist", Price: "30"},
	})

	results := s.ApplyFilter(Filter{Skills: []string{"react"}})
	assert.Len(t, results, 1)
}

func TestFilterNonNumericPrice(t *testing.T) {
	s := seededSession(t)

	t.Run("Excluded from price-bounded filtering", func(t *testing.T) {
		results := s.ApplyFilter(Filter{MinPrice: intPtr(0), Category: "data-science-ml"})
		assert.Len(t, results, 1)
		assert.Equal(t, int64(4), results[0].ID)
	})

	t.Run("Included when no price bound is set", func(t *testing.T) {
		results := s.ApplyFilter(Filter{Skills: []string{"python"}, Category: "data-science-ml"})
		assert.Len(t, results, 2)
	})
}

func TestFilterCategoryPoolSelection(t *testing.T) {
	s := seededSession(t)

	t.Run("Selected category restricts the pool", func(t *testing.T) {
		results := s.ApplyFilter(Filter{Category: "web-development"})
		assert.Len(t, results, 3)
	})

	t.Run("No category unions all cached categories", func(t *testing.T) {
		results := s.ApplyFilter(Filter{})
		assert.Len(t, results, 5)
	})

	t.Run("Unknown category yields an empty pool", func(t *testing.T) {
		results := s.ApplyFilter(Filter{Category: "unknown-cat"})
		assert.Empty(t, results)
	})
}

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"python", "react native"}, ParseSkills(" Python , REACT Native ,, "))
	assert.Nil(t, ParseSkills(""))
}
