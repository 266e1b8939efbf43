package client

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeListings(n int) []Listing {
	listings := make([]Listing, n)
	for i := range listings {
		listings[i] = Listing{ID: int64(i + 1), Username: "user" + strconv.Itoa(i+1)}
	}
	return listings
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{28, 1},
		{29, 2},
		{56, 2},
		{57, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.total), "total=%d", tc.total)
	}
}

func TestPaginatePartitionsExactly(t *testing.T) {
	// Concatenating pages 1..TotalPages must reconstruct the sequence
	// with no duplicates or omissions.
	for _, n := range []int{0, 1, 27, 28, 29, 56, 100} {
		listings := makeListings(n)
		pages := TotalPages(n)

		rebuilt := []Listing{}
		for p := 1; p <= pages; p++ {
			rebuilt = append(rebuilt, Paginate(listings, p)...)
		}
		assert.Equal(t, listings, rebuilt, "n=%d", n)
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	listings := makeListings(30)

	// No clamping: a page past the end is an empty slice, not the last page.
	assert.Empty(t, Paginate(listings, 3))
	assert.Empty(t, Paginate(listings, 100))
	assert.Empty(t, Paginate(listings, 0))
	assert.Empty(t, Paginate(listings, -1))

	assert.Len(t, Paginate(listings, 1), 28)
	assert.Len(t, Paginate(listings, 2), 2)
}

func TestPageControls(t *testing.T) {
	t.Run("Single page renders no controls", func(t *testing.T) {
		assert.Nil(t, PageControls(28, 1))
		assert.Nil(t, PageControls(0, 1))
	})

	t.Run("Marks the current page", func(t *testing.T) {
		controls := PageControls(60, 2)
		assert.Len(t, controls, 3)
		assert.False(t, controls[0].Active)
		assert.True(t, controls[1].Active)
		assert.Equal(t, 3, controls[2].Number)
	})
}
