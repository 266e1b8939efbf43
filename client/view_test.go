package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryServer(t *testing.T, listings map[string][]Listing) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cat := r.URL.Query().Get("category")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Envelope{
			Metadata:   Metadata{LastUpdated: "now", UpdatedBy: "tester"},
			Categories: map[string][]Listing{cat: listings[cat]},
		})
	}))
}

func TestShowCategoryLifecycle(t *testing.T) {
	srv := categoryServer(t, map[string][]Listing{
		"web-development": makeListings(30),
	})
	defer srv.Close()

	s := NewSession(NewClient(srv.URL, srv.Client()))
	p := NewPresenter(s)

	assert.Equal(t, StateIdle, p.Current().State)

	v := p.ShowCategory(context.Background(), "web-development", 2)
	require.Equal(t, StateRendered, v.State)
	assert.Len(t, v.Listings, 2)
	assert.Len(t, v.Controls, 2)
	assert.True(t, v.Controls[1].Active)

	assert.Equal(t, "web-development", s.Category())
	assert.Equal(t, 2, s.Page())
	assert.False(t, p.Loading(), "spinner must be cleared after completion")
}

func TestShowCategoryEmptyIsRenderedNotFailed(t *testing.T) {
	srv := categoryServer(t, map[string][]Listing{})
	defer srv.Close()

	s := NewSession(NewClient(srv.URL, srv.Client()))
	p := NewPresenter(s)

	v := p.ShowCategory(context.Background(), "cybersecurity", 1)
	assert.Equal(t, StateRendered, v.State)
	assert.Empty(t, v.Listings)
	assert.Contains(t, string(v.HTML), "No freelancers found")
}

func TestShowCategoryFailureClearsSpinner(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"message":"Database connection failed"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSession(NewClient(srv.URL, srv.Client()))
	p := NewPresenter(s)

	v := p.ShowCategory(context.Background(), "web-development", 1)
	assert.Equal(t, StateFailed, v.State)
	assert.Error(t, v.Err)
	assert.Contains(t, string(v.HTML), "Error loading freelancer data")
	assert.False(t, p.Loading())
}

func TestStaleResultsAreDiscarded(t *testing.T) {
	s := NewSession(nil)
	p := NewPresenter(s)

	stale := s.nextToken()
	fresh := s.nextToken()

	// The slower, older operation completes after the newer one and must
	// not overwrite the display.
	assert.True(t, p.commitIfCurrent(View{State: StateRendered, token: fresh}))
	assert.False(t, p.commitIfCurrent(View{State: StateFailed, token: stale}))
	assert.Equal(t, StateRendered, p.Current().State)
}

func TestShowFilteredUsesLocalCacheOnly(t *testing.T) {
	// nil API client: any network call would panic.
	s := NewSession(nil)
	s.Seed("web-development", []Listing{
		{ID: 1, Username: "a", ShortDescription: "react apps", Price: "30"},
		{ID: 2, Username: "b", ShortDescription: "vue apps", Price: "60"},
	})
	p := NewPresenter(s)

	v := p.ShowFiltered(Filter{MaxPrice: intPtr(40)})
	require.Equal(t, StateRendered, v.State)
	require.Len(t, v.Listings, 1)
	assert.Equal(t, int64(1), v.Listings[0].ID)
	assert.Nil(t, v.Controls, "filtered views hide pagination")
}
