package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchServer(t *testing.T, categories map[string][]Listing) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "search", r.URL.Query().Get("action"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Envelope{
			Metadata:   Metadata{LastUpdated: "2025-05-07 12:46:36", UpdatedBy: "tester"},
			Categories: categories,
		})
	}))
}

func TestSearchRemoteFlattensGroupedResponse(t *testing.T) {
	srv := searchServer(t, map[string][]Listing{
		"web-development": {{ID: 2, Username: "webdev"}},
		"cloud-devops":    {{ID: 1, Username: "clouddev"}},
	})
	defer srv.Close()

	s := NewSession(NewClient(srv.URL, srv.Client()))
	results, err := s.Search(context.Background(), "dev")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Canonical category order, with the category annotated on each row.
	assert.Equal(t, "clouddev", results[0].Username)
	assert.Equal(t, "cloud-devops", results[0].Category)
	assert.Equal(t, "web-development", results[1].Category)
}

func TestSearchBlankQuerySkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	s := NewSession(NewClient(srv.URL, srv.Client()))
	results, err := s.Search(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, calls.Load())
}

func TestSearchFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"message":"Database connection failed"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Run("Scans the cache when the remote call fails", func(t *testing.T) {
		s := NewSession(NewClient(srv.URL, srv.Client()))
		s.Seed("web-development", []Listing{
			{ID: 1, Username: "frontend", ShortDescription: "JavaScript expert"},
			{ID: 2, Username: "backend", ShortDescription: "Go services"},
		})

		// "java" substring-matches "JavaScript expert".
		results, err := s.Search(context.Background(), "java")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, int64(1), results[0].ID)
	})

	t.Run("Matches against usernames too", func(t *testing.T) {
		s := NewSession(NewClient(srv.URL, srv.Client()))
		s.Seed("web-development", []Listing{
			{ID: 1, Username: "PixelSmith", ShortDescription: "design systems"},
		})

		results, err := s.Search(context.Background(), "pixel")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("Empty cache yields an empty result, not an error", func(t *testing.T) {
		s := NewSession(NewClient(srv.URL, srv.Client()))
		results, err := s.Search(context.Background(), "anything")
		assert.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestListingsCaching(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		cat := r.URL.Query().Get("category")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Envelope{
			Metadata:   Metadata{LastUpdated: "now", UpdatedBy: "tester"},
			Categories: map[string][]Listing{cat: {{ID: 1, Username: "only", Category: cat}}},
		})
	}))
	defer srv.Close()

	s := NewSession(NewClient(srv.URL, srv.Client()))

	first, err := s.Listings(context.Background(), "cybersecurity")
	require.NoError(t, err)
	second, err := s.Listings(context.Background(), "cybersecurity")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load(), "second call must be served from cache")
	assert.Equal(t, "tester", s.Metadata().UpdatedBy)
}

func TestClientSurfacesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":true,"message":"Database connection failed"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.All(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Database connection failed", apiErr.Message)
}
