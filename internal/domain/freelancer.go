package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Category is the closed set of marketplace categories. Listings outside
// this set never appear in categorized views.
type Category string

const (
	CategoryWebDevelopment    Category = "web-development"
	CategoryMobileDevelopment Category = "mobile-development"
	CategoryDataScienceML     Category = "data-science-ml"
	CategoryCybersecurity     Category = "cybersecurity"
	CategoryCloudDevOps       Category = "cloud-devops"
)

// Categories returns the fixed five categories in their canonical
// (ascending) order, matching the ordering of grouped query results.
func Categories() []Category {
	return []Category{
		CategoryCloudDevOps,
		CategoryCybersecurity,
		CategoryDataScienceML,
		CategoryMobileDevelopment,
		CategoryWebDevelopment,
	}
}

// IsKnownCategory reports whether c is one of the fixed five.
func IsKnownCategory(c Category) bool {
	switch c {
	case CategoryWebDevelopment, CategoryMobileDevelopment,
		CategoryDataScienceML, CategoryCybersecurity, CategoryCloudDevOps:
		return true
	}
	return false
}

type Freelancer struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	ProfileLink      string    `json:"profile_link"`
	ProfileImage     string    `json:"profile_image"`
	Rating           float64   `json:"rating"`
	Reviews          int       `json:"reviews"`
	ShortDescription string    `json:"short_description"`
	Price            int       `json:"price"`
	Category         Category  `json:"category"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// Metadata describes when the freelancer store was last refreshed.
// A single most-recent record; MetadataFallback is used when the store
// has none.
type Metadata struct {
	LastUpdated string `json:"last_updated"`
	UpdatedBy   string `json:"updated_by"`
}

// MetadataFallback is returned when the metadata table is empty.
var MetadataFallback = Metadata{
	LastUpdated: "2025-05-07 12:46:36",
	UpdatedBy:   "souhail4real",
}

// CategorizedFreelancers maps category keys to their listings. Grouped
// views always carry exactly the five fixed buckets; the single-category
// view carries one bucket under the requested key, known or not.
type CategorizedFreelancers map[Category][]Freelancer

// BrowseResponse is the wire envelope of the freelancer query endpoint.
// Exactly one of Categories or Latest is set depending on the action.
type BrowseResponse struct {
	Metadata   Metadata               `json:"metadata"`
	Categories CategorizedFreelancers `json:"categories,omitempty"`
	Latest     []Freelancer           `json:"latest_freelancers,omitempty"`
}

type FreelancerRepository interface {
	// FetchAll returns every listing grouped into the five fixed buckets,
	// ordered category ASC then id DESC within each bucket.
	FetchAll(ctx context.Context) (CategorizedFreelancers, error)
	// FetchByCategory returns listings of one category, recency descending.
	// The category is passed through unvalidated; unknown values yield an
	// empty slice.
	FetchByCategory(ctx context.Context, category Category) ([]Freelancer, error)
	// Search returns listings whose username or short description contains
	// the keyword (case-insensitive), grouped like FetchAll. An empty
	// keyword matches everything.
	Search(ctx context.Context, keyword string) (CategorizedFreelancers, error)
	// FetchLatest returns the limit most recently created listings across
	// all categories, created_at descending.
	FetchLatest(ctx context.Context, limit int) ([]Freelancer, error)
	// GetMetadata returns the most recent store metadata record, or
	// MetadataFallback if none exists.
	GetMetadata(ctx context.Context) (Metadata, error)
}

type BrowseUsecase interface {
	BrowseAll(ctx context.Context) (*BrowseResponse, error)
	BrowseCategory(ctx context.Context, category Category) (*BrowseResponse, error)
	SearchFreelancers(ctx context.Context, keyword string) (*BrowseResponse, error)
	LatestFreelancers(ctx context.Context, limit int) (*BrowseResponse, error)
}
