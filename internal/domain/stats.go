package domain

import (
	"context"
	"time"
)

// StatsWindow bounds the created_at range for windowed aggregates.
type StatsWindow struct {
	Start time.Time
	End   time.Time
}

// BasicStats combines the unscoped total with windowed aggregates over
// price, rating and reviews.
type BasicStats struct {
	TotalFreelancers int64   `json:"total_freelancers"`
	AverageRating    float64 `json:"average_rating"`
	AveragePrice     float64 `json:"average_price"`
	TotalReviews     int64   `json:"total_reviews"`
	MinPrice         int     `json:"min_price"`
	MaxPrice         int     `json:"max_price"`
}

type CategoryStats struct {
	Category        Category `json:"category"`
	FreelancerCount int64    `json:"freelancer_count"`
	AveragePrice    float64  `json:"average_price"`
	AverageRating   float64  `json:"average_rating"`
	TotalReviews    int64    `json:"total_reviews"`
}

type PriceRangeStats struct {
	PriceRange      string  `json:"price_range"`
	FreelancerCount int64   `json:"freelancer_count"`
	AverageRating   float64 `json:"average_rating"`
}

type RatingRangeStats struct {
	RatingRange     string  `json:"rating_range"`
	FreelancerCount int64   `json:"freelancer_count"`
	AveragePrice    float64 `json:"average_price"`
}

type MonthlyStats struct {
	Month          string  `json:"month"` // YYYY-MM
	NewFreelancers int64   `json:"new_freelancers"`
	AveragePrice   float64 `json:"average_price"`
	AverageRating  float64 `json:"average_rating"`
}

type StatsRepository interface {
	TotalCount(ctx context.Context) (int64, error)
	BasicAggregates(ctx context.Context, w StatsWindow) (*BasicStats, error)
	CategoryCounts(ctx context.Context) (map[Category]int64, error)
	CategoryAggregates(ctx context.Context, w StatsWindow) ([]CategoryStats, error)
	CategoryAggregatesAllTime(ctx context.Context, category Category) (*CategoryStats, error)
	PriceRanges(ctx context.Context, w StatsWindow) ([]PriceRangeStats, error)
	RatingRanges(ctx context.Context, w StatsWindow) ([]RatingRangeStats, error)
	MonthlyTrends(ctx context.Context, w StatsWindow) ([]MonthlyStats, error)
}

type StatsUsecase interface {
	Basic(ctx context.Context, w StatsWindow) (*BasicStats, error)
	ByCategory(ctx context.Context, w StatsWindow) ([]CategoryStats, error)
	ByPriceRange(ctx context.Context, w StatsWindow) ([]PriceRangeStats, error)
	ByRating(ctx context.Context, w StatsWindow) ([]RatingRangeStats, error)
	Monthly(ctx context.Context, w StatsWindow) ([]MonthlyStats, error)
}
