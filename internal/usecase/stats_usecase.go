package usecase

import (
	"context"
	"sort"
	"time"

	"freelancima-backend/internal/domain"
)

type statsUsecase struct {
	statsRepo domain.StatsRepository
}

func NewStatsUsecase(statsRepo domain.StatsRepository) domain.StatsUsecase {
	return &statsUsecase{statsRepo: statsRepo}
}

// normalizeWindow fills in a trailing-year default for unset bounds.
func normalizeWindow(w domain.StatsWindow) domain.StatsWindow {
	if w.End.IsZero() {
		w.End = time.Now()
	}
	if w.Start.IsZero() {
		w.Start = w.End.AddDate(-1, 0, 0)
	}
	return w
}

func (u *statsUsecase) Basic(ctx context.Context, w domain.StatsWindow) (*domain.BasicStats, error) {
	w = normalizeWindow(w)

	stats, err := u.statsRepo.BasicAggregates(ctx, w)
	if err != nil {
		return nil, err
	}

	// Total count is deliberately unscoped by the window.
	total, err := u.statsRepo.TotalCount(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalFreelancers = total
	return stats, nil
}

// categoryDisplayOrder fixes the dashboard ordering of category rows.
var categoryDisplayOrder = map[domain.Category]int{
	domain.CategoryDataScienceML:     1,
	domain.CategoryMobileDevelopment: 2,
	domain.CategoryCloudDevOps:       3,
	domain.CategoryCybersecurity:     4,
}

func (u *statsUsecase) ByCategory(ctx context.Context, w domain.StatsWindow) ([]domain.CategoryStats, error) {
	w = normalizeWindow(w)

	counts, err := u.statsRepo.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	windowed, err := u.statsRepo.CategoryAggregates(ctx, w)
	if err != nil {
		return nil, err
	}

	// Counts are always unscoped totals; averages come from the window
	// when present and fall back to all-time otherwise.
	result := make([]domain.CategoryStats, 0, len(counts))
	seen := map[domain.Category]bool{}
	for _, s := range windowed {
		s.FreelancerCount = counts[s.Category]
		seen[s.Category] = true
		result = append(result, s)
	}
	for cat, count := range counts {
		if seen[cat] {
			continue
		}
		allTime, err := u.statsRepo.CategoryAggregatesAllTime(ctx, cat)
		if err != nil {
			return nil, err
		}
		allTime.FreelancerCount = count
		result = append(result, *allTime)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return displayRank(result[i].Category) < displayRank(result[j].Category)
	})
	return result, nil
}

func displayRank(c domain.Category) int {
	if rank, ok := categoryDisplayOrder[c]; ok {
		return rank
	}
	return 5
}

func (u *statsUsecase) ByPriceRange(ctx context.Context, w domain.StatsWindow) ([]domain.PriceRangeStats, error) {
	return u.statsRepo.PriceRanges(ctx, normalizeWindow(w))
}

func (u *statsUsecase) ByRating(ctx context.Context, w domain.StatsWindow) ([]domain.RatingRangeStats, error) {
	return u.statsRepo.RatingRanges(ctx, normalizeWindow(w))
}

func (u *statsUsecase) Monthly(ctx context.Context, w domain.StatsWindow) ([]domain.MonthlyStats, error) {
	return u.statsRepo.MonthlyTrends(ctx, normalizeWindow(w))
}
