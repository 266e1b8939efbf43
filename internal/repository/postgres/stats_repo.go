package postgres

import (
	"context"
	"errors"

	"freelancima-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type statsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) domain.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) TotalCount(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM freelancers`).Scan(&total)
	return total, err
}

func (r *statsRepo) BasicAggregates(ctx context.Context, w domain.StatsWindow) (*domain.BasicStats, error) {
	query := `
        SELECT
            COALESCE(ROUND(AVG(rating)::numeric, 2), 0),
            COALESCE(ROUND(AVG(price)::numeric, 2), 0),
            COALESCE(SUM(reviews), 0),
            COALESCE(MIN(price), 0),
            COALESCE(MAX(price), 0)
        FROM freelancers
        WHERE created_at BETWEEN $1 AND $2`

	var stats domain.BasicStats
	err := r.db.QueryRow(ctx, query, w.Start, w.End).Scan(
		&stats.AverageRating, &stats.AveragePrice, &stats.TotalReviews,
		&stats.MinPrice, &stats.MaxPrice,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepo) CategoryCounts(ctx context.Context) (map[domain.Category]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT category, COUNT(*) FROM freelancers GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.Category]int64{}
	for rows.Next() {
		var cat domain.Category
		var n int64
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		counts[cat] = n
	}
	return counts, rows.Err()
}

func (r *statsRepo) CategoryAggregates(ctx context.Context, w domain.StatsWindow) ([]domain.CategoryStats, error) {
	query := `
        SELECT
            category,
            ROUND(AVG(price)::numeric, 2),
            ROUND(AVG(rating)::numeric, 2),
            SUM(reviews)
        FROM freelancers
        WHERE created_at BETWEEN $1 AND $2
        GROUP BY category`

	rows, err := r.db.Query(ctx, query, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.CategoryStats
	for rows.Next() {
		var s domain.CategoryStats
		if err := rows.Scan(&s.Category, &s.AveragePrice, &s.AverageRating, &s.TotalReviews); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CategoryAggregatesAllTime backfills averages for categories that have no
// rows inside the stats window.
func (r *statsRepo) CategoryAggregatesAllTime(ctx context.Context, category domain.Category) (*domain.CategoryStats, error) {
	query := `
        SELECT
            COALESCE(ROUND(AVG(price)::numeric, 2), 0),
            COALESCE(ROUND(AVG(rating)::numeric, 2), 0),
            COALESCE(SUM(reviews), 0)
        FROM freelancers
        WHERE category = $1`

	s := domain.CategoryStats{Category: category}
	err := r.db.QueryRow(ctx, query, category).Scan(&s.AveragePrice, &s.AverageRating, &s.TotalReviews)
	if errors.Is(err, pgx.ErrNoRows) {
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statsRepo) PriceRanges(ctx context.Context, w domain.StatsWindow) ([]domain.PriceRangeStats, error) {
	query := `
        SELECT
            CASE
                WHEN price < 20 THEN 'Below $20'
                WHEN price >= 20 AND price < 30 THEN '$20-$29'
                WHEN price >= 30 AND price < 40 THEN '$30-$39'
                WHEN price >= 40 AND price < 50 THEN '$40-$49'
                ELSE '$50 and above'
            END AS price_range,
            COUNT(*),
            ROUND(AVG(rating)::numeric, 2)
        FROM freelancers
        WHERE created_at BETWEEN $1 AND $2
        GROUP BY price_range
        ORDER BY
            CASE
                WHEN price_range = 'Below $20' THEN 1
                WHEN price_range = '$20-$29' THEN 2
                WHEN price_range = '$30-$39' THEN 3
                WHEN price_range = '$40-$49' THEN 4
                ELSE 5
            END`

	rows, err := r.db.Query(ctx, query, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.PriceRangeStats
	for rows.Next() {
		var s domain.PriceRangeStats
		if err := rows.Scan(&s.PriceRange, &s.FreelancerCount, &s.AverageRating); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *statsRepo) RatingRanges(ctx context.Context, w domain.StatsWindow) ([]domain.RatingRangeStats, error) {
	query := `
        SELECT
            CASE
                WHEN rating < 4.0 THEN 'Below 4.0'
                WHEN rating >= 4.0 AND rating < 4.5 THEN '4.0-4.4'
                WHEN rating >= 4.5 AND rating < 4.8 THEN '4.5-4.7'
                WHEN rating >= 4.8 AND rating < 5.0 THEN '4.8-4.9'
                ELSE '5.0'
            END AS rating_range,
            COUNT(*),
            ROUND(AVG(price)::numeric, 2)
        FROM freelancers
        WHERE created_at BETWEEN $1 AND $2
        GROUP BY rating_range
        ORDER BY
            CASE
                WHEN rating_range = 'Below 4.0' THEN 1
                WHEN rating_range = '4.0-4.4' THEN 2
                WHEN rating_range = '4.5-4.7' THEN 3
                WHEN rating_range = '4.8-4.9' THEN 4
                ELSE 5
            END`

	rows, err := r.db.Query(ctx, query, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.RatingRangeStats
	for rows.Next() {
		var s domain.RatingRangeStats
		if err := rows.Scan(&s.RatingRange, &s.FreelancerCount, &s.AveragePrice); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *statsRepo) MonthlyTrends(ctx context.Context, w domain.StatsWindow) ([]domain.MonthlyStats, error) {
	query := `
        SELECT
            TO_CHAR(created_at, 'YYYY-MM') AS month,
            COUNT(*),
            ROUND(AVG(price)::numeric, 2),
            ROUND(AVG(rating)::numeric, 2)
        FROM freelancers
        WHERE created_at BETWEEN $1 AND $2
        GROUP BY TO_CHAR(created_at, 'YYYY-MM')
        ORDER BY month`

	rows, err := r.db.Query(ctx, query, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.MonthlyStats
	for rows.Next() {
		var s domain.MonthlyStats
		if err := rows.Scan(&s.Month, &s.NewFreelancers, &s.AveragePrice, &s.AverageRating); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
