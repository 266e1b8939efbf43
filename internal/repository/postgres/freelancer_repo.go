package postgres

import (
	"context"
	"errors"

	"freelancima-backend/internal/domain"
	"freelancima-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const freelancerColumns = `id, username, profile_link, profile_image, rating, reviews, short_description, price, category, created_at`

type freelancerRepo struct {
	db *pgxpool.Pool
}

func NewFreelancerRepository(db *pgxpool.Pool) domain.FreelancerRepository {
	return &freelancerRepo{db: db}
}

func scanFreelancer(rows pgx.Rows) (domain.Freelancer, error) {
	var f domain.Freelancer
	err := rows.Scan(
		&f.ID, &f.Username, &f.ProfileLink, &f.ProfileImage, &f.Rating,
		&f.Reviews, &f.ShortDescription, &f.Price, &f.Category, &f.CreatedAt,
	)
	return f, err
}

// emptyBuckets pre-seeds the five fixed category keys so grouped responses
// always carry every bucket, even when empty.
func emptyBuckets() domain.CategorizedFreelancers {
	buckets := make(domain.CategorizedFreelancers, 5)
	for _, c := range domain.Categories() {
		buckets[c] = []domain.Freelancer{}
	}
	return buckets
}

// groupByCategory buckets rows into the fixed five categories. Rows with
// any other category are dropped from the result; the drop is logged so
// real records cannot vanish unnoticed.
func groupByCategory(rows pgx.Rows) (domain.CategorizedFreelancers, error) {
	buckets := emptyBuckets()
	dropped := map[domain.Category]int{}

	for rows.Next() {
		f, err := scanFreelancer(rows)
		if err != nil {
			return nil, err
		}
		if !domain.IsKnownCategory(f.Category) {
			dropped[f.Category]++
			continue
		}
		buckets[f.Category] = append(buckets[f.Category], f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for cat, n := range dropped {
		logger.Log.Warn("dropping freelancers with unknown category from grouped result",
			"category", string(cat), "count", n)
	}
	return buckets, nil
}

func (r *freelancerRepo) FetchAll(ctx context.Context) (domain.CategorizedFreelancers, error) {
	query := `SELECT ` + freelancerColumns + ` FROM freelancers ORDER BY category ASC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return groupByCategory(rows)
}

func (r *freelancerRepo) FetchByCategory(ctx context.Context, category domain.Category) ([]domain.Freelancer, error) {
	// The category is passed through unvalidated: an unknown value simply
	// matches no rows.
	query := `SELECT ` + freelancerColumns + ` FROM freelancers WHERE category = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	freelancers := []domain.Freelancer{}
	for rows.Next() {
		f, err := scanFreelancer(rows)
		if err != nil {
			return nil, err
		}
		freelancers = append(freelancers, f)
	}
	return freelancers, rows.Err()
}

func (r *freelancerRepo) Search(ctx context.Context, keyword string) (domain.CategorizedFreelancers, error) {
	// ILIKE over username and description; an empty keyword becomes '%%'
	// and matches everything.
	query := `SELECT ` + freelancerColumns + ` FROM freelancers
              WHERE username ILIKE $1 OR short_description ILIKE $1
              ORDER BY category ASC, id DESC`

	rows, err := r.db.Query(ctx, query, "%"+keyword+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return groupByCategory(rows)
}

func (r *freelancerRepo) FetchLatest(ctx context.Context, limit int) ([]domain.Freelancer, error) {
	query := `SELECT ` + freelancerColumns + ` FROM freelancers ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	freelancers := []domain.Freelancer{}
	for rows.Next() {
		f, err := scanFreelancer(rows)
		if err != nil {
			return nil, err
		}
		freelancers = append(freelancers, f)
	}
	return freelancers, rows.Err()
}

func (r *freelancerRepo) GetMetadata(ctx context.Context) (domain.Metadata, error) {
	query := `SELECT last_updated, updated_by FROM metadata ORDER BY id DESC LIMIT 1`

	var m domain.Metadata
	err := r.db.QueryRow(ctx, query).Scan(&m.LastUpdated, &m.UpdatedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MetadataFallback, nil
	}
	if err != nil {
		return domain.Metadata{}, err
	}
	return m, nil
}
