package usecase

import (
	"context"

	"freelancima-backend/internal/domain"
	"freelancima-backend/pkg/apperror"
)

const (
	// DefaultLatestLimit is applied when action=latest omits the limit.
	DefaultLatestLimit = 10
	// MaxLatestLimit bounds the latest query so a client cannot request
	// the whole table through it.
	MaxLatestLimit = 100
)

type browseUsecase struct {
	freelancerRepo domain.FreelancerRepository
}

func NewBrowseUsecase(freelancerRepo domain.FreelancerRepository) domain.BrowseUsecase {
	return &browseUsecase{freelancerRepo: freelancerRepo}
}

func (u *browseUsecase) withMetadata(ctx context.Context, resp *domain.BrowseResponse) (*domain.BrowseResponse, error) {
	meta, err := u.freelancerRepo.GetMetadata(ctx)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	resp.Metadata = meta
	return resp, nil
}

func (u *browseUsecase) BrowseAll(ctx context.Context) (*domain.BrowseResponse, error) {
	categories, err := u.freelancerRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	return u.withMetadata(ctx, &domain.BrowseResponse{Categories: categories})
}

func (u *browseUsecase) BrowseCategory(ctx context.Context, category domain.Category) (*domain.BrowseResponse, error) {
	// A missing category is a parameter error and aborts before any store
	// access. An unknown category is passed through and yields an empty
	// bucket under the requested key.
	if category == "" {
		return nil, apperror.BadRequest("category parameter is required")
	}

	freelancers, err := u.freelancerRepo.FetchByCategory(ctx, category)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	return u.withMetadata(ctx, &domain.BrowseResponse{
		Categories: domain.CategorizedFreelancers{category: freelancers},
	})
}

func (u *browseUsecase) SearchFreelancers(ctx context.Context, keyword string) (*domain.BrowseResponse, error) {
	// An empty keyword matches everything; there is deliberately no guard.
	categories, err := u.freelancerRepo.Search(ctx, keyword)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	return u.withMetadata(ctx, &domain.BrowseResponse{Categories: categories})
}

func (u *browseUsecase) LatestFreelancers(ctx context.Context, limit int) (*domain.BrowseResponse, error) {
	if limit == 0 {
		limit = DefaultLatestLimit
	}
	if limit < 0 {
		return nil, apperror.BadRequest("limit must be a positive integer")
	}
	if limit > MaxLatestLimit {
		limit = MaxLatestLimit
	}

	latest, err := u.freelancerRepo.FetchLatest(ctx, limit)
	if err != nil {
		return nil, apperror.StoreUnavailable(err)
	}
	return u.withMetadata(ctx, &domain.BrowseResponse{Latest: latest})
}
