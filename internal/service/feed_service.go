package service

import (
	"context"

	"focal/internal/models"
	"focal/internal/observability"
	"focal/internal/repository"
)

const (
	DefaultFeedLimit = 10
	MaxFeedLimit     = 100
)

// FeedMetadata is the pagination envelope returned with every feed page.
type FeedMetadata struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// FeedPage is one page of the reverse-chronological timeline.
type FeedPage struct {
	Data     []models.Photo `json:"data"`
	Metadata FeedMetadata   `json:"metadata"`
}

type FeedService struct {
	photoRepo  repository.PhotoRepository
	followRepo repository.FollowRepository
}

func NewFeedService(photoRepo repository.PhotoRepository, followRepo repository.FollowRepository) *FeedService {
	return &FeedService{photoRepo: photoRepo, followRepo: followRepo}
}

// GetFeed returns a page of photos authored by the user or anyone they
// follow, newest first. The graph lookup and the page query are sequential
// and not transactional; a concurrent follow change may land on either side.
func (s *FeedService) GetFeed(ctx context.Context, userID uint, page, limit int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}
	offset := (page - 1) * limit

	observability.FeedRequestsTotal.Inc()
	observability.FeedPageSize.Observe(float64(limit))

	ownerIDs, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Authors always see their own posts, even with an empty follow list.
	ownerIDs = append(ownerIDs, userID)

	total, err := s.photoRepo.CountByOwners(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.ListByOwners(ctx, ownerIDs, limit, offset)
	if err != nil {
		return nil, err
	}

	// Zero matching rows yields totalPages = 0, not 1.
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &FeedPage{
		Data: photos,
		Metadata: FeedMetadata{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalItems:      total,
			ItemsPerPage:    limit,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}, nil
}
