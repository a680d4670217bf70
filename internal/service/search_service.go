package service

import (
	"context"
	"strings"

	"focal/internal/models"
	"focal/internal/repository"
)

// SearchResult holds independent username and hashtag match sets. Slices are
// always non-nil so absent criteria serialize as empty arrays.
type SearchResult struct {
	Users  []models.User  `json:"users"`
	Photos []models.Photo `json:"photos"`
}

type SearchService struct {
	userRepo  repository.UserRepository
	photoRepo repository.PhotoRepository
}

func NewSearchService(userRepo repository.UserRepository, photoRepo repository.PhotoRepository) *SearchService {
	return &SearchService{userRepo: userRepo, photoRepo: photoRepo}
}

// Search pattern-matches usernames and photo captions/hashtags. Either
// criterion may be empty; both empty yields two empty result sets.
func (s *SearchService) Search(ctx context.Context, username, hashtag string) (*SearchResult, error) {
	result := &SearchResult{
		Users:  []models.User{},
		Photos: []models.Photo{},
	}

	if username != "" {
		users, err := s.userRepo.SearchByUsername(ctx, likePattern(username))
		if err != nil {
			return nil, err
		}
		result.Users = users
	}

	if hashtag != "" {
		photos, err := s.photoRepo.Search(ctx, likePattern(hashtag))
		if err != nil {
			return nil, err
		}
		result.Photos = photos
	}

	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern escapes LIKE wildcards in the query so user input cannot
// introduce unintended wildcard matches, then wraps it for substring search.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
