// Package service implements the business logic between handlers and repositories.
package service

import (
	"context"

	"focal/internal/models"
	"focal/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	photoRepo  repository.PhotoRepository
}

type UpdateProfileInput struct {
	UserID   uint
	Username string
	Bio      string
}

func NewUserService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	photoRepo repository.PhotoRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		photoRepo:  photoRepo,
	}
}

// GetProfile returns the public profile for a username, including follower,
// following, and photo counts.
func (s *UserService) GetProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	followersCount, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	photosCount, err := s.photoRepo.CountByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		FollowersCount: followersCount,
		FollowingCount: followingCount,
		PhotosCount:    photosCount,
		CreatedAt:      user.CreatedAt,
	}, nil
}

// UpdateProfile updates the caller's username and/or bio. Empty fields are
// left unchanged. A username already held by another user is a conflict.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.Username != "" && in.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, models.NewConflictError("Username already taken")
		}
		user.Username = in.Username
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
