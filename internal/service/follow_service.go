package service

import (
	"context"

	"focal/internal/models"
	"focal/internal/repository"
)

type FollowService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	notifier   *NotificationService
}

func NewFollowService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	notifier *NotificationService,
) *FollowService {
	return &FollowService{
		userRepo:   userRepo,
		followRepo: followRepo,
		notifier:   notifier,
	}
}

// Follow creates a follow edge from followerID to the user with the given
// username. Self-follows and duplicate edges are conflicts.
func (s *FollowService) Follow(ctx context.Context, followerID uint, username string) error {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if target == nil {
		return models.NewNotFoundError("User", username)
	}

	if target.ID == followerID {
		return models.NewConflictError("Users cannot follow themselves")
	}

	existing, err := s.followRepo.Get(ctx, followerID, target.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewConflictError("Already following this user")
	}

	follow := &models.Follow{
		FollowerID:  followerID,
		FollowingID: target.ID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return err
	}

	s.notifier.Notify(ctx, target.ID, models.NotificationFollow, followerID)
	return nil
}

// Unfollow removes the follow edge from followerID to the named user.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, username string) error {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if target == nil {
		return models.NewNotFoundError("User", username)
	}

	existing, err := s.followRepo.Get(ctx, followerID, target.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return models.NewNotFoundError("Follow", username)
	}

	return s.followRepo.Delete(ctx, followerID, target.ID)
}

func (s *FollowService) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.followRepo.CountFollowers(ctx, userID)
}

func (s *FollowService) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}
