package service

import (
	"context"

	"focal/internal/models"
	"focal/internal/repository"
)

type LikeService struct {
	likeRepo  repository.LikeRepository
	photoRepo repository.PhotoRepository
	notifier  *NotificationService
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	photoRepo repository.PhotoRepository,
	notifier *NotificationService,
) *LikeService {
	return &LikeService{
		likeRepo:  likeRepo,
		photoRepo: photoRepo,
		notifier:  notifier,
	}
}

// LikePhoto records a like for the photo. Liking twice is a conflict.
func (s *LikeService) LikePhoto(ctx context.Context, userID, photoID uint) (*models.Like, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.Get(ctx, userID, photoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User has already liked this photo")
	}

	like := &models.Like{
		UserID:  userID,
		PhotoID: photoID,
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}

	if photo.UserID != userID {
		s.notifier.Notify(ctx, photo.UserID, models.NotificationLike, like.ID)
	}
	return like, nil
}

// UnlikePhoto removes the caller's like from the photo.
func (s *LikeService) UnlikePhoto(ctx context.Context, userID, photoID uint) error {
	existing, err := s.likeRepo.Get(ctx, userID, photoID)
	if err != nil {
		return err
	}
	if existing == nil {
		return models.NewNotFoundError("Like", photoID)
	}
	return s.likeRepo.Delete(ctx, userID, photoID)
}

// ListByPhoto returns the likes on a photo, newest first.
func (s *LikeService) ListByPhoto(ctx context.Context, photoID uint) ([]models.Like, error) {
	return s.likeRepo.ListByPhoto(ctx, photoID)
}

// CountByPhoto returns the number of likes on a photo.
func (s *LikeService) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	return s.likeRepo.CountByPhoto(ctx, photoID)
}
