package service

import (
	"context"

	"focal/internal/models"
	"focal/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	photoRepo   repository.PhotoRepository
	notifier    *NotificationService
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	photoRepo repository.PhotoRepository,
	notifier *NotificationService,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		photoRepo:   photoRepo,
		notifier:    notifier,
	}
}

// Create adds a comment to the photo.
func (s *CommentService) Create(ctx context.Context, userID, photoID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}

	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  userID,
		PhotoID: photoID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if photo.UserID != userID {
		s.notifier.Notify(ctx, photo.UserID, models.NotificationComment, comment.ID)
	}
	return comment, nil
}

// ListByPhoto returns the comments on a photo, newest first, with the
// commenting user preloaded.
func (s *CommentService) ListByPhoto(ctx context.Context, photoID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPhoto(ctx, photoID)
}

// CountByPhoto returns the number of comments on a photo.
func (s *CommentService) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	return s.commentRepo.CountByPhoto(ctx, photoID)
}
