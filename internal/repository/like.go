package repository

import (
	"context"
	"errors"

	"focal/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	Get(ctx context.Context, userID, photoID uint) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, userID, photoID uint) error
	ListByPhoto(ctx context.Context, photoID uint) ([]models.Like, error)
	CountByPhoto(ctx context.Context, photoID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Get(ctx context.Context, userID, photoID uint) (*models.Like, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND photo_id = ?", userID, photoID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &like, nil
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User has already liked this photo")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, photoID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND photo_id = ?", userID, photoID).
		Delete(&models.Like{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Like", photoID)
	}
	return nil
}

func (r *likeRepository) ListByPhoto(ctx context.Context, photoID uint) ([]models.Like, error) {
	likes := []models.Like{}
	err := r.db.WithContext(ctx).
		Where("photo_id = ?", photoID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *likeRepository) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("photo_id = ?", photoID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
