package repository

import (
	"context"
	"errors"

	"focal/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow edges.
type FollowRepository interface {
	Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, followerID, followingID uint) error
	ListFollowingIDs(ctx context.Context, followerID uint) ([]uint, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		// The composite primary key catches the losing side of a
		// concurrent check-then-insert race.
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already following this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Follow", followingID)
	}
	return nil
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
