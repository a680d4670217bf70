package repository

import (
	"context"
	"errors"

	"focal/internal/models"

	"gorm.io/gorm"
)

// PhotoRepository defines persistence operations for photos.
type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id uint) (*models.Photo, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Photo, error)
	ListByOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.Photo, error)
	CountByOwners(ctx context.Context, ownerIDs []uint) (int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, pattern string) ([]models.Photo, error)
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository returns a new PhotoRepository implementation.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *photoRepository) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&photo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Photo", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &photo, nil
}

func (r *photoRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Photo, error) {
	photos := []models.Photo{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}

// ListByOwners is the feed page query: photos by any of the given owners,
// newest first, owner preloaded for display.
func (r *photoRepository) ListByOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.Photo, error) {
	photos := []models.Photo{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", ownerIDs).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}

func (r *photoRepository) CountByOwners(ctx context.Context, ownerIDs []uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Photo{}).
		Where("user_id IN ?", ownerIDs).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *photoRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Photo{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *photoRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Photo{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Search pattern-matches captions and the serialized hashtag list.
func (r *photoRepository) Search(ctx context.Context, pattern string) ([]models.Photo, error) {
	photos := []models.Photo{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("caption LIKE ? ESCAPE '\\' OR hashtags LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("created_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return photos, nil
}
