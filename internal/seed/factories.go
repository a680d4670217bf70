// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"focal/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var hashtagPool = []string{
	"sunset", "portrait", "travel", "street", "nature", "food", "macro",
	"blackandwhite", "architecture", "wildlife", "nightsky", "film",
	"landscape", "urban", "minimal", "golden_hour",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashedPassword),
		Bio:      gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePhoto constructs and persists a sample photo for the given user.
func (f *Factory) CreatePhoto(user *models.User, overrides ...func(*models.Photo)) (*models.Photo, error) {
	filename := fmt.Sprintf("%s.jpg", gofakeit.UUID())
	photo := &models.Photo{
		UserID:   user.ID,
		Filename: filename,
		URL:      fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", gofakeit.UUID()),
		Caption:  gofakeit.Sentence(8),
		Hashtags: f.randomHashtags(),
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	photo.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(photo)
	}

	if err := f.db.Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

// CreateFollow persists a follow edge from follower to following.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	return f.db.Create(&models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}).Error
}

// CreateLike persists a like from user on photo.
func (f *Factory) CreateLike(user *models.User, photo *models.Photo) error {
	return f.db.Create(&models.Like{
		UserID:  user.ID,
		PhotoID: photo.ID,
	}).Error
}

// CreateComment constructs and persists a sample comment on the provided
// photo authored by the provided user.
func (f *Factory) CreateComment(user *models.User, photo *models.Photo, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:  user.ID,
		PhotoID: photo.ID,
		Content: gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateNotification persists a notification row for the given user.
func (f *Factory) CreateNotification(user *models.User, typ models.NotificationType, referenceID uint) error {
	return f.db.Create(&models.Notification{
		UserID:      user.ID,
		Type:        typ,
		ReferenceID: referenceID,
	}).Error
}

func (f *Factory) randomHashtags() []string {
	n := f.r.Intn(4) // 0 to 3 tags
	tags := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tags = append(tags, hashtagPool[f.r.Intn(len(hashtagPool))])
	}
	return tags
}
