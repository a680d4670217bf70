package seed

import (
	"fmt"
	"log"

	"focal/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPhotos   int
	ShouldClean bool
}

// Seed populates the database with demo data: users, a follow mesh, photos,
// and a spread of likes and comments with matching notifications.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d photos...", opts.NumUsers, opts.NumPhotos)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	// Follow mesh: each user follows roughly a third of the others.
	follows := 0
	for _, follower := range users {
		for _, following := range users {
			if follower.ID == following.ID || f.r.Intn(3) != 0 {
				continue
			}
			if err := f.CreateFollow(follower, following); err == nil {
				if nErr := f.CreateNotification(following, models.NotificationFollow, follower.ID); nErr != nil {
					log.Printf("notification for follow failed: %v", nErr)
				}
				follows++
			}
		}
	}
	log.Printf("created %d follows", follows)

	photos := make([]*models.Photo, 0, opts.NumPhotos)
	for i := 0; i < opts.NumPhotos; i++ {
		owner := users[f.r.Intn(len(users))]
		photo, err := f.CreatePhoto(owner)
		if err != nil {
			return fmt.Errorf("failed to create photo: %w", err)
		}
		photos = append(photos, photo)
	}
	log.Printf("created %d photos", len(photos))

	likes, comments := 0, 0
	for _, photo := range photos {
		for _, user := range users {
			if user.ID == photo.UserID {
				continue
			}
			owner := &models.User{ID: photo.UserID}
			if f.r.Intn(4) == 0 {
				if err := f.CreateLike(user, photo); err == nil {
					_ = f.CreateNotification(owner, models.NotificationLike, photo.ID)
					likes++
				}
			}
			if f.r.Intn(8) == 0 {
				if comment, err := f.CreateComment(user, photo); err == nil {
					_ = f.CreateNotification(owner, models.NotificationComment, comment.ID)
					comments++
				}
			}
		}
	}
	log.Printf("created %d likes and %d comments", likes, comments)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE notifications, comments, likes, follows, photos, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
