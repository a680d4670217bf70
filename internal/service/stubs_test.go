package service

import (
	"context"
	"testing"

	"focal/internal/models"

	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn              func(context.Context, uint) (*models.User, error)
	getByEmailFn           func(context.Context, string) (*models.User, error)
	getByUsernameFn        func(context.Context, string) (*models.User, error)
	getByUsernameOrEmailFn func(context.Context, string, string) (*models.User, error)
	createFn               func(context.Context, *models.User) error
	updateFn               func(context.Context, *models.User) error
	searchByUsernameFn     func(context.Context, string) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	return s.getByUsernameOrEmailFn(ctx, username, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) SearchByUsername(ctx context.Context, pattern string) ([]models.User, error) {
	return s.searchByUsernameFn(ctx, pattern)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "someone"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameOrEmailFn: func(_ context.Context, _, _ string) (*models.User, error) {
			return nil, nil
		},
		createFn:           func(_ context.Context, _ *models.User) error { return nil },
		updateFn:           func(_ context.Context, _ *models.User) error { return nil },
		searchByUsernameFn: func(_ context.Context, _ string) ([]models.User, error) { return nil, nil },
	}
}

// photoRepoStub is a stub for repository.PhotoRepository.
type photoRepoStub struct {
	createFn        func(context.Context, *models.Photo) error
	getByIDFn       func(context.Context, uint) (*models.Photo, error)
	listByOwnerFn   func(context.Context, uint) ([]models.Photo, error)
	listByOwnersFn  func(context.Context, []uint, int, int) ([]models.Photo, error)
	countByOwnersFn func(context.Context, []uint) (int64, error)
	countByOwnerFn  func(context.Context, uint) (int64, error)
	deleteFn        func(context.Context, uint) error
	searchFn        func(context.Context, string) ([]models.Photo, error)
}

func (s *photoRepoStub) Create(ctx context.Context, photo *models.Photo) error {
	return s.createFn(ctx, photo)
}
func (s *photoRepoStub) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	return s.getByIDFn(ctx, id)
}
func (s *photoRepoStub) ListByOwner(ctx context.Context, ownerID uint) ([]models.Photo, error) {
	return s.listByOwnerFn(ctx, ownerID)
}
func (s *photoRepoStub) ListByOwners(ctx context.Context, ownerIDs []uint, limit, offset int) ([]models.Photo, error) {
	return s.listByOwnersFn(ctx, ownerIDs, limit, offset)
}
func (s *photoRepoStub) CountByOwners(ctx context.Context, ownerIDs []uint) (int64, error) {
	return s.countByOwnersFn(ctx, ownerIDs)
}
func (s *photoRepoStub) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	return s.countByOwnerFn(ctx, ownerID)
}
func (s *photoRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *photoRepoStub) Search(ctx context.Context, pattern string) ([]models.Photo, error) {
	return s.searchFn(ctx, pattern)
}

func noopPhotoRepo() *photoRepoStub {
	return &photoRepoStub{
		createFn: func(_ context.Context, p *models.Photo) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Photo, error) {
			return &models.Photo{ID: id, UserID: 1}, nil
		},
		listByOwnerFn:   func(_ context.Context, _ uint) ([]models.Photo, error) { return nil, nil },
		listByOwnersFn:  func(_ context.Context, _ []uint, _, _ int) ([]models.Photo, error) { return nil, nil },
		countByOwnersFn: func(_ context.Context, _ []uint) (int64, error) { return 0, nil },
		countByOwnerFn:  func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		searchFn:        func(_ context.Context, _ string) ([]models.Photo, error) { return nil, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	getFn              func(context.Context, uint, uint) (*models.Follow, error)
	createFn           func(context.Context, *models.Follow) error
	deleteFn           func(context.Context, uint, uint) error
	listFollowingIDsFn func(context.Context, uint) ([]uint, error)
	countFollowersFn   func(context.Context, uint) (int64, error)
	countFollowingFn   func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Get(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	return s.getFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) error {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followRepoStub) ListFollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.listFollowingIDsFn(ctx, followerID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		getFn:              func(_ context.Context, _, _ uint) (*models.Follow, error) { return nil, nil },
		createFn:           func(_ context.Context, _ *models.Follow) error { return nil },
		deleteFn:           func(_ context.Context, _, _ uint) error { return nil },
		listFollowingIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		countFollowersFn:   func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countFollowingFn:   func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	getFn          func(context.Context, uint, uint) (*models.Like, error)
	createFn       func(context.Context, *models.Like) error
	deleteFn       func(context.Context, uint, uint) error
	listByPhotoFn  func(context.Context, uint) ([]models.Like, error)
	countByPhotoFn func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Get(ctx context.Context, userID, photoID uint) (*models.Like, error) {
	return s.getFn(ctx, userID, photoID)
}
func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) Delete(ctx context.Context, userID, photoID uint) error {
	return s.deleteFn(ctx, userID, photoID)
}
func (s *likeRepoStub) ListByPhoto(ctx context.Context, photoID uint) ([]models.Like, error) {
	return s.listByPhotoFn(ctx, photoID)
}
func (s *likeRepoStub) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	return s.countByPhotoFn(ctx, photoID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		getFn: func(_ context.Context, _, _ uint) (*models.Like, error) { return nil, nil },
		createFn: func(_ context.Context, l *models.Like) error {
			l.ID = 1
			return nil
		},
		deleteFn:       func(_ context.Context, _, _ uint) error { return nil },
		listByPhotoFn:  func(_ context.Context, _ uint) ([]models.Like, error) { return nil, nil },
		countByPhotoFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn       func(context.Context, *models.Comment) error
	listByPhotoFn  func(context.Context, uint) ([]models.Comment, error)
	countByPhotoFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPhoto(ctx context.Context, photoID uint) ([]models.Comment, error) {
	return s.listByPhotoFn(ctx, photoID)
}
func (s *commentRepoStub) CountByPhoto(ctx context.Context, photoID uint) (int64, error) {
	return s.countByPhotoFn(ctx, photoID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		listByPhotoFn:  func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		countByPhotoFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// notificationRepoStub records created notifications for assertions.
type notificationRepoStub struct {
	created      []models.Notification
	createErr    error
	listByUserFn func(context.Context, uint) ([]models.Notification, error)
	markReadFn   func(context.Context, uint, uint) error
}

func (s *notificationRepoStub) Create(_ context.Context, n *models.Notification) error {
	if s.createErr != nil {
		return s.createErr
	}
	n.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *n)
	return nil
}
func (s *notificationRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return s.created, nil
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, userID, id uint) error {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, userID, id)
	}
	return nil
}
func (s *notificationRepoStub) MarkAllRead(_ context.Context, _ uint) error { return nil }

// newTestNotifier returns a NotificationService backed by a recording stub.
func newTestNotifier() (*NotificationService, *notificationRepoStub) {
	repo := &notificationRepoStub{}
	return NewNotificationService(repo), repo
}

// blobStoreStub records uploads and deletes for assertions.
type blobStoreStub struct {
	uploads   []string
	deletes   []string
	uploadErr error
	deleteErr error
	baseURL   string
}

func (s *blobStoreStub) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads = append(s.uploads, key)
	base := s.baseURL
	if base == "" {
		base = "https://blobs.test/bucket"
	}
	return base + "/" + key, nil
}
func (s *blobStoreStub) Delete(_ context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, key)
	return nil
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeConflict)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeNotFound)
}
