package repository

import (
	"context"
	"testing"
	"time"

	"focal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	photo := createTestPhoto(t, db, alice, "pic", time.Time{})

	got, err := repo.Get(ctx, alice.ID, photo.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Create(ctx, &models.Like{UserID: alice.ID, PhotoID: photo.ID}))

	got, err = repo.Get(ctx, alice.ID, photo.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	count, err := repo.CountByPhoto(ctx, photo.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, alice.ID, photo.ID))

	count, err = repo.CountByPhoto(ctx, photo.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLikeRepository_DuplicateIsConflict(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	photo := createTestPhoto(t, db, alice, "pic", time.Time{})

	require.NoError(t, repo.Create(ctx, &models.Like{UserID: alice.ID, PhotoID: photo.ID}))

	err := repo.Create(ctx, &models.Like{UserID: alice.ID, PhotoID: photo.ID})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestLikeRepository_DeleteAbsentIsNotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLikeRepository(db)

	err := repo.Delete(context.Background(), 1, 2)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestLikeRepository_ListByPhoto(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	photo := createTestPhoto(t, db, alice, "pic", time.Time{})
	other := createTestPhoto(t, db, alice, "other", time.Time{})

	require.NoError(t, repo.Create(ctx, &models.Like{UserID: alice.ID, PhotoID: photo.ID}))
	require.NoError(t, repo.Create(ctx, &models.Like{UserID: bob.ID, PhotoID: photo.ID}))
	require.NoError(t, repo.Create(ctx, &models.Like{UserID: bob.ID, PhotoID: other.ID}))

	likes, err := repo.ListByPhoto(ctx, photo.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}
