package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"focal/internal/config"
	"focal/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// blobStoreStub records blob operations so handler tests run without S3.
type blobStoreStub struct {
	uploads []string
	deletes []string
}

func (s *blobStoreStub) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	s.uploads = append(s.uploads, key)
	return "https://blobs.test/bucket/" + key, nil
}

func (s *blobStoreStub) Delete(_ context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Follow{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
	))
	return db
}

// newTestServer builds a Server over in-memory sqlite with a stub blob store
// and a fiber app with routes registered.
func newTestServer(t *testing.T) (*Server, *fiber.App, *blobStoreStub) {
	t.Helper()

	cfg := &config.Config{JWTSecret: "test-secret", Env: "test"}
	blobs := &blobStoreStub{}
	srv := NewServerWithDeps(cfg, setupTestDB(t), blobs)

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	srv.SetupRoutes(app)
	return srv, app, blobs
}

// registerTestUser persists a user directly and returns it with a valid token.
func registerTestUser(t *testing.T, s *Server, username string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, s.db.Create(user).Error)

	token, err := s.generateToken(user)
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	if len(raw) > 0 && json.Unmarshal(raw, &body) != nil {
		body = nil
	}
	return resp, body
}
