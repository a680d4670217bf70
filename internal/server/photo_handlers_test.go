package server

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"focal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// multipartUpload builds a photo upload request with optional form fields.
func multipartUpload(t *testing.T, token, filename, contentType string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestUploadPhoto(t *testing.T) {
	t.Parallel()

	t.Run("stores blob and returns photo", func(t *testing.T) {
		t.Parallel()

		srv, app, blobs := newTestServer(t)
		_, token := registerTestUser(t, srv, "alice")

		req := multipartUpload(t, token, "cat.png", "image/png", pngBytes(t, 32, 32), map[string]string{
			"caption":  "my cat",
			"hashtags": `["cats","pets"]`,
		})
		resp, body := doRequest(t, app, req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "my cat", body["caption"])
		assert.Len(t, blobs.uploads, 1)
		assert.Contains(t, body["url"], blobs.uploads[0])

		tags, ok := body["hashtags"].([]any)
		require.True(t, ok)
		assert.Len(t, tags, 2)
	})

	t.Run("missing file part", func(t *testing.T) {
		t.Parallel()

		srv, app, _ := newTestServer(t)
		_, token := registerTestUser(t, srv, "alice")

		req := httptest.NewRequest(http.MethodPost, "/api/photos/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("oversized file is rejected before storage", func(t *testing.T) {
		t.Parallel()

		srv, app, blobs := newTestServer(t)
		_, token := registerTestUser(t, srv, "alice")

		req := multipartUpload(t, token, "big.jpg", "image/jpeg", make([]byte, 6*1024*1024), nil)
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, blobs.uploads)
	})

	t.Run("disallowed content type", func(t *testing.T) {
		t.Parallel()

		srv, app, _ := newTestServer(t)
		_, token := registerTestUser(t, srv, "alice")

		req := multipartUpload(t, token, "doc.pdf", "application/pdf", []byte("%PDF"), nil)
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid hashtags json", func(t *testing.T) {
		t.Parallel()

		srv, app, _ := newTestServer(t)
		_, token := registerTestUser(t, srv, "alice")

		req := multipartUpload(t, token, "cat.png", "image/png", pngBytes(t, 8, 8), map[string]string{
			"hashtags": "cats,pets",
		})
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetAndListPhotos(t *testing.T) {
	t.Parallel()

	srv, app, _ := newTestServer(t)
	alice, aliceToken := registerTestUser(t, srv, "alice")
	_, bobToken := registerTestUser(t, srv, "bob")

	photo := models.Photo{UserID: alice.ID, Filename: "a.png", URL: "https://blobs.test/bucket/1-a.png", Hashtags: []string{}}
	require.NoError(t, srv.db.Create(&photo).Error)

	t.Run("list returns only own photos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/photos/", nil)
		req.Header.Set("Authorization", "Bearer "+bobToken)
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		req = httptest.NewRequest(http.MethodGet, "/api/photos/", nil)
		req.Header.Set("Authorization", "Bearer "+aliceToken)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("get by id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/photos/1", nil)
		req.Header.Set("Authorization", "Bearer "+bobToken)
		resp, body := doRequest(t, app, req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "a.png", body["filename"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/photos/999", nil)
		req.Header.Set("Authorization", "Bearer "+bobToken)
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/photos/abc", nil)
		req.Header.Set("Authorization", "Bearer "+bobToken)
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeletePhoto(t *testing.T) {
	t.Parallel()

	srv, app, blobs := newTestServer(t)
	alice, aliceToken := registerTestUser(t, srv, "alice")
	_, bobToken := registerTestUser(t, srv, "bob")

	photo := models.Photo{UserID: alice.ID, Filename: "a.png", URL: "https://blobs.test/bucket/1-a.png", Hashtags: []string{}}
	require.NoError(t, srv.db.Create(&photo).Error)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/photos/1", nil)
		req.Header.Set("Authorization", "Bearer "+bobToken)
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, blobs.deletes)
	})

	t.Run("owner deletes photo and blob", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/photos/1", nil)
		req.Header.Set("Authorization", "Bearer "+aliceToken)
		resp, _ := doRequest(t, app, req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"1-a.png"}, blobs.deletes)

		var count int64
		require.NoError(t, srv.db.Model(&models.Photo{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
