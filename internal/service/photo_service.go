package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"strings"
	"time"

	"focal/internal/middleware"
	"focal/internal/models"
	"focal/internal/observability"
	"focal/internal/repository"
	"focal/internal/storage"

	"go.opentelemetry.io/otel/attribute"
	xdraw "golang.org/x/image/draw"
)

const (
	MaxUploadSizeBytes = 5 * 1024 * 1024
	MaxImageDimension  = 1200
	JPEGQuality        = 82
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type UploadPhotoInput struct {
	OwnerID     uint
	Filename    string
	ContentType string
	Caption     string
	Hashtags    []string
	Content     []byte
}

type PhotoService struct {
	photoRepo repository.PhotoRepository
	blobs     storage.BlobStore
	now       func() time.Time
}

func NewPhotoService(photoRepo repository.PhotoRepository, blobs storage.BlobStore) *PhotoService {
	return &PhotoService{
		photoRepo: photoRepo,
		blobs:     blobs,
		now:       time.Now,
	}
}

// Create validates and resizes the upload, stores the binary in the blob
// store, and persists the photo row. Validation failures happen before any
// blob store or database call.
func (s *PhotoService) Create(ctx context.Context, in UploadPhotoInput) (*models.Photo, error) {
	span, ctx := observability.NewSpan(ctx, "photo.create")
	defer span.End()
	span.AddAttributes(
		attribute.Int("photo.size_bytes", len(in.Content)),
		attribute.String("photo.content_type", in.ContentType),
	)

	if err := s.validateFile(in); err != nil {
		observability.PhotoUploadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	observability.PhotoUploadBytes.Observe(float64(len(in.Content)))

	processed, err := resizeToFit(in.Content, in.ContentType, MaxImageDimension)
	if err != nil {
		observability.PhotoUploadsTotal.WithLabelValues("rejected").Inc()
		return nil, models.NewValidationError("Unsupported or corrupted image data")
	}

	key := fmt.Sprintf("%d-%s", s.now().UnixMilli(), in.Filename)
	url, err := s.blobs.Upload(ctx, key, in.ContentType, processed)
	if err != nil {
		span.SetError(err)
		observability.BlobStoreErrors.WithLabelValues("upload").Inc()
		observability.PhotoUploadsTotal.WithLabelValues("error").Inc()
		return nil, models.NewInternalError(err)
	}

	photo := &models.Photo{
		UserID:   in.OwnerID,
		Filename: in.Filename,
		URL:      url,
		Caption:  in.Caption,
		Hashtags: in.Hashtags,
	}
	if photo.Hashtags == nil {
		photo.Hashtags = []string{}
	}

	if err := s.photoRepo.Create(ctx, photo); err != nil {
		// Compensate for the orphaned blob; losing the race here only
		// leaks an object, so the delete is best-effort.
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			observability.BlobStoreErrors.WithLabelValues("delete").Inc()
			middleware.Logger.WarnContext(ctx, "orphaned blob after failed photo insert",
				slog.String("key", key),
				slog.String("error", delErr.Error()),
			)
		}
		observability.PhotoUploadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	observability.PhotoUploadsTotal.WithLabelValues("created").Inc()
	return photo, nil
}

// FindAllByUser returns the owner's photos, newest first.
func (s *PhotoService) FindAllByUser(ctx context.Context, ownerID uint) ([]models.Photo, error) {
	return s.photoRepo.ListByOwner(ctx, ownerID)
}

// FindOne returns a photo with its owner preloaded.
func (s *PhotoService) FindOne(ctx context.Context, id uint) (*models.Photo, error) {
	return s.photoRepo.GetByID(ctx, id)
}

// Remove deletes a photo owned by the requester. The blob delete is
// best-effort; the row delete is authoritative.
func (s *PhotoService) Remove(ctx context.Context, requesterID, id uint) error {
	span, ctx := observability.NewSpan(ctx, "photo.remove")
	defer span.End()

	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if photo.UserID != requesterID {
		return models.NewValidationError("You can only delete your own photos")
	}

	if key := blobKeyFromURL(photo.URL); key != "" {
		if err := s.blobs.Delete(ctx, key); err != nil {
			observability.BlobStoreErrors.WithLabelValues("delete").Inc()
			middleware.Logger.WarnContext(ctx, "blob delete failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	return s.photoRepo.Delete(ctx, id)
}

func (s *PhotoService) validateFile(in UploadPhotoInput) error {
	if len(in.Content) == 0 {
		return models.NewValidationError("No file uploaded")
	}
	if len(in.Content) > MaxUploadSizeBytes {
		return models.NewValidationError(
			fmt.Sprintf("File size exceeds %dMB limit", MaxUploadSizeBytes/1024/1024))
	}
	if !allowedMimeTypes[in.ContentType] {
		return models.NewValidationError("Invalid file type. Allowed types: image/jpeg, image/png, image/gif")
	}
	return nil
}

// blobKeyFromURL derives the storage key from the last path segment of the
// stored URL.
func blobKeyFromURL(u string) string {
	if idx := strings.LastIndex(u, "/"); idx >= 0 && idx < len(u)-1 {
		return u[idx+1:]
	}
	return ""
}

// resizeToFit scales the image down so both dimensions fit within maxDim,
// preserving aspect ratio and never upscaling, then re-encodes it in its
// original format.
func resizeToFit(data []byte, contentType string, maxDim int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return data, nil
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	dstW := int(float64(w) * scale)
	dstH := int(float64(h) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	switch contentType {
	case "image/png":
		err = png.Encode(&buf, dst)
	case "image/gif":
		err = gif.Encode(&buf, dst, nil)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
