package server

import (
	"encoding/json"
	"io"

	"focal/internal/models"
	"focal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadPhoto handles POST /api/photos
// Expects multipart form data: "file" (the image), "caption" (optional text),
// and "hashtags" (optional JSON array of strings).
// @Summary Upload a photo
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpeg, png, or gif, max 5MB)"
// @Param caption formData string false "Caption"
// @Param hashtags formData string false "Hashtags as a JSON array of strings"
// @Success 201 {object} models.Photo
// @Failure 400 {object} object{error=string}
// @Router /photos [post]
func (s *Server) UploadPhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	var hashtags []string
	if raw := c.FormValue("hashtags"); raw != "" {
		if jsonErr := json.Unmarshal([]byte(raw), &hashtags); jsonErr != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Hashtags must be a JSON array of strings"))
		}
	}

	photo, err := s.photoService.Create(c.UserContext(), service.UploadPhotoInput{
		OwnerID:     currentUserID(c),
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Caption:     c.FormValue("caption"),
		Hashtags:    hashtags,
		Content:     content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(photo)
}

// GetMyPhotos handles GET /api/photos
// @Summary List own photos
// @Tags photos
// @Produce json
// @Success 200 {array} models.Photo
// @Router /photos [get]
func (s *Server) GetMyPhotos(c *fiber.Ctx) error {
	photos, err := s.photoService.FindAllByUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(photos)
}

// GetPhoto handles GET /api/photos/:id
// @Summary Get a photo
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} models.Photo
// @Failure 404 {object} object{error=string}
// @Router /photos/{id} [get]
func (s *Server) GetPhoto(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	photo, err := s.photoService.FindOne(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(photo)
}

// DeletePhoto handles DELETE /api/photos/:id
// @Summary Delete own photo
// @Tags photos
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /photos/{id} [delete]
func (s *Server) DeletePhoto(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.photoService.Remove(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Photo deleted",
	})
}
