package server

import (
	"focal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/comments/photo/:photoId
// @Summary Comment on a photo
// @Tags comments
// @Accept json
// @Produce json
// @Param photoId path int true "Photo ID"
// @Param request body object{content=string} true "Comment request"
// @Success 201 {object} models.Comment
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /comments/photo/{photoId} [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "photoId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Create(c.UserContext(), currentUserID(c), photoID, req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetPhotoComments handles GET /api/comments/photo/:photoId
// @Summary List comments on a photo
// @Tags comments
// @Produce json
// @Param photoId path int true "Photo ID"
// @Success 200 {array} models.Comment
// @Router /comments/photo/{photoId} [get]
func (s *Server) GetPhotoComments(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "photoId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListByPhoto(c.UserContext(), photoID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}

// GetPhotoCommentsCount handles GET /api/comments/photo/:photoId/count
// @Summary Count comments on a photo
// @Tags comments
// @Produce json
// @Param photoId path int true "Photo ID"
// @Success 200 {object} object{photoId=int,count=int}
// @Router /comments/photo/{photoId}/count [get]
func (s *Server) GetPhotoCommentsCount(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "photoId")
	if err != nil {
		return nil
	}

	count, err := s.commentService.CountByPhoto(c.UserContext(), photoID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"photoId": photoID,
		"count":   count,
	})
}
