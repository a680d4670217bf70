package server

import (
	"focal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePhoto handles POST /api/likes
// @Summary Like a photo
// @Tags likes
// @Accept json
// @Produce json
// @Param request body object{photoId=int} true "Like request"
// @Success 201 {object} models.Like
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /likes [post]
func (s *Server) LikePhoto(c *fiber.Ctx) error {
	var req struct {
		PhotoID uint `json:"photoId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PhotoID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Photo ID is required"))
	}

	like, err := s.likeService.LikePhoto(c.UserContext(), currentUserID(c), req.PhotoID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// UnlikePhoto handles DELETE /api/likes/:photoId
// @Summary Remove a like
// @Tags likes
// @Produce json
// @Param photoId path int true "Photo ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /likes/{photoId} [delete]
func (s *Server) UnlikePhoto(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "photoId")
	if err != nil {
		return nil
	}

	if err := s.likeService.UnlikePhoto(c.UserContext(), currentUserID(c), photoID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Like removed",
	})
}

// GetPhotoLikes handles GET /api/likes/photo/:photoId
// @Summary List likes on a photo
// @Tags likes
// @Produce json
// @Param photoId path int true "Photo ID"
// @Success 200 {array} models.Like
// @Router /likes/photo/{photoId} [get]
func (s *Server) GetPhotoLikes(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "photoId")
	if err != nil {
		return nil
	}

	likes, err := s.likeService.ListByPhoto(c.UserContext(), photoID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(likes)
}

// GetPhotoLikesCount handles GET /api/likes/photo/:photoId/count
// @Summary Count likes on a photo
// @Tags likes
// @Produce json
// @Param photoId path int true "Photo ID"
// @Success 200 {object} object{photoId=int,count=int}
// @Router /likes/photo/{photoId}/count [get]
func (s *Server) GetPhotoLikesCount(c *fiber.Ctx) error {
	photoID, err := s.parseID(c, "photoId")
	if err != nil {
		return nil
	}

	count, err := s.likeService.CountByPhoto(c.UserContext(), photoID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"photoId": photoID,
		"count":   count,
	})
}
