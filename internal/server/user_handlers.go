package server

import (
	"focal/internal/models"
	"focal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:username
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} object{error=string}
// @Router /users/{username} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	profile, err := s.userService.GetProfile(c.Context(), username)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/profile
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{username=string,bio=string} true "Profile update"
// @Success 200 {object} models.User
// @Failure 409 {object} object{error=string}
// @Router /users/profile [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Bio      string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   currentUserID(c),
		Username: req.Username,
		Bio:      req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// FollowUser handles POST /api/users/follow/:username
// @Summary Follow a user
// @Tags users
// @Produce json
// @Param username path string true "Username to follow"
// @Success 201 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /users/follow/{username} [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	if err := s.followService.Follow(c.Context(), currentUserID(c), username); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Now following " + username,
	})
}

// UnfollowUser handles DELETE /api/users/unfollow/:username
// @Summary Unfollow a user
// @Tags users
// @Produce json
// @Param username path string true "Username to unfollow"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /users/unfollow/{username} [delete]
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	if err := s.followService.Unfollow(c.Context(), currentUserID(c), username); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Unfollowed " + username,
	})
}
