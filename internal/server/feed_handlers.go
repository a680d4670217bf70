package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed?page=&limit=
// Page and limit are clamped by the feed service, so malformed or
// out-of-range values degrade to the defaults instead of erroring.
// @Summary Get the chronological feed
// @Tags feed
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Items per page (10-100)"
// @Success 200 {object} service.FeedPage
// @Router /feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 0)

	feed, err := s.feedService.GetFeed(c.UserContext(), currentUserID(c), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feed)
}
