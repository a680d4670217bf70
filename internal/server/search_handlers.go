package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Search handles GET /api/search?username=&hashtag=
// Either criterion may be absent; with neither given the result is simply
// two empty sets.
// @Summary Search users and photos
// @Description Search usernames by substring and photos by caption or hashtag
// @Tags search
// @Produce json
// @Param username query string false "Username substring"
// @Param hashtag query string false "Caption or hashtag substring"
// @Success 200 {object} service.SearchResult
// @Router /search [get]
func (s *Server) Search(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Query("username"))
	hashtag := strings.TrimSpace(c.Query("hashtag"))

	result, err := s.searchService.Search(c.UserContext(), username, hashtag)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
