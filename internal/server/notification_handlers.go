package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications
// @Summary List own notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	notifications, err := s.notificationService.ListForUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(notifications)
}

// MarkNotificationRead handles POST /api/notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} object{message=string}
// @Router /notifications/{id}/read [post]
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.notificationService.MarkRead(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Notification marked as read",
	})
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /notifications/read-all [post]
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := s.notificationService.MarkAllRead(c.UserContext(), currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "All notifications marked as read",
	})
}
