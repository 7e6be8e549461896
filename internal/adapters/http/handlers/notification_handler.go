package handlers

import (
	"github.com/jinlee1703/gifthub-was-cicd/internal/adapters/http/middleware"
	"github.com/jinlee1703/gifthub-was-cicd/internal/core/services"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/pagination"
	"github.com/jinlee1703/gifthub-was-cicd/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notifyService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifyService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifyService: notifyService}
}

// List returns a page of the authenticated member's notifications
// @Summary My notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	username := middleware.Username(c)
	params := pagination.GetParams(c)

	notifications, total, err := h.notifyService.List(c.Context(), username, params.Limit, params.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}

	return response.Success(c, "", pagination.NewResponse(notifications, params, total))
}
