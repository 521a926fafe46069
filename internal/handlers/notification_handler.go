package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
	"github.com/hoangtv-dev/studenthub-backend/internal/repositories"
	"github.com/hoangtv-dev/studenthub-backend/internal/services"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notifications *services.NotificationService
	students      repositories.StudentRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications *services.NotificationService, students repositories.StudentRepository) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		students:      students,
	}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/grouped/thread-comments", h.GetThreadCommentGroups)
	g.GET("/notifications/grouped/comment-replies", h.GetCommentReplyGroups)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.GET("/notifications/:id", h.GetNotificationByID)
	g.POST("/notifications", h.CreateNotification)
	g.PUT("/notifications/:id/mark-read", h.MarkAsRead)
	g.PUT("/notifications/mark-all-read", h.MarkAllAsRead)
	g.DELETE("/notifications/:id", h.DeleteNotification)
	g.DELETE("/notifications/delete-all", h.DeleteAllNotifications)
	g.POST("/device-token", h.RegisterDeviceToken)
}

// GetNotifications returns the caller's notifications, optionally filtered by
// type, read state and limit.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var query models.ListNotificationsQuery
	if err := c.Bind(&query); err != nil {
		return validationFailed(c, []echo.Map{{"message": "Invalid query parameters"}})
	}
	if err := c.Validate(&query); err != nil {
		return validationFailed(c, validationDetails(err))
	}

	notifications, err := h.notifications.List(currentUserID, repositories.NotificationFilters{
		Type:   query.Type,
		IsRead: query.IsRead,
		Limit:  query.Limit,
	})
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"count":         len(notifications),
		"notifications": notifications,
	})
}

// GetThreadCommentGroups returns notifications about comments on the caller's
// threads, grouped per thread.
func (h *NotificationHandler) GetThreadCommentGroups(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	groups, err := h.notifications.GroupedThreadComments(currentUserID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":               true,
		"count":                 len(groups),
		"grouped_notifications": groups,
	})
}

// GetCommentReplyGroups returns notifications about replies to the caller's
// comments, grouped per parent comment.
func (h *NotificationHandler) GetCommentReplyGroups(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	groups, err := h.notifications.GroupedCommentReplies(currentUserID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":               true,
		"count":                 len(groups),
		"grouped_notifications": groups,
	})
}

// GetUnreadCount returns the caller's unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	count, err := h.notifications.UnreadCount(currentUserID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"unread_count": count,
	})
}

// GetNotificationByID returns a single notification owned by the caller
func (h *NotificationHandler) GetNotificationByID(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	notifID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return validationFailed(c, uuidDetail("id"))
	}

	notification, err := h.notifications.GetByID(notifID, currentUserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "Notification not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"notification": notification,
	})
}

// CreateNotification inserts a notification from the recognized fields
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, []echo.Map{{"message": "Invalid request payload"}})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, validationDetails(err))
	}

	notification, err := h.notifications.Create(req)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":      true,
		"message":      "Notification created successfully",
		"notification": notification,
	})
}

// MarkAsRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	notifID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return validationFailed(c, uuidDetail("id"))
	}

	notification, err := h.notifications.MarkAsRead(notifID, currentUserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "Notification not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"message":      "Notification marked as read",
		"notification": notification,
	})
}

// MarkAllAsRead marks all of the caller's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.notifications.MarkAllAsRead(currentUserID); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "All notifications marked as read",
	})
}

// DeleteNotification deletes one of the caller's notifications
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	notifID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return validationFailed(c, uuidDetail("id"))
	}

	if err := h.notifications.Delete(notifID, currentUserID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "Notification not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Notification deleted successfully",
	})
}

// DeleteAllNotifications deletes all of the caller's notifications
func (h *NotificationHandler) DeleteAllNotifications(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.notifications.DeleteAll(currentUserID); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "All notifications deleted successfully",
	})
}

// RegisterDeviceToken saves the caller's FCM token for push notifications
func (h *NotificationHandler) RegisterDeviceToken(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.RegisterDeviceTokenRequest
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, []echo.Map{{"message": "Invalid request payload"}})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, validationDetails(err))
	}

	if err := h.students.UpdateFCMToken(currentUserID, req.Token); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Device token registered",
	})
}
