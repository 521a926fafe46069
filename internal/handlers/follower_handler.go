package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
	"github.com/hoangtv-dev/studenthub-backend/internal/services"
)

// FollowerHandler handles follow/unfollow HTTP requests
type FollowerHandler struct {
	followers *services.FollowerService
}

// NewFollowerHandler creates a new FollowerHandler
func NewFollowerHandler(followers *services.FollowerService) *FollowerHandler {
	return &FollowerHandler{followers: followers}
}

// RegisterFollowerRoutes registers follow-related routes
func (h *FollowerHandler) RegisterFollowerRoutes(g *echo.Group) {
	g.GET("/notifications/following/list", h.GetFollowingList)
	g.POST("/notifications/following", h.FollowUser)
	g.DELETE("/notifications/following/:following_id", h.UnfollowUser)
	g.PUT("/notifications/following/:following_id/bell", h.ToggleBell)
}

// GetFollowingList returns the students the caller follows, newest-first
func (h *FollowerHandler) GetFollowingList(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	following, err := h.followers.ListFollowing(currentUserID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"count":     len(following),
		"following": following,
	})
}

// FollowUser creates a follow edge from the caller to another student
func (h *FollowerHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, []echo.Map{{"message": "Invalid request payload"}})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, validationDetails(err))
	}

	followingID, err := uuid.Parse(req.FollowingID)
	if err != nil {
		return validationFailed(c, uuidDetail("following_id"))
	}

	follower, err := h.followers.Follow(currentUserID, followingID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			return errorResponse(c, http.StatusBadRequest, "Cannot follow yourself")
		case errors.Is(err, services.ErrDuplicateFollow):
			return errorResponse(c, http.StatusBadRequest, "Already following this user")
		}
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":  true,
		"message":  "User followed successfully",
		"follower": follower,
	})
}

// UnfollowUser removes the caller's follow edge. Succeeds even when no edge
// existed.
func (h *FollowerHandler) UnfollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	followingID, err := uuid.Parse(c.Param("following_id"))
	if err != nil {
		return validationFailed(c, uuidDetail("following_id"))
	}

	if err := h.followers.Unfollow(currentUserID, followingID); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User unfollowed successfully",
	})
}

// ToggleBell flips bell notifications for a followed student
func (h *FollowerHandler) ToggleBell(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	followingID, err := uuid.Parse(c.Param("following_id"))
	if err != nil {
		return validationFailed(c, uuidDetail("following_id"))
	}

	var req models.ToggleBellRequest
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, []echo.Map{{"message": "Invalid request payload"}})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, validationDetails(err))
	}

	follower, err := h.followers.ToggleBell(currentUserID, followingID, *req.BellEnabled)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, "Follow relationship not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	message := "Bell notification disabled successfully"
	if *req.BellEnabled {
		message = "Bell notification enabled successfully"
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"message":  message,
		"follower": follower,
	})
}
