package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thales-ken/CRM/internal/dto"
	apierrors "github.com/thales-ken/CRM/internal/errors"
	"github.com/thales-ken/CRM/internal/middleware"
	"github.com/thales-ken/CRM/internal/models"
	"github.com/thales-ken/CRM/internal/repository"
	"gorm.io/gorm"
)

// ActivityHandler coordinates activity CRUD handlers. Reads join the
// attributed user; creates stamp the authenticated user's ID.
type ActivityHandler struct {
	activities repository.ActivityRepository
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activities repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// ListActivities returns all activities with user attribution.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activities.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTOs(activities))
}

// GetActivity returns an activity by ID with user attribution.
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := h.activities.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Activity not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch activity")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityDTO(*activity))
}

// CreateActivity logs an activity attributed to the authenticated user.
// contactId/dealId are not pre-validated; a dangling reference fails at the
// store's constraints.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateActivityRequest struct {
		Type        models.ActivityType `json:"type" binding:"required,oneof=call email meeting note"`
		Description string              `json:"description" binding:"required"`
		Date        time.Time           `json:"date" binding:"required"`
		ContactID   *uint64             `json:"contactId"`
		DealID      *uint64             `json:"dealId"`
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	activity := models.Activity{
		Type:        req.Type,
		Description: req.Description,
		Date:        req.Date,
		ContactID:   req.ContactID,
		DealID:      req.DealID,
		UserID:      &userID,
	}

	if err := h.activities.Create(&activity); err != nil {
		apierrors.InternalError(c, "Failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      activity.ID,
		"message": "Activity created",
	})
}

// UpdateActivity applies a partial update; omitted fields stay unchanged.
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdateActivityRequest struct {
		Type        *models.ActivityType `json:"type" binding:"omitempty,oneof=call email meeting note"`
		Description *string              `json:"description"`
		Date        *time.Time           `json:"date"`
		ContactID   *uint64              `json:"contactId"`
		DealID      *uint64              `json:"dealId"`
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.activities.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Activity not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch activity")
		return
	}

	changes := map[string]interface{}{}
	if req.Type != nil {
		changes["type"] = *req.Type
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Date != nil {
		changes["date"] = *req.Date
	}
	if req.ContactID != nil {
		changes["contact_id"] = *req.ContactID
	}
	if req.DealID != nil {
		changes["deal_id"] = *req.DealID
	}

	if len(changes) > 0 {
		if err := h.activities.Update(id, changes); err != nil {
			apierrors.InternalError(c, "Failed to update activity")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity updated"})
}

// DeleteActivity removes an activity.
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.activities.Delete(id); err != nil {
		apierrors.InternalError(c, "Failed to delete activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}
