package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/thales-ken/CRM/internal/errors"
	"github.com/thales-ken/CRM/internal/models"
	"github.com/thales-ken/CRM/internal/repository"
	"gorm.io/gorm"
)

// DealHandler coordinates deal CRUD handlers.
type DealHandler struct {
	deals repository.DealRepository
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(deals repository.DealRepository) *DealHandler {
	return &DealHandler{deals: deals}
}

// ListDeals returns all deals.
func (h *DealHandler) ListDeals(c *gin.Context) {
	deals, err := h.deals.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch deals")
		return
	}

	c.JSON(http.StatusOK, deals)
}

// GetDeal returns a deal by ID.
func (h *DealHandler) GetDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deal, err := h.deals.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Deal not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch deal")
		return
	}

	c.JSON(http.StatusOK, deal)
}

// CreateDeal creates a deal, defaulting stage to negotiation and
// probability to 0.
func (h *DealHandler) CreateDeal(c *gin.Context) {
	type CreateDealRequest struct {
		Title       string            `json:"title" binding:"required"`
		Company     string            `json:"company" binding:"required"`
		Value       float64           `json:"value" binding:"gte=0"`
		Stage       *models.DealStage `json:"stage" binding:"omitempty,oneof=negotiation proposal won lost"`
		Probability *int              `json:"probability" binding:"omitempty,gte=0,lte=100"`
		CloseDate   time.Time         `json:"closeDate" binding:"required"`
		Owner       string            `json:"owner" binding:"required"`
	}

	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	deal := models.Deal{
		Title:     req.Title,
		Company:   req.Company,
		Value:     req.Value,
		Stage:     models.DealStageNegotiation,
		CloseDate: req.CloseDate,
		Owner:     req.Owner,
	}
	if req.Stage != nil {
		deal.Stage = *req.Stage
	}
	if req.Probability != nil {
		deal.Probability = *req.Probability
	}

	if err := h.deals.Create(&deal); err != nil {
		apierrors.InternalError(c, "Failed to create deal")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      deal.ID,
		"message": "Deal created",
	})
}

// UpdateDeal applies a partial update; omitted fields stay unchanged.
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdateDealRequest struct {
		Title       *string           `json:"title"`
		Company     *string           `json:"company"`
		Value       *float64          `json:"value" binding:"omitempty,gte=0"`
		Stage       *models.DealStage `json:"stage" binding:"omitempty,oneof=negotiation proposal won lost"`
		Probability *int              `json:"probability" binding:"omitempty,gte=0,lte=100"`
		CloseDate   *time.Time        `json:"closeDate"`
		Owner       *string           `json:"owner"`
	}

	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.deals.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Deal not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch deal")
		return
	}

	changes := map[string]interface{}{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Company != nil {
		changes["company"] = *req.Company
	}
	if req.Value != nil {
		changes["value"] = *req.Value
	}
	if req.Stage != nil {
		changes["stage"] = *req.Stage
	}
	if req.Probability != nil {
		changes["probability"] = *req.Probability
	}
	if req.CloseDate != nil {
		changes["close_date"] = *req.CloseDate
	}
	if req.Owner != nil {
		changes["owner"] = *req.Owner
	}

	if len(changes) > 0 {
		if err := h.deals.Update(id, changes); err != nil {
			apierrors.InternalError(c, "Failed to update deal")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deal updated"})
}

// DeleteDeal removes a deal and its activities.
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deals.Delete(id); err != nil {
		apierrors.InternalError(c, "Failed to delete deal")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deal deleted"})
}
