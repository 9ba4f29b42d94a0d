package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/thales-ken/CRM/internal/errors"
	"github.com/thales-ken/CRM/internal/models"
	"github.com/thales-ken/CRM/internal/repository"
	"gorm.io/gorm"
)

// ContactHandler coordinates contact CRUD handlers.
type ContactHandler struct {
	contacts repository.ContactRepository
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts repository.ContactRepository) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ListContacts returns all contacts.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contacts.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact returns a contact by ID.
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contact, err := h.contacts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Contact not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// CreateContact creates a contact, defaulting status to prospect.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	type CreateContactRequest struct {
		Name    string                `json:"name" binding:"required"`
		Email   string                `json:"email" binding:"required,email"`
		Phone   string                `json:"phone" binding:"required"`
		Company string                `json:"company" binding:"required"`
		Status  *models.ContactStatus `json:"status" binding:"omitempty,oneof=active inactive prospect"`
		Photo   *string               `json:"photo"`
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Status:  models.ContactStatusProspect,
		Photo:   req.Photo,
	}
	if req.Status != nil {
		contact.Status = *req.Status
	}

	if err := h.contacts.Create(&contact); err != nil {
		apierrors.InternalError(c, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      contact.ID,
		"message": "Contact created",
	})
}

// UpdateContact applies a partial update. Omitted fields stay unchanged; an
// explicit empty photo string clears the stored photo.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdateContactRequest struct {
		Name    *string               `json:"name"`
		Email   *string               `json:"email" binding:"omitempty,email"`
		Phone   *string               `json:"phone"`
		Company *string               `json:"company"`
		Status  *models.ContactStatus `json:"status" binding:"omitempty,oneof=active inactive prospect"`
		Photo   *string               `json:"photo"`
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := h.contacts.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "Contact not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch contact")
		return
	}

	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.Phone != nil {
		changes["phone"] = *req.Phone
	}
	if req.Company != nil {
		changes["company"] = *req.Company
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if req.Photo != nil {
		if *req.Photo == "" {
			changes["photo"] = nil
		} else {
			changes["photo"] = *req.Photo
		}
	}

	if len(changes) > 0 {
		if err := h.contacts.Update(id, changes); err != nil {
			apierrors.InternalError(c, "Failed to update contact")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact updated"})
}

// DeleteContact removes a contact and its activities.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contacts.Delete(id); err != nil {
		apierrors.InternalError(c, "Failed to delete contact")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}

// parseID reads the :id route parameter, responding 400 on garbage.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}
