package dto

import (
	"time"

	"github.com/thales-ken/CRM/internal/models"
)

// ActivityDTO is an activity joined with the attributed user, when any.
type ActivityDTO struct {
	ID          uint64              `json:"id"`
	Type        models.ActivityType `json:"type"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
	ContactID   *uint64             `json:"contactId"`
	DealID      *uint64             `json:"dealId"`
	UserID      *uint64             `json:"userId"`
	UserName    string              `json:"userName,omitempty"`
	UserEmail   string              `json:"userEmail,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ToActivityDTO converts an Activity model to ActivityDTO, surfacing the
// attributed user's name and email if the relation was preloaded.
func ToActivityDTO(activity models.Activity) ActivityDTO {
	dto := ActivityDTO{
		ID:          activity.ID,
		Type:        activity.Type,
		Description: activity.Description,
		Date:        activity.Date,
		ContactID:   activity.ContactID,
		DealID:      activity.DealID,
		UserID:      activity.UserID,
		CreatedAt:   activity.CreatedAt,
	}

	if activity.User != nil {
		dto.UserName = activity.User.Name
		dto.UserEmail = activity.User.Email
	}

	return dto
}

// ToActivityDTOs converts a slice of activities.
func ToActivityDTOs(activities []models.Activity) []ActivityDTO {
	dtos := make([]ActivityDTO, len(activities))
	for i, activity := range activities {
		dtos[i] = ToActivityDTO(activity)
	}
	return dtos
}
