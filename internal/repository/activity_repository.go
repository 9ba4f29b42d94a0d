package repository

import (
	"github.com/thales-ken/CRM/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create creates a new activity. Referential integrity of contactId/dealId
// is left to the store's constraints.
func (r *GormActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// FindByID finds an activity by ID with the attributed user preloaded
func (r *GormActivityRepository) FindByID(id uint64) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.Preload("User").First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// List retrieves all activities with the attributed users preloaded
func (r *GormActivityRepository) List() ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.Preload("User").Order("date DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// Update applies the given column changes to an activity
func (r *GormActivityRepository) Update(id uint64, changes map[string]interface{}) error {
	return r.db.Model(&models.Activity{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes an activity
func (r *GormActivityRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Activity{}, id).Error
}
