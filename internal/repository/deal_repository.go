package repository

import (
	"github.com/thales-ken/CRM/internal/models"
	"gorm.io/gorm"
)

// GormDealRepository is a GORM implementation of DealRepository
type GormDealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new DealRepository
func NewDealRepository(db *gorm.DB) DealRepository {
	return &GormDealRepository{db: db}
}

// Create creates a new deal
func (r *GormDealRepository) Create(deal *models.Deal) error {
	return r.db.Create(deal).Error
}

// FindByID finds a deal by ID
func (r *GormDealRepository) FindByID(id uint64) (*models.Deal, error) {
	var deal models.Deal
	if err := r.db.First(&deal, id).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

// List retrieves all deals
func (r *GormDealRepository) List() ([]models.Deal, error) {
	var deals []models.Deal
	if err := r.db.Order("created_at DESC").Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

// Update applies the given column changes to a deal
func (r *GormDealRepository) Update(id uint64, changes map[string]interface{}) error {
	return r.db.Model(&models.Deal{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes a deal and cascades to its activities in a transaction
func (r *GormDealRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deal_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Deal{}, id).Error
	})
}
