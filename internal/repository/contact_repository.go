package repository

import (
	"github.com/thales-ken/CRM/internal/models"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByID finds a contact by ID
func (r *GormContactRepository) FindByID(id uint64) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List retrieves all contacts
func (r *GormContactRepository) List() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Update applies the given column changes to a contact
func (r *GormContactRepository) Update(id uint64, changes map[string]interface{}) error {
	return r.db.Model(&models.Contact{}).Where("id = ?", id).Updates(changes).Error
}

// Delete removes a contact and cascades to its activities in a transaction
func (r *GormContactRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Contact{}, id).Error
	})
}
