package repository

import (
	"github.com/thales-ken/CRM/internal/models"
)

// UserRepository defines the interface for credential store access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Delete removes a user, nulling attribution on its activities
	Delete(id uint64) error
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// FindByID finds a contact by ID
	FindByID(id uint64) (*models.Contact, error)

	// List retrieves all contacts
	List() ([]models.Contact, error)

	// Update applies the given column changes to a contact
	Update(id uint64, changes map[string]interface{}) error

	// Delete removes a contact and its activities
	Delete(id uint64) error
}

// DealRepository defines the interface for deal data access
type DealRepository interface {
	// Create creates a new deal
	Create(deal *models.Deal) error

	// FindByID finds a deal by ID
	FindByID(id uint64) (*models.Deal, error)

	// List retrieves all deals
	List() ([]models.Deal, error)

	// Update applies the given column changes to a deal
	Update(id uint64, changes map[string]interface{}) error

	// Delete removes a deal and its activities
	Delete(id uint64) error
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// Create creates a new activity
	Create(activity *models.Activity) error

	// FindByID finds an activity by ID with the attributed user preloaded
	FindByID(id uint64) (*models.Activity, error)

	// List retrieves all activities with the attributed users preloaded
	List() ([]models.Activity, error)

	// Update applies the given column changes to an activity
	Update(id uint64, changes map[string]interface{}) error

	// Delete removes an activity
	Delete(id uint64) error
}
