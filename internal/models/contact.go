package models

import "time"

type ContactStatus string

const (
	ContactStatusActive   ContactStatus = "active"
	ContactStatusInactive ContactStatus = "inactive"
	ContactStatusProspect ContactStatus = "prospect"
)

type Contact struct {
	ID        uint64        `gorm:"primarykey" json:"id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Email     string        `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string        `gorm:"type:varchar(20);not null" json:"phone"`
	Company   string        `gorm:"type:varchar(255);not null" json:"company"`
	Status    ContactStatus `gorm:"type:varchar(20);not null;default:'prospect'" json:"status"`
	Photo     *string       `gorm:"type:text" json:"photo"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`

	Activities []Activity `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}
