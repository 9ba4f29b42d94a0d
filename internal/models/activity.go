package models

import "time"

type ActivityType string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeNote    ActivityType = "note"
)

// Activity is a timestamped interaction log entry. It may reference a
// contact or a deal (removed with them) and the user who logged it
// (attribution survives user deletion as null).
type Activity struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Type        ActivityType `gorm:"type:varchar(20);not null" json:"type"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Date        time.Time    `gorm:"not null" json:"date"`
	ContactID   *uint64      `json:"contactId"`
	DealID      *uint64      `json:"dealId"`
	UserID      *uint64      `json:"userId"`
	CreatedAt   time.Time    `json:"createdAt"`

	Contact *Contact `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"-"`
	Deal    *Deal    `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE" json:"-"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}
