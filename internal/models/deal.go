package models

import "time"

type DealStage string

const (
	DealStageNegotiation DealStage = "negotiation"
	DealStageProposal    DealStage = "proposal"
	DealStageWon         DealStage = "won"
	DealStageLost        DealStage = "lost"
)

type Deal struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Company     string    `gorm:"type:varchar(255);not null" json:"company"`
	Value       float64   `gorm:"type:decimal(12,2);not null" json:"value"`
	Stage       DealStage `gorm:"type:varchar(20);not null;default:'negotiation'" json:"stage"`
	Probability int       `gorm:"not null;default:0" json:"probability"`
	CloseDate   time.Time `gorm:"not null" json:"closeDate"`
	Owner       string    `gorm:"type:varchar(255);not null" json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Activities []Activity `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}
