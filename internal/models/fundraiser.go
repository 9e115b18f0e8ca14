package models

import (
	"time"
)

type FundraiserCategory string

const (
	CategoryMedical   FundraiserCategory = "medical"
	CategoryEducation FundraiserCategory = "education"
	CategoryEmergency FundraiserCategory = "emergency"
	CategoryOther     FundraiserCategory = "other"
)

type FundraiserStatus string

const (
	FundraiserActive    FundraiserStatus = "active"
	FundraiserCompleted FundraiserStatus = "completed"
	FundraiserCancelled FundraiserStatus = "cancelled"
)

type Fundraiser struct {
	ID           uint               `json:"id" gorm:"primaryKey"`
	Title        string             `json:"title" gorm:"not null"`
	Category     FundraiserCategory `json:"category" gorm:"type:varchar(20);not null"`
	TargetAmount float64            `json:"target_amount" gorm:"type:decimal(10,2);not null"`
	Description  string             `json:"description" gorm:"type:text;not null"`
	ImageURL     string             `json:"image_url" gorm:"not null"`
	// CurrentAmount is never updated: donations carry no fundraiser
	// reference, so nothing can be attributed to a campaign.
	CurrentAmount float64          `json:"current_amount" gorm:"type:decimal(10,2);default:0"`
	Status        FundraiserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatorID     uint             `json:"creator_id" gorm:"not null"`
	Creator       *User            `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
