package models

import (
	"time"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	// DonationFailed is reserved for a payment gateway; no code path
	// sets it today.
	DonationFailed DonationStatus = "failed"
)

type Donation struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null"`
	Phone     string         `json:"phone" gorm:"not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status    DonationStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	PaymentID string         `json:"payment_id,omitempty"`
	UserID    uint           `json:"user_id" gorm:"not null"`
	Donor     *User          `json:"donor,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
