package model

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a customer's request for a package. Package name and price are
// denormalized at booking time so later package edits do not rewrite history.
type Booking struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	PackageID    uint           `json:"packageId" gorm:"index;not null"`
	PackageName  string         `json:"packageName" gorm:"size:255;not null"`
	PackagePrice float64        `json:"packagePrice" gorm:"not null"`
	CustomerName string         `json:"customerName" gorm:"size:255;not null"`
	Phone        string         `json:"phone" gorm:"size:20;not null;index"`
	Address      string         `json:"address" gorm:"size:512"`
	BookingDate  time.Time      `json:"bookingDate" gorm:"not null"`
	Status       string         `json:"status" gorm:"size:20;default:'pending';index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
