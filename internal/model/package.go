package model

import (
	"time"

	"gorm.io/gorm"
)

// Package is a bookable photography package shown on the public site.
type Package struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null;index"`
	Description  string         `json:"description" gorm:"type:text"`
	RegularPrice float64        `json:"regularPrice" gorm:"not null"`
	OfferPrice   float64        `json:"offerPrice"`
	Features     StringList     `json:"features" gorm:"type:json"`
	ImageURL     string         `json:"imageUrl" gorm:"size:1024"`
	IsActive     bool           `json:"isActive" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
