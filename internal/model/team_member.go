package model

import (
	"time"

	"gorm.io/gorm"
)

// TeamMember is a photographer or staff member shown in the team section.
type TeamMember struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Role        string         `json:"role" gorm:"size:255"`
	Bio         string         `json:"bio" gorm:"type:text"`
	ImageURL    string         `json:"imageUrl" gorm:"size:1024"`
	SocialLinks StringMap      `json:"socialLinks" gorm:"type:json"`
	IsActive    bool           `json:"isActive" gorm:"default:true;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
