package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered customer or admin.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Phone        string         `json:"phone" gorm:"uniqueIndex;size:20;not null"`
	Email        string         `json:"email,omitempty" gorm:"size:255"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsAdmin      bool           `json:"isAdmin" gorm:"default:false;index"`
	IsActive     bool           `json:"isActive" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Files []FileRef `json:"files,omitempty" gorm:"foreignKey:UserID"`
}

// FileRef is a file or external link attached to a user, either uploaded by
// the user or assigned to them by an admin.
type FileRef struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uint      `json:"userId" gorm:"index;not null"`
	Name            string    `json:"name" gorm:"size:255;not null"`
	URL             string    `json:"url" gorm:"size:1024;not null"`
	Type            string    `json:"type" gorm:"size:10;default:'file'"` // file | link
	AssignedByAdmin bool      `json:"assignedByAdmin" gorm:"default:false"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (f *FileRef) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
