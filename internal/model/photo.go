package model

import "time"

// Photo is a gallery image. The binary lives on the external storage API;
// only the hosted URL is kept here.
type Photo struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"size:255"`
	URL        string    `json:"url" gorm:"size:1024;not null"`
	UploadedBy uint      `json:"uploadedBy" gorm:"index"`
	CreatedAt  time.Time `json:"createdAt"`
}
