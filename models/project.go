package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project is a finished job shown in the site's portfolio gallery.
// CommentsCount is the only field that changes after seeding.
type Project struct {
	ID               int                         `json:"id" db:"id" gorm:"primaryKey;autoIncrement:false"`
	Title            string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description      string                      `json:"description" db:"description" gorm:"type:text;not null"`
	ShortDescription string                      `json:"short_description" db:"short_description" gorm:"type:text;not null"`
	ImageURL         string                      `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	GalleryFolder    string                      `json:"gallery_folder" db:"gallery_folder" gorm:"type:text;not null"`
	GalleryImages    datatypes.JSONSlice[string] `json:"gallery_images" db:"gallery_images" gorm:"not null"`
	CommentsCount    int                         `json:"comments_count" db:"comments_count" gorm:"type:integer;not null;default:0"`
	CreatedAt        *time.Time                  `json:"created_at,omitempty" db:"created_at" gorm:"type:timestamp"`
}

// Clone returns a deep copy so callers can't reach into a store's slices.
func (p Project) Clone() Project {
	c := p
	c.GalleryImages = append(datatypes.JSONSlice[string](nil), p.GalleryImages...)
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		c.CreatedAt = &t
	}
	return c
}
