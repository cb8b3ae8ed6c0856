package models

import "time"

// Photo holds the image bytes inline. ContentType records the MIME type the
// upload validator accepted; rows created before that column existed are
// served as JPEG.
type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AlbumID     uint      `json:"album_id" gorm:"not null;index"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Data        []byte    `json:"-" gorm:"not null"`
	ContentType string    `json:"content_type" gorm:"type:varchar(64)"`
	Caption     string    `json:"caption"`
	CreatedAt   time.Time `json:"created_at"`

	Album Album `json:"-" gorm:"foreignKey:AlbumID"`
	User  User  `json:"-" gorm:"foreignKey:UserID"`
}

// ServedContentType is the MIME type to put on the wire when streaming Data.
func (p *Photo) ServedContentType() string {
	if p.ContentType == "" {
		return "image/jpeg"
	}
	return p.ContentType
}
