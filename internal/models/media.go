package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// MediaType is the closed set of attachment kinds. The same set is
// enforced by a CHECK constraint on the media table.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
	MediaGIF   MediaType = "GIF"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaImage, MediaVideo, MediaGIF:
		return true
	}
	return false
}

func (t MediaType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *MediaType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = MediaType(v)
	case []byte:
		*t = MediaType(v)
	default:
		return fmt.Errorf("cannot scan %T into MediaType", value)
	}
	return nil
}

// Media is a file attached to a post.
type Media struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Type       MediaType `json:"type" gorm:"type:varchar(10);not null;check:chk_media_type,type IN ('IMAGE','VIDEO','GIF')"`
	URL        string    `json:"url" gorm:"type:varchar(255);not null"`
	PostID     uint      `json:"post_id" gorm:"not null;index"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func (Media) TableName() string {
	return "media"
}
