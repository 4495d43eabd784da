package dbmysql

import (
	"time"
)

// Post rows are created and soft-deleted only by the post consumer.
// DeletedAt is managed explicitly rather than through gorm.DeletedAt because
// delete redelivery checks must still be able to load unpublished rows.
type Post struct {
	ID        int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AuthorID  string     `gorm:"column:author_id;size:50;not null;index" json:"author_id"`
	Title     string     `gorm:"column:title;size:45;not null" json:"title"`
	Caption   string     `gorm:"column:caption;size:3000" json:"caption"`
	HasMedia  bool       `gorm:"column:has_media;not null" json:"has_media"`
	MediaKey  *string    `gorm:"column:media_key;size:100" json:"media_key,omitempty"`
	LikeCount int        `gorm:"column:like_count;not null;default:0" json:"like_count"`
	Published bool       `gorm:"column:published;not null" json:"published"`
	CreatedAt time.Time  `gorm:"column:created_at;not null" json:"created_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}
