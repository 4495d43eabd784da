package dbmysql

import (
	"time"
)

type Comment struct {
	ID        int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PostID    int64      `gorm:"column:post_id;not null;index" json:"post_id"`
	AuthorID  string     `gorm:"column:author_id;size:50;not null;index" json:"author_id"`
	Caption   string     `gorm:"column:caption;size:3000;not null" json:"caption"`
	Published bool       `gorm:"column:published;not null" json:"published"`
	CreatedAt time.Time  `gorm:"column:created_at;not null" json:"created_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	Post   Post `gorm:"foreignKey:PostID" json:"-"`
	Author User `gorm:"foreignKey:AuthorID" json:"-"`
}

// TableName keeps the historical table name
func (Comment) TableName() string {
	return "post_comment"
}
