package dbmysql

import (
	"time"
)

// User identity is issued by the external identity provider; the ID is its
// opaque subject string, never generated locally.
type User struct {
	ID        string    `gorm:"primaryKey;column:id;size:50" json:"id"`
	FirstName string    `gorm:"column:first_name;size:50;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;size:50;not null" json:"last_name"`
	Phone     string    `gorm:"column:phone;size:20" json:"phone,omitempty"`
	Email     string    `gorm:"column:email;size:255;not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
