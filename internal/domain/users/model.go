package users

import (
	"time"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"not null;uniqueIndex:idx_users_username"`
	Email     string `gorm:"not null;uniqueIndex:idx_users_email"`
	FirstName string
	LastName  string
	Bio       string
	Role      string `gorm:"type:varchar(20);not null;default:'user'"`

	// bcrypt hash of the last confirmation code issued for this user
	ConfirmationHash *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
