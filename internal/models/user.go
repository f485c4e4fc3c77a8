package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	// LoginAttempts counts consecutive failed password checks. It is
	// incremented by one on each failure and reset to zero only on a
	// successful login. At three or more the account is locked out of
	// every authenticated path, not just new logins.
	LoginAttempts int       `gorm:"not null;default:0" json:"-"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
