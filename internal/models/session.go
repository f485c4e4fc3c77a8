package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session binds a user to a current access/refresh token pair. A user may
// hold many sessions at once (one per device). The token and expiry
// columns are only ever rewritten together as a pair; expired rows are
// rejected at authentication time rather than swept by a background job.
type Session struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	AccessToken        string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	AccessTokenExpiry  time.Time `gorm:"not null"`
	RefreshToken       string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	RefreshTokenExpiry time.Time `gorm:"not null"`
	CreatedAt          time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
