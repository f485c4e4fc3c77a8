package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     *string   `gorm:"type:text" json:"description"`
	Author          *string   `gorm:"type:varchar(255)" json:"author"`
	PublicationYear *int      `json:"publication_year"`
	Price           *float64  `json:"price"`
	Completed       bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
