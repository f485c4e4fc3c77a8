package repositories

import (
	"errors"

	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookRepository scopes every query by owner so one user can never read
// or modify another user's rows.
type BookRepository interface {
	Create(book *models.Book) error
	GetByID(id, ownerID uuid.UUID) (*models.Book, error)
	Update(book *models.Book) (int64, error)
	Delete(id, ownerID uuid.UUID) (int64, error)
	GetAll(ownerID uuid.UUID, limit, offset int) ([]models.Book, int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

func (r *bookRepository) GetByID(id, ownerID uuid.UUID) (*models.Book, error) {
	var book models.Book
	err := r.db.First(&book, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Update(book *models.Book) (int64, error) {
	res := r.db.Model(&models.Book{}).
		Where("id = ? AND owner_id = ?", book.ID, book.OwnerID).
		Updates(map[string]interface{}{
			"title":            book.Title,
			"description":      book.Description,
			"author":           book.Author,
			"publication_year": book.PublicationYear,
			"price":            book.Price,
			"completed":        book.Completed,
		})
	return res.RowsAffected, res.Error
}

func (r *bookRepository) Delete(id, ownerID uuid.UUID) (int64, error) {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Book{})
	return res.RowsAffected, res.Error
}

func (r *bookRepository) GetAll(ownerID uuid.UUID, limit, offset int) ([]models.Book, int64, error) {
	var books []models.Book
	var count int64

	if err := r.db.Model(&models.Book{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, count, nil
}
