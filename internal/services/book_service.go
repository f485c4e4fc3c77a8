package services

import (
	"errors"
	"fmt"

	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/ashhalliday14/Bookstore-API/internal/repositories"
	"github.com/google/uuid"
)

var ErrBookNotFound = errors.New("book not found")

type BookInput struct {
	Title           string
	Description     *string
	Author          *string
	PublicationYear *int
	Price           *float64
	Completed       bool
}

// BookService is a consumer of the authentication gate: every operation
// takes the authenticated owner id and touches only that owner's rows.
type BookService struct {
	bookRepo repositories.BookRepository
}

func NewBookService(bookRepo repositories.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

func (s *BookService) CreateBook(ownerID uuid.UUID, input *BookInput) (*models.Book, error) {
	book := &models.Book{
		OwnerID:         ownerID,
		Title:           input.Title,
		Description:     input.Description,
		Author:          input.Author,
		PublicationYear: input.PublicationYear,
		Price:           input.Price,
		Completed:       input.Completed,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

func (s *BookService) GetBook(ownerID, id uuid.UUID) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (s *BookService) UpdateBook(ownerID, id uuid.UUID, input *BookInput) (*models.Book, error) {
	book := &models.Book{
		ID:              id,
		OwnerID:         ownerID,
		Title:           input.Title,
		Description:     input.Description,
		Author:          input.Author,
		PublicationYear: input.PublicationYear,
		Price:           input.Price,
		Completed:       input.Completed,
	}
	rows, err := s.bookRepo.Update(book)
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	if rows == 0 {
		return nil, ErrBookNotFound
	}

	updated, err := s.bookRepo.GetByID(id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if updated == nil {
		// The row was deleted between the update and the reload.
		return nil, ErrBookNotFound
	}
	return updated, nil
}

func (s *BookService) DeleteBook(ownerID, id uuid.UUID) error {
	rows, err := s.bookRepo.Delete(id, ownerID)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if rows == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (s *BookService) ListBooks(ownerID uuid.UUID, limit, offset int) ([]models.Book, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookRepo.GetAll(ownerID, limit, offset)
}
