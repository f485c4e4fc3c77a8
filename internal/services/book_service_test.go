package services

import (
	"testing"

	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookService_GetBook_ScopedToOwner(t *testing.T) {
	owner := uuid.New()
	bookID := uuid.New()

	bookRepo := &mockBookRepo{
		getByIDFunc: func(id, ownerID uuid.UUID) (*models.Book, error) {
			require.Equal(t, bookID, id)
			require.Equal(t, owner, ownerID)
			return &models.Book{ID: id, OwnerID: ownerID, Title: "Dune"}, nil
		},
	}
	svc := NewBookService(bookRepo)

	book, err := svc.GetBook(owner, bookID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)
}

func TestBookService_GetBook_OtherOwnersRowIsNotFound(t *testing.T) {
	bookRepo := &mockBookRepo{
		getByIDFunc: func(id, ownerID uuid.UUID) (*models.Book, error) { return nil, nil },
	}
	svc := NewBookService(bookRepo)

	_, err := svc.GetBook(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookService_UpdateBook_RowGoneOnReloadIsNotFound(t *testing.T) {
	bookRepo := &mockBookRepo{
		updateFunc:  func(book *models.Book) (int64, error) { return 1, nil },
		getByIDFunc: func(id, ownerID uuid.UUID) (*models.Book, error) { return nil, nil },
	}
	svc := NewBookService(bookRepo)

	book, err := svc.UpdateBook(uuid.New(), uuid.New(), &BookInput{Title: "Dune"})
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Nil(t, book)
}

func TestBookService_DeleteBook_NoRowsIsNotFound(t *testing.T) {
	bookRepo := &mockBookRepo{
		deleteFunc: func(id, ownerID uuid.UUID) (int64, error) { return 0, nil },
	}
	svc := NewBookService(bookRepo)

	err := svc.DeleteBook(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestBookService_ListBooks_ClampsPagination(t *testing.T) {
	var gotLimit, gotOffset int
	bookRepo := &mockBookRepo{
		getAllFunc: func(ownerID uuid.UUID, limit, offset int) ([]models.Book, int64, error) {
			gotLimit, gotOffset = limit, offset
			return nil, 0, nil
		},
	}
	svc := NewBookService(bookRepo)

	_, _, err := svc.ListBooks(uuid.New(), -5, -1)
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 0, gotOffset)
}
