package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/ashhalliday14/Bookstore-API/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookController is an example consumer of the authentication gate: the
// middleware has already validated the bearer token, and every handler
// scopes its queries to the authenticated user id from the context.
type BookController struct {
	bookService *services.BookService
}

func NewBookController(bookService *services.BookService) *BookController {
	return &BookController{bookService: bookService}
}

type bookRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Author          *string  `json:"author"`
	PublicationYear *int     `json:"publication_year"`
	Price           *float64 `json:"price"`
	Completed       *bool    `json:"completed"`
}

func (br *bookRequest) validate() (*services.BookInput, []string) {
	var messages []string
	if br.Title == nil || *br.Title == "" {
		messages = append(messages, "Title cannot be blank")
	} else if len(*br.Title) > 255 {
		messages = append(messages, "Title cannot be greater than 255 characters")
	}
	if messages != nil {
		return nil, messages
	}

	input := &services.BookInput{
		Title:           *br.Title,
		Description:     br.Description,
		Author:          br.Author,
		PublicationYear: br.PublicationYear,
		Price:           br.Price,
	}
	if br.Completed != nil {
		input.Completed = *br.Completed
	}
	return input, nil
}

// CreateBook - POST /books
func (bc *BookController) CreateBook(c *gin.Context) {
	ownerID := currentUserID(c)

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}
	input, messages := req.validate()
	if messages != nil {
		fail(c, http.StatusBadRequest, messages...)
		return
	}

	book, err := bc.bookService.CreateBook(ownerID, input)
	if err != nil {
		log.Printf("create book failed: %v", err)
		fail(c, http.StatusInternalServerError, "There was an issue creating the book - please try again")
		return
	}

	ok(c, http.StatusCreated, gin.H{"book": book})
}

// GetBook - GET /books/:bookid
func (bc *BookController) GetBook(c *gin.Context) {
	ownerID := currentUserID(c)
	bookID, valid := bookIDParam(c)
	if !valid {
		return
	}

	book, err := bc.bookService.GetBook(ownerID, bookID)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			fail(c, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("get book failed: %v", err)
		fail(c, http.StatusInternalServerError, "There was an issue retrieving the book - please try again")
		return
	}

	ok(c, http.StatusOK, gin.H{"book": book})
}

// UpdateBook - PUT /books/:bookid
func (bc *BookController) UpdateBook(c *gin.Context) {
	ownerID := currentUserID(c)
	bookID, valid := bookIDParam(c)
	if !valid {
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}
	input, messages := req.validate()
	if messages != nil {
		fail(c, http.StatusBadRequest, messages...)
		return
	}

	book, err := bc.bookService.UpdateBook(ownerID, bookID, input)
	if err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			fail(c, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("update book failed: %v", err)
		fail(c, http.StatusInternalServerError, "There was an issue updating the book - please try again")
		return
	}

	ok(c, http.StatusOK, gin.H{"book": book})
}

// DeleteBook - DELETE /books/:bookid
func (bc *BookController) DeleteBook(c *gin.Context) {
	ownerID := currentUserID(c)
	bookID, valid := bookIDParam(c)
	if !valid {
		return
	}

	if err := bc.bookService.DeleteBook(ownerID, bookID); err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			fail(c, http.StatusNotFound, "Book not found")
			return
		}
		log.Printf("delete book failed: %v", err)
		fail(c, http.StatusInternalServerError, "There was an issue deleting the book - please try again")
		return
	}

	ok(c, http.StatusOK, gin.H{"book_id": bookID})
}

// ListBooks - GET /books?limit=&offset=
func (bc *BookController) ListBooks(c *gin.Context) {
	ownerID := currentUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	books, total, err := bc.bookService.ListBooks(ownerID, limit, offset)
	if err != nil {
		log.Printf("list books failed: %v", err)
		fail(c, http.StatusInternalServerError, "There was an issue listing books - please try again")
		return
	}

	ok(c, http.StatusOK, gin.H{
		"books":       books,
		"total_count": total,
	})
}

func bookIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("bookid"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Book ID must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID returns the user id the auth middleware stored in the
// context. Routes using this helper are always registered behind the
// middleware, so a missing value is a programming error.
func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet("userID").(uuid.UUID)
}
