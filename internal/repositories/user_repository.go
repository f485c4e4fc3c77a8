package repositories

import (
	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/google/uuid"
)

type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	ExistsByUsername(username string) (bool, error)
	// IncrementLoginAttempts adds one to the user's failed-login counter
	// in a single immediately-committed statement. Returns the number of
	// rows updated so callers can tell "no such user" from "applied".
	IncrementLoginAttempts(id uuid.UUID) (int64, error)
}
