package services

import (
	"errors"
	"fmt"

	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/ashhalliday14/Bookstore-API/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserExists = errors.New("username already exists")

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user account with a bcrypt-hashed password.
// Username uniqueness is case-sensitive.
func (s *UserService) Register(fullName, username, password string) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     fullName,
		Username:     username,
		PasswordHash: string(hash),
		Active:       true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
