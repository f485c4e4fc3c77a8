package services

import (
	"errors"

	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/google/uuid"
)

type mockUserRepo struct {
	getByIDFunc                func(id uuid.UUID) (*models.User, error)
	getByUsernameFunc          func(username string) (*models.User, error)
	createFunc                 func(user *models.User) error
	existsByUsernameFunc       func(username string) (bool, error)
	incrementLoginAttemptsFunc func(id uuid.UUID) (int64, error)
}

func (m *mockUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	if m.getByIDFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByIDFunc(id)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	if m.getByUsernameFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByUsernameFunc(username)
}

func (m *mockUserRepo) Create(user *models.User) error {
	if m.createFunc == nil {
		return errors.New("not implemented")
	}
	return m.createFunc(user)
}

func (m *mockUserRepo) ExistsByUsername(username string) (bool, error) {
	if m.existsByUsernameFunc == nil {
		return false, errors.New("not implemented")
	}
	return m.existsByUsernameFunc(username)
}

func (m *mockUserRepo) IncrementLoginAttempts(id uuid.UUID) (int64, error) {
	if m.incrementLoginAttemptsFunc == nil {
		return 0, errors.New("not implemented")
	}
	return m.incrementLoginAttemptsFunc(id)
}

type mockSessionRepo struct {
	createForLoginFunc   func(session *models.Session) error
	getByAccessTokenFunc func(token string) (*models.Session, error)
	getByIDAndTokensFunc func(id uuid.UUID, accessToken, refreshToken string) (*models.Session, error)
	updateTokensFunc     func(session *models.Session, oldAccessToken, oldRefreshToken string) (int64, error)
	deleteFunc           func(id uuid.UUID, accessToken string) (int64, error)
}

func (m *mockSessionRepo) CreateForLogin(session *models.Session) error {
	if m.createForLoginFunc == nil {
		return errors.New("not implemented")
	}
	return m.createForLoginFunc(session)
}

func (m *mockSessionRepo) GetByAccessToken(token string) (*models.Session, error) {
	if m.getByAccessTokenFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByAccessTokenFunc(token)
}

func (m *mockSessionRepo) GetByIDAndTokens(id uuid.UUID, accessToken, refreshToken string) (*models.Session, error) {
	if m.getByIDAndTokensFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByIDAndTokensFunc(id, accessToken, refreshToken)
}

func (m *mockSessionRepo) UpdateTokens(session *models.Session, oldAccessToken, oldRefreshToken string) (int64, error) {
	if m.updateTokensFunc == nil {
		return 0, errors.New("not implemented")
	}
	return m.updateTokensFunc(session, oldAccessToken, oldRefreshToken)
}

func (m *mockSessionRepo) Delete(id uuid.UUID, accessToken string) (int64, error) {
	if m.deleteFunc == nil {
		return 0, errors.New("not implemented")
	}
	return m.deleteFunc(id, accessToken)
}

type mockBookRepo struct {
	createFunc  func(book *models.Book) error
	getByIDFunc func(id, ownerID uuid.UUID) (*models.Book, error)
	updateFunc  func(book *models.Book) (int64, error)
	deleteFunc  func(id, ownerID uuid.UUID) (int64, error)
	getAllFunc  func(ownerID uuid.UUID, limit, offset int) ([]models.Book, int64, error)
}

func (m *mockBookRepo) Create(book *models.Book) error {
	if m.createFunc == nil {
		return errors.New("not implemented")
	}
	return m.createFunc(book)
}

func (m *mockBookRepo) GetByID(id, ownerID uuid.UUID) (*models.Book, error) {
	if m.getByIDFunc == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByIDFunc(id, ownerID)
}

func (m *mockBookRepo) Update(book *models.Book) (int64, error) {
	if m.updateFunc == nil {
		return 0, errors.New("not implemented")
	}
	return m.updateFunc(book)
}

func (m *mockBookRepo) Delete(id, ownerID uuid.UUID) (int64, error) {
	if m.deleteFunc == nil {
		return 0, errors.New("not implemented")
	}
	return m.deleteFunc(id, ownerID)
}

func (m *mockBookRepo) GetAll(ownerID uuid.UUID, limit, offset int) ([]models.Book, int64, error) {
	if m.getAllFunc == nil {
		return nil, 0, errors.New("not implemented")
	}
	return m.getAllFunc(ownerID, limit, offset)
}
