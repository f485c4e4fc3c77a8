package repositories

import (
	"errors"

	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	// CreateForLogin inserts the session and resets the owning user's
	// login-attempt counter in a single transaction. Either both apply
	// or neither does.
	CreateForLogin(session *models.Session) error

	// GetByAccessToken looks up a session by access token with its
	// owning user loaded. Returns nil when no session matches.
	GetByAccessToken(token string) (*models.Session, error)

	// GetByIDAndTokens looks up a session requiring a simultaneous match
	// on id, access token and refresh token, with the owning user
	// loaded. Returns nil when no session matches all three.
	GetByIDAndTokens(id uuid.UUID, accessToken, refreshToken string) (*models.Session, error)

	// UpdateTokens rewrites the session's token pair and expiries,
	// conditioned on the row still carrying the old token pair
	// (compare-and-swap). Returns the number of rows updated: zero means
	// a concurrent rotation already won.
	UpdateTokens(session *models.Session, oldAccessToken, oldRefreshToken string) (int64, error)

	// Delete removes the session matching both id and access token.
	// Returns the number of rows deleted.
	Delete(id uuid.UUID, accessToken string) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateForLogin(session *models.Session) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", session.UserID).
			UpdateColumn("login_attempts", 0)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(session).Error
	})
}

func (r *sessionRepository) GetByAccessToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.Joins("User").
		Where("sessions.access_token = ?", token).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) GetByIDAndTokens(id uuid.UUID, accessToken, refreshToken string) (*models.Session, error) {
	var session models.Session
	err := r.db.Joins("User").
		Where("sessions.id = ? AND sessions.access_token = ? AND sessions.refresh_token = ?",
			id, accessToken, refreshToken).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) UpdateTokens(session *models.Session, oldAccessToken, oldRefreshToken string) (int64, error) {
	res := r.db.Model(&models.Session{}).
		Where("id = ? AND user_id = ? AND access_token = ? AND refresh_token = ?",
			session.ID, session.UserID, oldAccessToken, oldRefreshToken).
		Updates(map[string]interface{}{
			"access_token":         session.AccessToken,
			"access_token_expiry":  session.AccessTokenExpiry,
			"refresh_token":        session.RefreshToken,
			"refresh_token_expiry": session.RefreshTokenExpiry,
		})
	return res.RowsAffected, res.Error
}

func (r *sessionRepository) Delete(id uuid.UUID, accessToken string) (int64, error) {
	res := r.db.Where("id = ? AND access_token = ?", id, accessToken).
		Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
