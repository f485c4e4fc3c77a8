package repositories

import (
	"testing"
	"time"

	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, attempts int) *models.User {
	t.Helper()
	user := &models.User{
		FullName:      "Alice Example",
		Username:      "alice-" + uuid.NewString(),
		PasswordHash:  "$2a$10$notarealhashnotarealhashnotarealhash",
		Active:        true,
		LoginAttempts: attempts,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedSession(t *testing.T, db *gorm.DB, repo SessionRepository, userID uuid.UUID) *models.Session {
	t.Helper()
	now := time.Now().UTC()
	session := &models.Session{
		UserID:             userID,
		AccessToken:        "access-" + uuid.NewString(),
		AccessTokenExpiry:  now.Add(20 * time.Minute),
		RefreshToken:       "refresh-" + uuid.NewString(),
		RefreshTokenExpiry: now.Add(14 * 24 * time.Hour),
	}
	require.NoError(t, repo.CreateForLogin(session))
	return session
}

func TestSessionRepository_CreateForLogin_ResetsAttempts(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	user := seedUser(t, db, 2)

	session := seedSession(t, db, repo, user.ID)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, 0, reloaded.LoginAttempts)

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Where("id = ?", session.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSessionRepository_CreateForLogin_UnknownUserRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)

	session := &models.Session{
		UserID:             uuid.New(),
		AccessToken:        "orphan-access",
		AccessTokenExpiry:  time.Now().Add(time.Minute),
		RefreshToken:       "orphan-refresh",
		RefreshTokenExpiry: time.Now().Add(time.Hour),
	}
	require.Error(t, repo.CreateForLogin(session))

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSessionRepository_GetByAccessToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	user := seedUser(t, db, 0)
	session := seedSession(t, db, repo, user.ID)

	got, err := repo.GetByAccessToken(session.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, user.ID, got.User.ID)
	assert.Equal(t, user.Username, got.User.Username)

	missing, err := repo.GetByAccessToken("no-such-token")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionRepository_GetByIDAndTokens_RequiresAllThree(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	user := seedUser(t, db, 0)
	session := seedSession(t, db, repo, user.ID)

	got, err := repo.GetByIDAndTokens(session.ID, session.AccessToken, session.RefreshToken)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.User.ID)

	// A refresh token from a different session must not match.
	mismatch, err := repo.GetByIDAndTokens(session.ID, session.AccessToken, "someone-elses-refresh")
	require.NoError(t, err)
	assert.Nil(t, mismatch)
}

func TestSessionRepository_UpdateTokens_CompareAndSwap(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	user := seedUser(t, db, 0)
	session := seedSession(t, db, repo, user.ID)

	oldAccess, oldRefresh := session.AccessToken, session.RefreshToken
	now := time.Now().UTC()

	session.AccessToken = "rotated-access"
	session.AccessTokenExpiry = now.Add(20 * time.Minute)
	session.RefreshToken = "rotated-refresh"
	session.RefreshTokenExpiry = now.Add(14 * 24 * time.Hour)

	rows, err := repo.UpdateTokens(session, oldAccess, oldRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// A second rotation keyed on the now-stale pair must see zero rows.
	session.AccessToken = "rotated-again"
	session.RefreshToken = "rotated-again-refresh"
	rows, err = repo.UpdateTokens(session, oldAccess, oldRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	var reloaded models.Session
	require.NoError(t, db.First(&reloaded, "id = ?", session.ID).Error)
	assert.Equal(t, "rotated-access", reloaded.AccessToken)
	assert.Equal(t, "rotated-refresh", reloaded.RefreshToken)
}

func TestSessionRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	user := seedUser(t, db, 0)
	session := seedSession(t, db, repo, user.ID)

	rows, err := repo.Delete(session.ID, "wrong-token")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	rows, err = repo.Delete(session.ID, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// Deleting again behaves the same as a wrong token.
	rows, err = repo.Delete(session.ID, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestUserRepository_IncrementLoginAttempts(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db, 0)

	for i := 1; i <= 3; i++ {
		rows, err := repo.IncrementLoginAttempts(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	}

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.Equal(t, 3, reloaded.LoginAttempts)

	rows, err := repo.IncrementLoginAttempts(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
