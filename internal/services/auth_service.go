package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ashhalliday14/Bookstore-API/internal/config"
	"github.com/ashhalliday14/Bookstore-API/internal/models"
	"github.com/ashhalliday14/Bookstore-API/internal/repositories"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	ErrAccountInactive    = errors.New("user account is not active")
	ErrAccountLocked      = errors.New("user account is currently locked out")
	ErrMissingToken       = errors.New("access token cannot be blank")
	ErrInvalidToken       = errors.New("access token or refresh token is incorrect for session id")
	ErrTokenExpired       = errors.New("access token has expired")
	ErrRefreshExpired     = errors.New("refresh token has expired - please log in again")
	ErrRefreshConflict    = errors.New("access token could not be refreshed - please log in again")
	ErrLogoutFailed       = errors.New("failed to log out of this session using access token provided")
)

// TokenPair is the result of a successful login or refresh. Lifetimes are
// reported in seconds, matching the wire contract.
type TokenPair struct {
	SessionID             uuid.UUID
	AccessToken           string
	AccessTokenExpiresIn  int
	RefreshToken          string
	RefreshTokenExpiresIn int
}

type AuthService struct {
	userRepo         repositories.UserRepository
	sessionRepo      repositories.SessionRepository
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
	loginDelay       time.Duration
	maxLoginAttempts int

	// sleep and now are swapped out in tests so the brute-force throttle
	// and expiry checks stay deterministic.
	sleep func(time.Duration)
	now   func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	cfg *config.Config,
) (*AuthService, error) {
	accessTTL, err := cfg.Auth.GetAccessTokenExpiry()
	if err != nil {
		return nil, fmt.Errorf("invalid access_token_expiry: %w", err)
	}
	refreshTTL, err := cfg.Auth.GetRefreshTokenExpiry()
	if err != nil {
		return nil, fmt.Errorf("invalid refresh_token_expiry: %w", err)
	}
	loginDelay, err := cfg.Auth.GetLoginDelay()
	if err != nil {
		return nil, fmt.Errorf("invalid login_delay: %w", err)
	}
	maxAttempts := cfg.Auth.MaxLoginAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &AuthService{
		userRepo:         userRepo,
		sessionRepo:      sessionRepo,
		accessTokenTTL:   accessTTL,
		refreshTokenTTL:  refreshTTL,
		loginDelay:       loginDelay,
		maxLoginAttempts: maxAttempts,
		sleep:            time.Sleep,
		now:              time.Now,
	}, nil
}

// ThrottleLoginAttempt pays the fixed brute-force delay. The login
// handler calls it before touching the request at all, so every attempt
// costs the same regardless of how early it is rejected.
func (s *AuthService) ThrottleLoginAttempt() {
	s.sleep(s.loginDelay)
}

// Login validates the credential pair and issues a fresh session. The
// caller is expected to have already applied ThrottleLoginAttempt.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		// Same message as a wrong password so the response does not
		// reveal which usernames exist.
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrAccountInactive
	}
	if user.LoginAttempts >= s.maxLoginAttempts {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		// The increment commits on its own, outside the login
		// transaction below, so a failed attempt is never lost or
		// double-counted by a later rollback. Concurrent failures may
		// race; a lost increment is tolerated.
		if _, incErr := s.userRepo.IncrementLoginAttempts(user.ID); incErr != nil {
			return nil, fmt.Errorf("record failed login attempt: %w", incErr)
		}
		return nil, ErrInvalidCredentials
	}

	accessToken, err := models.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := models.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	now := s.now().UTC()
	session := &models.Session{
		UserID:             user.ID,
		AccessToken:        accessToken,
		AccessTokenExpiry:  now.Add(s.accessTokenTTL),
		RefreshToken:       refreshToken,
		RefreshTokenExpiry: now.Add(s.refreshTokenTTL),
	}

	// Resets the attempt counter and inserts the session atomically.
	if err := s.sessionRepo.CreateForLogin(session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &TokenPair{
		SessionID:             session.ID,
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  int(s.accessTokenTTL.Seconds()),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: int(s.refreshTokenTTL.Seconds()),
	}, nil
}

// Authenticate is the gate every protected endpoint passes through. It
// validates the raw bearer token against session and account state and
// returns the owning user's id. It never mutates anything, so it is safe
// on read-only requests. Check order: missing token, unknown token,
// inactive account, locked account, expired token.
func (s *AuthService) Authenticate(rawToken string) (uuid.UUID, error) {
	if rawToken == "" {
		return uuid.Nil, ErrMissingToken
	}

	session, err := s.sessionRepo.GetByAccessToken(rawToken)
	if err != nil {
		return uuid.Nil, fmt.Errorf("look up session: %w", err)
	}
	if session == nil {
		return uuid.Nil, ErrInvalidToken
	}

	if !session.User.Active {
		return uuid.Nil, ErrAccountInactive
	}
	// Lockout blocks all access, not just new logins.
	if session.User.LoginAttempts >= s.maxLoginAttempts {
		return uuid.Nil, ErrAccountLocked
	}
	if session.AccessTokenExpiry.Before(s.now()) {
		return uuid.Nil, ErrTokenExpired
	}

	return session.UserID, nil
}

// Refresh rotates the session's token pair. The caller must present the
// current access token as well as the refresh token; a pair that does not
// belong together is rejected outright. The rotation itself is a
// compare-and-swap on the old pair, so of two concurrent refreshes
// exactly one wins and the loser must log in again.
func (s *AuthService) Refresh(sessionID uuid.UUID, accessToken, refreshToken string) (*TokenPair, error) {
	session, err := s.sessionRepo.GetByIDAndTokens(sessionID, accessToken, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("look up session: %w", err)
	}
	if session == nil {
		return nil, ErrInvalidToken
	}

	if !session.User.Active {
		return nil, ErrAccountInactive
	}
	if session.User.LoginAttempts >= s.maxLoginAttempts {
		return nil, ErrAccountLocked
	}
	if session.RefreshTokenExpiry.Before(s.now()) {
		return nil, ErrRefreshExpired
	}

	newAccessToken, err := models.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	newRefreshToken, err := models.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	now := s.now().UTC()
	session.AccessToken = newAccessToken
	session.AccessTokenExpiry = now.Add(s.accessTokenTTL)
	session.RefreshToken = newRefreshToken
	session.RefreshTokenExpiry = now.Add(s.refreshTokenTTL)

	rows, err := s.sessionRepo.UpdateTokens(session, accessToken, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("rotate tokens: %w", err)
	}
	if rows == 0 {
		return nil, ErrRefreshConflict
	}

	return &TokenPair{
		SessionID:             session.ID,
		AccessToken:           newAccessToken,
		AccessTokenExpiresIn:  int(s.accessTokenTTL.Seconds()),
		RefreshToken:          newRefreshToken,
		RefreshTokenExpiresIn: int(s.refreshTokenTTL.Seconds()),
	}, nil
}

// Logout deletes the session matching both id and access token. Deleting
// an already-deleted session fails the same way as a wrong token, so the
// response never confirms whether a session ever existed.
func (s *AuthService) Logout(sessionID uuid.UUID, accessToken string) error {
	rows, err := s.sessionRepo.Delete(sessionID, accessToken)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if rows == 0 {
		return ErrLogoutFailed
	}
	return nil
}
