package models

// This file provides a central import point for all models
// and helper functions shared between them

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"time"
)

// AllModels returns all model types for GORM operations
// Note: Migrations are handled by golang-migrate, not GORM AutoMigrate
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Session{},
		&Book{},
	}
}

// NewSessionToken generates an opaque bearer token: 24 bytes of
// cryptographically secure randomness, hex encoded, with the current unix
// timestamp appended, all base64 encoded. The timestamp suffix makes
// collisions impossible across seconds; the random prefix makes them
// negligible within one. Callers must treat the result as opaque.
func NewSessionToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	raw := hex.EncodeToString(buf) + strconv.FormatInt(time.Now().Unix(), 10)
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}
