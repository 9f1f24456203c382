package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

// RememberCookie is the name of the cookie carrying remembered credentials.
const RememberCookie = "remembered_credentials"

// RememberFor is how long remembered credentials stay valid.
const RememberFor = 7 * 24 * time.Hour

// ErrExpired is returned for remembered credentials past their expiry.
var ErrExpired = errors.New("remembered credentials expired")

type remembered struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EncodeRemembered encodes credentials for the remember-me cookie. The value
// is encoded, not encrypted.
func EncodeRemembered(creds models.Credentials, now time.Time) (string, error) {
	raw, err := json.Marshal(remembered{
		Username:  creds.Username,
		Password:  creds.Password,
		ExpiresAt: now.Add(RememberFor).UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("encode remembered credentials: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// DecodeRemembered reverses EncodeRemembered and rejects expired values.
func DecodeRemembered(value string, now time.Time) (models.Credentials, error) {
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("decode remembered credentials: %w", err)
	}
	var r remembered
	if err := json.Unmarshal(raw, &r); err != nil {
		return models.Credentials{}, fmt.Errorf("decode remembered credentials: %w", err)
	}
	if !now.Before(r.ExpiresAt) {
		return models.Credentials{}, ErrExpired
	}
	return models.Credentials{Username: r.Username, Password: r.Password}, nil
}
