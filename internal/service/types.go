package service

import (
	"context"
	"time"

	"devfinder/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	SessionTokenTTL time.Duration
	TwoStepsCodeTTL time.Duration
}

// EmailSender delivers the two-steps verification code out of band.
// Delivery is best effort; callers decide whether a failure matters.
type EmailSender interface {
	SendTwoStepsCode(ctx context.Context, email string, name string, code string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type SessionTokenIssuer interface {
	IssueSessionToken(user *entity.User) (string, time.Duration, error)
}

// ImageStore persists project images in an object-storage bucket and
// returns a public URL for each stored object.
type ImageStore interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = 12
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
