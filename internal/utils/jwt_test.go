package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseSessionToken(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("test-secret")}

	token, ttl, err := manager.IssueSessionToken("user-1", "ruan@example.com", "Ruan Costa", "Candidato")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, ttl)

	claims, err := manager.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "ruan@example.com", claims.Email)
	assert.Equal(t, "Ruan Costa", claims.Name)
	assert.Equal(t, "Candidato", claims.Role)
}

func TestParseSessionToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("test-secret")}
	token, _, err := manager.IssueSessionToken("user-1", "a@b.com", "A", "Candidato")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = manager.ParseSessionToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := JWTManager{Secret: []byte("right-secret")}
	token, _, err := issuer.IssueSessionToken("user-1", "a@b.com", "A", "Candidato")
	require.NoError(t, err)

	verifier := JWTManager{Secret: []byte("wrong-secret")}
	_, err = verifier.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Expired(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("test-secret"), SessionTokenTTL: -time.Minute}
	token, _, err := manager.IssueSessionToken("user-1", "a@b.com", "A", "Candidato")
	require.NoError(t, err)

	_, err = manager.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	manager := JWTManager{Secret: []byte("test-secret")}
	_, err := manager.ParseSessionToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
