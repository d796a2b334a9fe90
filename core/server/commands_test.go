package server

import (
	"testing"
	"time"

	"meca-api/core/config"
	"meca-api/core/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = config.JWTConfig{Secret: "test-secret", Issuer: "meca-api", TTL: time.Hour}

func TestIssueToken(t *testing.T) {
	id := uuid.New()
	token, err := issueToken(testJWT, id.String(), "event_director", 0)
	require.NoError(t, err)

	claims, err := utils.ValidateAndParseToken(token, testJWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "event_director", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestIssueToken_CustomTTL(t *testing.T) {
	token, err := issueToken(testJWT, uuid.NewString(), "admin", 5*time.Minute)
	require.NoError(t, err)

	claims, err := utils.ValidateAndParseToken(token, testJWT.Secret)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestIssueToken_Rejects(t *testing.T) {
	_, err := issueToken(testJWT, "not-a-uuid", "admin", 0)
	assert.Error(t, err)

	_, err = issueToken(testJWT, uuid.NewString(), "superuser", 0)
	assert.Error(t, err)
}
