package tokenutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/domain"
)

const secret = "test-secret"

func testUser() *domain.User {
	return &domain.User{
		ID:   primitive.NewObjectID(),
		Name: "Nora",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	user := testUser()

	token, err := CreateAccessToken(user, secret, 2)
	require.NoError(t, err)

	ok, err := IsAuthorized(token, secret)
	require.NoError(t, err)
	assert.True(t, ok)

	id, err := ExtractIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	user := testUser()

	token, err := CreateRefreshToken(user, secret, 24)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}

func TestExpiredTokenRejected(t *testing.T) {
	user := testUser()

	token, err := CreateAccessToken(user, secret, -1)
	require.NoError(t, err)

	ok, err := IsAuthorized(token, secret)
	assert.Error(t, err)
	assert.False(t, ok)

	_, err = ExtractIDFromToken(token, secret)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := CreateAccessToken(testUser(), secret, 2)
	require.NoError(t, err)

	ok, err := IsAuthorized(token, "other-secret")
	assert.Error(t, err)
	assert.False(t, ok)
}
