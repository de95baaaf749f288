package users

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPublicProjectionOmitsCredentials(t *testing.T) {
	user := &User{
		ID:             primitive.NewObjectID(),
		Email:          "user@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Token:          "some.jwt.token",
		IsAdmin:        true,
	}

	raw, err := json.Marshal(user.Public())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "hashedPassword")
	assert.NotContains(t, string(raw), "abcdefghijklmnopqrstuv")
	assert.NotContains(t, string(raw), "some.jwt.token")
	assert.Contains(t, string(raw), "user@example.com")
}

func TestUserJSONHidesCredentialFields(t *testing.T) {
	user := &User{
		Email:          "user@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		Token:          "some.jwt.token",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "abcdefghijklmnopqrstuv")
	assert.NotContains(t, string(raw), "some.jwt.token")
}

func TestPublicKeepsProfileFields(t *testing.T) {
	fav := primitive.NewObjectID()
	user := &User{
		Email:     "user@example.com",
		IsAdmin:   true,
		Favorite:  []primitive.ObjectID{fav},
		AvatarURL: "https://cdn.example/avatar.png",
	}

	p := user.Public()
	assert.True(t, p.IsAdmin)
	assert.Equal(t, []primitive.ObjectID{fav}, p.Favorite)
	assert.Equal(t, "https://cdn.example/avatar.png", p.AvatarURL)
}
