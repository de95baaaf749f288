package favorites

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFavoriteUpdateParsesMovieIDs(t *testing.T) {
	a := primitive.NewObjectID()

	update, err := favoriteUpdate(map[string]interface{}{
		"movies": []interface{}{a.Hex()},
	})
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{a}, update["movies"])
}

func TestFavoriteUpdateNeverTouchesOwner(t *testing.T) {
	update, err := favoriteUpdate(map[string]interface{}{
		"owner": primitive.NewObjectID().Hex(),
	})
	require.NoError(t, err)
	require.NotContains(t, update, "owner")
}

func TestFavoriteUpdateRejectsMalformedIDs(t *testing.T) {
	_, err := favoriteUpdate(map[string]interface{}{
		"movies": []interface{}{"not-an-id"},
	})
	require.Error(t, err)
}
